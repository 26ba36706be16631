package cmd

import (
	"flag"

	"github.com/etnz/silver"
	"github.com/etnz/silver/docs"
	"github.com/etnz/silver/export"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

type group struct {
	name     string
	commands []subcommands.Command
}

// groups returns new instances of every command, by group.
func groups() []group {
	return []group{
		{"dashboard", []subcommands.Command{&dashboardCmd{}, &calcCmd{}}},
		{"datasets", []subcommands.Command{&salesCmd{}, &topCmd{}, &pricesCmd{}, &monthCmd{}, &exportCmd{}}},
		{"documentation", []subcommands.Command{&topicCmd{}}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, g := range groups() {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// flagValues predicts the value of flags by name. Other flags take any value.
var flagValues = map[string]complete.Predictor{
	"config":     predict.Files("*.yaml"),
	"data-dir":   predict.Dirs("*"),
	"sales-file": predict.Files("*.csv"),
	"price-file": predict.Files("*.csv"),
	"log-level":  predict.Set{"debug", "info", "warn", "error"},
	"o":          predict.Files("*"),
	"band":       predict.Set{"all", "low", "mid", "high"},
	"m":          predict.Set(silver.Months()),
	"unit":       predict.Set{"grams", "kg"},
	"cur":        predict.Set{string(silver.INR), string(silver.USD)},
}

func init() {
	var formats predict.Set
	for _, f := range export.Formats() {
		formats = append(formats, string(f))
	}
	flagValues["format"] = formats
}

// Completion returns the shell completion of the command line, global flags
// are read from flag.CommandLine.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictFlags(flag.CommandLine),
	}
	var names predict.Set
	for _, g := range groups() {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{Flags: predictFlags(fs)}
			names = append(names, c.Name())
		}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	root.Sub["help"] = &complete.Command{Args: names}
	root.Sub["flags"] = &complete.Command{}
	root.Sub["commands"] = &complete.Command{}
	return root
}

func predictFlags(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch p, ok := flagValues[f.Name]; {
		case ok:
			flags[f.Name] = p
		case isBool(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
