// Command silver is a silver price calculator and sales dashboard for the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/silver/cmd"
	"github.com/google/subcommands"
)

func main() {
	// answers shell completion requests, and installs it with COMP_INSTALL=1.
	cmd.Completion().Complete("silver")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
