package cmd

import (
	"context"
	"flag"

	"github.com/etnz/silver/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `silver topic [<topic>...]

  Shows the documentation of the given topics, or the list of topics.
  Use '*' for every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Readme}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return fail("reading doc", err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
