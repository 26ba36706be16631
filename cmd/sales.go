package cmd

import (
	"context"
	"flag"

	"github.com/etnz/silver"
	"github.com/etnz/silver/renderer"
	"github.com/google/subcommands"
)

type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "display silver purchased per state" }
func (*salesCmd) Usage() string {
	return `silver sales

  Displays the quantity of silver purchased by each state, in kilograms.
`
}

func (c *salesCmd) SetFlags(f *flag.FlagSet) {}

func (c *salesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	defer a.close()

	sales, err := a.sales()
	if err != nil {
		return fail("loading sales", err)
	}
	printMarkdown(renderer.SalesMarkdown(sales))
	return subcommands.ExitSuccess
}

// topCmd holds the flags for the 'top' subcommand.
type topCmd struct {
	n int
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "rank the states by silver purchased" }
func (*topCmd) Usage() string {
	return `silver top [-n <count>]

  Displays the states that purchased the most silver, largest first.
  States with the same quantity keep the order of the dataset.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", -1, "Number of states, defaults to top_n from the configuration")
}

func (c *topCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	defer a.close()

	sales, err := a.sales()
	if err != nil {
		return fail("loading sales", err)
	}
	n := a.topN(c.n)
	printMarkdown(renderer.TopMarkdown(silver.TopN(sales, n, silver.ByPurchased), n))
	return subcommands.ExitSuccess
}
