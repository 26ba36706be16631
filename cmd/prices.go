package cmd

import (
	"context"
	"flag"

	"github.com/etnz/silver"
	"github.com/etnz/silver/date"
	"github.com/etnz/silver/renderer"
	"github.com/google/subcommands"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	band   silver.Band
	months date.Range
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display the historical silver price" }
func (*pricesCmd) Usage() string {
	return `silver prices [-band all|low|mid|high] [-range <from>:<to>]

  Displays the monthly silver price in INR per kg, oldest first,
  restricted to a price band and a range of months like 2019-Jan:2020-Dec.
  See 'silver topic bands'.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.band, "band", "Price band: all, low, mid or high")
	f.Var(&c.months, "range", "Months to display, like 2019-Jan:2020-Dec, either side may be omitted")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	defer a.close()

	prices, err := a.prices()
	if err != nil {
		return fail("loading prices", err)
	}
	printMarkdown(renderer.PricesMarkdown(silver.FilterByPriceBand(silver.FilterByRange(prices, c.months), c.band), c.band))
	return subcommands.ExitSuccess
}

// monthCmd holds the flags for the 'month' subcommand.
type monthCmd struct {
	month string
}

func (*monthCmd) Name() string     { return "month" }
func (*monthCmd) Synopsis() string { return "display the silver price of a month, year after year" }
func (*monthCmd) Usage() string {
	return `silver month [-m <month>]

  Displays the silver price of a single month for every year of the dataset.
  The month is a three-letter abbreviation, like Jan.
`
}

func (c *monthCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month abbreviation, defaults to month from the configuration")
}

func (c *monthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	defer a.close()

	month, err := a.month(c.month)
	if err != nil {
		return fail("parsing month", err)
	}
	prices, err := a.prices()
	if err != nil {
		return fail("loading prices", err)
	}
	printMarkdown(renderer.MonthMarkdown(silver.FilterByMonth(prices, month), month))
	return subcommands.ExitSuccess
}
