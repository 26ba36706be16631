package cmd

import (
	"context"
	"flag"

	"github.com/etnz/silver"
	"github.com/etnz/silver/renderer"
	"github.com/google/subcommands"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	calcFlags
	noCalc bool
	band   silver.Band
	n      int
	month  string
}

func (*dashboardCmd) Name() string { return "dashboard" }
func (*dashboardCmd) Synopsis() string {
	return "display the calculator and every dataset view at once"
}
func (*dashboardCmd) Usage() string {
	return `silver dashboard [-band <band>] [-n <count>] [-m <month>] [calculator flags]

  Displays the price calculator, the historical prices in a band, the state
  purchases with their top ranking, and the price of a month by year.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.BoolVar(&c.noCalc, "no-calc", false, "Skip the price calculator")
	f.Var(&c.band, "band", "Price band: all, low, mid or high")
	f.IntVar(&c.n, "n", -1, "Number of top states, defaults to top_n from the configuration")
	f.StringVar(&c.month, "m", "", "Month abbreviation, defaults to month from the configuration")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	defer a.close()

	month, err := a.month(c.month)
	if err != nil {
		return fail("parsing month", err)
	}
	d := &renderer.Dashboard{Band: c.band, N: a.topN(c.n), Month: month}
	if !c.noCalc {
		if d.Calculation, err = c.calculate(ctx, a); err != nil {
			return fail("computing price", err)
		}
	}

	if d.Sales, err = a.sales(); err != nil {
		return fail("loading sales", err)
	}
	prices, err := a.prices()
	if err != nil {
		return fail("loading prices", err)
	}
	d.Top = silver.TopN(d.Sales, d.N, silver.ByPurchased)
	d.Prices = silver.FilterByPriceBand(prices, c.band)
	d.MonthPrices = silver.FilterByMonth(prices, month)

	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}
