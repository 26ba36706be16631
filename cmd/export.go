package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/silver"
	"github.com/etnz/silver/export"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	format string
	output string
	band   silver.Band
	n      int
	month  string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the datasets to json, yaml or xlsx" }
func (*exportCmd) Usage() string {
	return `silver export [-format json|yaml|xlsx] [-o <file>] [-band <band>] [-n <count>] [-m <month>]

  Writes the datasets and the dashboard views to a file, or to the standard
  output. An xlsx export requires -o.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", string(export.JSON), "Export format: json, yaml or xlsx")
	f.StringVar(&c.output, "o", "", "Output file, defaults to the standard output")
	f.Var(&c.band, "band", "Price band: all, low, mid or high")
	f.IntVar(&c.n, "n", -1, "Number of top states, defaults to top_n from the configuration")
	f.StringVar(&c.month, "m", "", "Month abbreviation, defaults to month from the configuration")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format, err := export.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing format: %v\n", err)
		return subcommands.ExitUsageError
	}
	if format == export.XLSX && c.output == "" {
		fmt.Fprintln(stderr, "Error: an xlsx export requires -o <file>")
		return subcommands.ExitUsageError
	}

	a, status := start()
	if a == nil {
		return status
	}
	defer a.close()

	month, err := a.month(c.month)
	if err != nil {
		return fail("parsing month", err)
	}
	sales, err := a.sales()
	if err != nil {
		return fail("loading sales", err)
	}
	prices, err := a.prices()
	if err != nil {
		return fail("loading prices", err)
	}
	b := export.NewBundle(c.band, month, sales,
		silver.TopN(sales, a.topN(c.n), silver.ByPurchased),
		silver.FilterByPriceBand(prices, c.band),
		silver.FilterByMonth(prices, month))

	if err := c.write(format, b); err != nil {
		return fail("exporting", err)
	}
	if c.output != "" {
		a.log.Infow("export written", "file", c.output, "format", string(format))
	}
	return subcommands.ExitSuccess
}

func (c *exportCmd) write(format export.Format, b *export.Bundle) (err error) {
	var w io.Writer = stdout
	if c.output != "" {
		file, cerr := os.Create(c.output)
		if cerr != nil {
			return cerr
		}
		defer func() { err = errors.Join(err, file.Close()) }()
		w = file
	}
	return export.Write(w, format, b)
}
