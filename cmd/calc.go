package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/silver"
	"github.com/etnz/silver/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// calcFlags are the calculator inputs, shared by 'calc' and 'dashboard'.
type calcFlags struct {
	weight   string
	unit     string
	ppg      string
	currency string
	rate     string
	rateURL  string
	ratePath string
}

func (c *calcFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.weight, "w", "100", "Weight of silver")
	f.StringVar(&c.unit, "unit", "grams", "Unit of the weight: grams or kg")
	f.StringVar(&c.ppg, "ppg", "50", "Price per gram, in INR")
	f.StringVar(&c.currency, "cur", "INR", "Currency of the result: INR or USD")
	f.StringVar(&c.rate, "rate", "", "USD per INR, defaults to usd_rate from the configuration")
	f.StringVar(&c.rateURL, "rate-url", "", "URL of a JSON document holding the USD per INR rate (overrides rate_url)")
	f.StringVar(&c.ratePath, "rate-path", "", "JSONPath of the rate in the document at -rate-url (overrides rate_path)")
}

func parseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &silver.ValidationError{Field: field, Reason: fmt.Sprintf("%q is not a number", s)}
	}
	return d, nil
}

// calculate parses the inputs and prices them.
func (c *calcFlags) calculate(ctx context.Context, a *app) (*renderer.Calculation, error) {
	weight, err := parseDecimal("weight", c.weight)
	if err != nil {
		return nil, err
	}
	ppg, err := parseDecimal("price per gram", c.ppg)
	if err != nil {
		return nil, err
	}
	unit, err := silver.ParseUnit(c.unit)
	if err != nil {
		return nil, err
	}
	cur, err := silver.ParseCurrency(c.currency)
	if err != nil {
		return nil, err
	}

	rate := decimal.NewFromFloat(a.cfg.USDRate)
	if c.rate != "" {
		if rate, err = parseDecimal("usd rate", c.rate); err != nil {
			return nil, err
		}
		if !rate.IsPositive() {
			return nil, &silver.ValidationError{Field: "usd rate", Reason: "must be positive"}
		}
	} else if cur == silver.USD {
		rate = c.lookupRate(ctx, a, rate)
	}

	total, err := silver.Calculator{USDRate: rate}.Price(weight, unit, ppg, cur)
	if err != nil {
		return nil, err
	}
	return &renderer.Calculation{
		Weight:       weight,
		Unit:         unit,
		PricePerGram: ppg,
		Currency:     cur,
		Rate:         rate,
		Total:        total,
	}, nil
}

// lookupRate queries the rate source, if any, and returns fallback when it fails.
func (c *calcFlags) lookupRate(ctx context.Context, a *app, fallback decimal.Decimal) decimal.Decimal {
	src, ok := a.cfg.RateSource()
	if c.rateURL != "" {
		src, ok = silver.RateSource{URL: c.rateURL, Path: c.ratePath}, true
	}
	if c.ratePath != "" {
		src.Path = c.ratePath
	}
	if !ok {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.RateTimeout)
	defer cancel()
	rate, err := src.Rate(ctx)
	if err != nil {
		a.log.Warnw("using the configured exchange rate", "rate", fallback.String(), "error", err)
		return fallback
	}
	return rate
}

type calcCmd struct {
	calcFlags
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the price of a weight of silver" }
func (*calcCmd) Usage() string {
	return `silver calc [-w <weight>] [-unit grams|kg] [-ppg <price>] [-cur INR|USD] [-rate <usd per inr>]

  Computes the price of a weight of silver at a price per gram in INR,
  converted to USD when requested. See 'silver topic calculator'.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *calcCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, status := start()
	if a == nil {
		return status
	}
	defer a.close()

	calc, err := c.calculate(ctx, a)
	if err != nil {
		return fail("computing price", err)
	}
	printMarkdown(renderer.CalculationMarkdown(calc))
	return subcommands.ExitSuccess
}
