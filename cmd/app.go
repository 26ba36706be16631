// Package cmd implements the silver command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/silver"
	"github.com/etnz/silver/config"
	"github.com/etnz/silver/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "", "Path to a yaml configuration file, defaults to silver.yaml in . or $HOME/.config/silver")
	dataDir    = flag.String("data-dir", "", "Directory of the datasets (overrides data_dir)")
	salesFile  = flag.String("sales-file", "", "State purchases CSV file (overrides sales_file)")
	priceFile  = flag.String("price-file", "", "Historical prices CSV file (overrides price_file)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn or error (overrides log_level)")
	plain      = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")
)

// stdout and stderr are replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// app is the state shared by a command execution.
type app struct {
	cfg  *config.Config
	log  *zap.SugaredLogger
	data *silver.Datasets
}

// setup loads the configuration, applies the global flags and builds the logger and datasets.
func setup() (*app, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	for dst, src := range map[*string]string{
		&cfg.DataDir:   *dataDir,
		&cfg.SalesFile: *salesFile,
		&cfg.PriceFile: *priceFile,
		&cfg.LogLevel:  *logLevel,
	} {
		if src != "" {
			*dst = src
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &silver.ValidationError{Field: "configuration", Reason: err.Error()}
	}

	policy, err := cfg.Policy()
	if err != nil {
		return nil, &silver.ValidationError{Field: "cache_policy", Reason: err.Error()}
	}

	l, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, &silver.ValidationError{Field: "log_level", Reason: err.Error()}
	}
	silver.SetLogger(l)

	return &app{cfg: cfg, log: l.Sugar(), data: silver.NewDatasets(policy)}, nil
}

// close flushes the logger and detaches it from the library.
func (a *app) close() {
	logger.Flush(a.log.Desugar())
	silver.SetLogger(zap.NewNop())
}

func (a *app) sales() ([]silver.SalesRecord, error) {
	path := a.cfg.SalesPath()
	a.log.Debugw("loading sales", "path", path)
	return a.data.Sales(path)
}

func (a *app) prices() ([]silver.PriceRecord, error) {
	path := a.cfg.PricePath()
	a.log.Debugw("loading prices", "path", path)
	return a.data.Prices(path)
}

// topN returns n, or the configured default when n is negative.
func (a *app) topN(n int) int {
	if n < 0 {
		return a.cfg.TopN
	}
	return n
}

// month returns m, or the configured default when m is empty. Unknown months are rejected.
func (a *app) month(m string) (string, error) {
	if m == "" {
		m = a.cfg.Month
	}
	if !silver.ValidMonth(m) {
		return "", &silver.ValidationError{Field: "month", Reason: fmt.Sprintf("%q is not one of %v", m, silver.Months())}
	}
	return m, nil
}

// start runs setup and reports its failure.
func start() (*app, subcommands.ExitStatus) {
	a, err := setup()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return nil, exitStatus(err)
	}
	return a, subcommands.ExitSuccess
}

// exitStatus maps an error to the process exit status.
func exitStatus(err error) subcommands.ExitStatus {
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case errors.Is(err, silver.ErrValidation):
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// fail prints err on stderr and returns the matching exit status.
func fail(what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error %s: %v\n", what, err)
	return exitStatus(err)
}

// printMarkdown renders md for the terminal, or prints it as is with -plain.
func printMarkdown(md string) {
	if !*plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err == nil {
			out, err := r.Render(md)
			if err == nil {
				fmt.Fprint(stdout, out)
				return
			}
		}
	}
	fmt.Fprint(stdout, md)
}
