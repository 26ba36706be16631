// Package config loads the silver command configuration.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/silver"
	"github.com/spf13/viper"
)

// Config holds every configurable value of the silver command.
type Config struct {
	// Datasets
	DataDir   string `mapstructure:"data_dir"`
	SalesFile string `mapstructure:"sales_file"`
	PriceFile string `mapstructure:"price_file"`

	// Cache invalidation: forever, ttl or modtime.
	CachePolicy string        `mapstructure:"cache_policy"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`

	// Dashboard defaults
	TopN  int    `mapstructure:"top_n"`
	Month string `mapstructure:"month"`

	// Calculator
	USDRate     float64       `mapstructure:"usd_rate"`
	RateURL     string        `mapstructure:"rate_url"`
	RatePath    string        `mapstructure:"rate_path"`
	RateTimeout time.Duration `mapstructure:"rate_timeout"`

	LogLevel string `mapstructure:"log_level"` // debug|info|warn|error
}

// Default values.
const (
	DefaultDataDir     = "data"
	DefaultSalesFile   = "state_wise_silver_purchased_kg.csv"
	DefaultPriceFile   = "historical_silver_price.csv"
	DefaultCachePolicy = "forever"
	DefaultCacheTTL    = 10 * time.Minute
	DefaultTopN        = 5
	DefaultMonth       = "Jan"
	DefaultUSDRate     = 0.11
	DefaultRateTimeout = 10 * time.Second
	DefaultLogLevel    = "warn"
)

// EnvPrefix prefixes the environment variables, e.g. SILVER_DATA_DIR.
const EnvPrefix = "SILVER"

// Load reads configuration from (in decreasing priority):
//  1. environment variables (e.g. SILVER_TOP_N)
//  2. the yaml file at path, or silver.yaml in the working directory or in
//     $HOME/.config/silver when path is empty
//  3. defaults
//
// Command line flags are applied by the caller.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("sales_file", DefaultSalesFile)
	v.SetDefault("price_file", DefaultPriceFile)
	v.SetDefault("cache_policy", DefaultCachePolicy)
	v.SetDefault("cache_ttl", DefaultCacheTTL)
	v.SetDefault("top_n", DefaultTopN)
	v.SetDefault("month", DefaultMonth)
	v.SetDefault("usd_rate", DefaultUSDRate)
	v.SetDefault("rate_url", "")
	v.SetDefault("rate_path", "")
	v.SetDefault("rate_timeout", DefaultRateTimeout)
	v.SetDefault("log_level", DefaultLogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config %q: %w", path, err)
		}
	} else {
		v.SetConfigName("silver")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/silver")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("cannot read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var errs error
	if c.SalesFile == "" {
		errs = errors.Join(errs, errors.New("sales_file must not be empty"))
	}
	if c.PriceFile == "" {
		errs = errors.Join(errs, errors.New("price_file must not be empty"))
	}
	if c.TopN < 0 {
		errs = errors.Join(errs, fmt.Errorf("top_n must not be negative, got %d", c.TopN))
	}
	if !silver.ValidMonth(c.Month) {
		errs = errors.Join(errs, fmt.Errorf("month %q is not one of %v", c.Month, silver.Months()))
	}
	if c.USDRate <= 0 {
		errs = errors.Join(errs, fmt.Errorf("usd_rate must be positive, got %v", c.USDRate))
	}
	if (c.RateURL == "") != (c.RatePath == "") {
		errs = errors.Join(errs, errors.New("rate_url and rate_path must be set together"))
	}
	if _, err := c.Policy(); err != nil {
		errs = errors.Join(errs, err)
	}
	return errs
}

// SalesPath returns the sales dataset path, relative to the data directory unless absolute.
func (c *Config) SalesPath() string { return c.resolve(c.SalesFile) }

// PricePath returns the price dataset path, relative to the data directory unless absolute.
func (c *Config) PricePath() string { return c.resolve(c.PriceFile) }

func (c *Config) resolve(file string) string {
	if filepath.IsAbs(file) || c.DataDir == "" {
		return file
	}
	return filepath.Join(c.DataDir, file)
}

// Policy returns the dataset cache policy.
func (c *Config) Policy() (silver.Policy, error) {
	switch strings.ToLower(c.CachePolicy) {
	case "", "forever":
		return silver.Forever, nil
	case "ttl":
		if c.CacheTTL <= 0 {
			return nil, fmt.Errorf("cache_ttl must be positive, got %v", c.CacheTTL)
		}
		return silver.TTL(c.CacheTTL), nil
	case "modtime":
		return silver.ModTime, nil
	}
	return nil, fmt.Errorf("unknown cache_policy %q, want forever, ttl or modtime", c.CachePolicy)
}

// RateSource returns the remote exchange rate source, if configured.
func (c *Config) RateSource() (silver.RateSource, bool) {
	if c.RateURL == "" {
		return silver.RateSource{}, false
	}
	return silver.RateSource{URL: c.RateURL, Path: c.RatePath}, true
}
