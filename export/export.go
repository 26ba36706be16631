// Package export writes the silver datasets and query results to JSON, YAML or XLSX.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/silver"
	"github.com/etnz/silver/date"
	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	XLSX Format = "xlsx"
)

// Formats returns the supported formats.
func Formats() []Format { return []Format{JSON, YAML, XLSX} }

// ParseFormat parses a format name, case-insensitively. "yml" is YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, YAML, XLSX:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown export format %q, want json, yaml or xlsx", s)
}

// SalesRow is the exported form of a silver.SalesRecord.
type SalesRow struct {
	Rank        int     `json:"rank,omitempty" yaml:"rank,omitempty"`
	State       string  `json:"state" yaml:"state"`
	PurchasedKg float64 `json:"purchased_kg" yaml:"purchased_kg"`
}

// PriceRow is the exported form of a silver.PriceRecord.
type PriceRow struct {
	Date          date.Date `json:"date" yaml:"date"`
	Year          int       `json:"year" yaml:"year"`
	Month         string    `json:"month" yaml:"month"`
	PriceINRPerKg float64   `json:"price_inr_per_kg" yaml:"price_inr_per_kg"`
}

// Bundle is the content of an export.
type Bundle struct {
	Band  string     `json:"band" yaml:"band"`
	Month string     `json:"month" yaml:"month"`
	Sales []SalesRow `json:"sales" yaml:"sales"`
	Top   []SalesRow `json:"top" yaml:"top"`
	// Prices is filtered by Band.
	Prices []PriceRow `json:"prices" yaml:"prices"`
	// MonthPrices is filtered by Month.
	MonthPrices []PriceRow `json:"month_prices" yaml:"month_prices"`
}

// NewBundle converts the query results into a Bundle.
func NewBundle(band silver.Band, month string, sales, top []silver.SalesRecord, prices, monthPrices []silver.PriceRecord) *Bundle {
	b := &Bundle{
		Band:        band.Short(),
		Month:       month,
		Sales:       salesRows(sales, false),
		Top:         salesRows(top, true),
		Prices:      priceRows(prices),
		MonthPrices: priceRows(monthPrices),
	}
	return b
}

func salesRows(sales []silver.SalesRecord, ranked bool) []SalesRow {
	rows := make([]SalesRow, 0, len(sales))
	for i, s := range sales {
		row := SalesRow{State: s.State, PurchasedKg: s.Purchased.InexactFloat64()}
		if ranked {
			row.Rank = i + 1
		}
		rows = append(rows, row)
	}
	return rows
}

func priceRows(prices []silver.PriceRecord) []PriceRow {
	rows := make([]PriceRow, 0, len(prices))
	for _, p := range prices {
		rows = append(rows, PriceRow{
			Date:          p.Date,
			Year:          p.Year,
			Month:         p.Month,
			PriceINRPerKg: p.Price.InexactFloat64(),
		})
	}
	return rows
}

// Write writes the bundle to w in the given format.
func Write(w io.Writer, format Format, b *Bundle) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return err
		}
		return enc.Close()
	case XLSX:
		return writeXLSX(w, b)
	}
	return fmt.Errorf("unknown export format %q", string(format))
}
