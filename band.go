package silver

import (
	"fmt"
	"strings"
)

// Band is a named range of silver price in INR per kilogram.
type Band int

const (
	AllBands       Band = iota // no filter
	BelowLow                   // price <= 20000
	BetweenLowHigh             // 20000 < price < 30000
	AboveHigh                  // price >= 30000
)

// Band thresholds in INR per kilogram.
var (
	LowThreshold  = D(20000)
	HighThreshold = D(30000)
)

var bandNames = []struct {
	short, label string
}{
	AllBands:       {"all", "All"},
	BelowLow:       {"low", "less than 20,000 INR per kg"},
	BetweenLowHigh: {"mid", "Between 20,000 and 30,000 INR per kg"},
	AboveHigh:      {"high", "greater than 30,000 INR per kg"},
}

// Bands returns all the bands in display order.
func Bands() []Band { return []Band{AllBands, BelowLow, BetweenLowHigh, AboveHigh} }

// String returns the human label of the band.
func (b Band) String() string {
	if b < 0 || int(b) >= len(bandNames) {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return bandNames[b].label
}

// Short returns the short name of the band, as accepted by ParseBand.
func (b Band) Short() string {
	if b < 0 || int(b) >= len(bandNames) {
		return ""
	}
	return bandNames[b].short
}

// Contains reports whether a record belongs to the band.
//
// The low and high bands include their threshold, the middle band excludes both.
func (b Band) Contains(p PriceRecord) bool {
	switch b {
	case AllBands:
		return true
	case BelowLow:
		return p.Price.LessThanOrEqual(LowThreshold)
	case BetweenLowHigh:
		return p.Price.GreaterThan(LowThreshold) && p.Price.LessThan(HighThreshold)
	case AboveHigh:
		return p.Price.GreaterThanOrEqual(HighThreshold)
	}
	return false
}

// ParseBand parses a band from its short name or its label, case-insensitively.
// The empty string is AllBands.
func ParseBand(s string) (Band, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllBands, nil
	}
	for _, b := range Bands() {
		if strings.EqualFold(s, b.Short()) || strings.EqualFold(s, b.String()) {
			return b, nil
		}
	}
	return AllBands, fmt.Errorf("unknown price band %q, want one of all, low, mid, high", s)
}

// Set implements flag.Value.
func (b *Band) Set(s string) error {
	v, err := ParseBand(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
