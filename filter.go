package silver

import (
	"slices"

	"github.com/etnz/silver/date"
	"github.com/shopspring/decimal"
)

var monthAbbrevs = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Months returns the canonical three-letter month abbreviations.
func Months() []string { return slices.Clone(monthAbbrevs) }

// ValidMonth reports whether m is a canonical month abbreviation.
func ValidMonth(m string) bool { return slices.Contains(monthAbbrevs, m) }

// FilterByPriceBand returns the records within band, in their original order.
func FilterByPriceBand(records []PriceRecord, band Band) []PriceRecord {
	return filter(records, band.Contains)
}

// FilterByMonth returns the records whose month is exactly month.
// The comparison is case-sensitive.
func FilterByMonth(records []PriceRecord, month string) []PriceRecord {
	return filter(records, func(p PriceRecord) bool { return p.Month == month })
}

// FilterByRange returns the records dated within r. A zero range keeps every record.
func FilterByRange(records []PriceRecord, r date.Range) []PriceRecord {
	if r.IsZero() {
		return slices.Clone(records)
	}
	return filter(records, func(p PriceRecord) bool { return r.Contains(p.Date) })
}

// Span returns the range from the first to the last record of a date sorted series.
func Span(records []PriceRecord) date.Range {
	if len(records) == 0 {
		return date.Range{}
	}
	return date.Range{From: records[0].Date, To: records[len(records)-1].Date}
}

func filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// SalesField selects the numeric field a ranking is computed on.
type SalesField func(SalesRecord) decimal.Decimal

// ByPurchased ranks sales by purchased kilograms.
func ByPurchased(s SalesRecord) decimal.Decimal { return s.Purchased }

// TopN returns the n records with the largest value of by, in descending order.
// Ties keep their input order. Fewer than n records are returned when sales is shorter.
func TopN(sales []SalesRecord, n int, by SalesField) []SalesRecord {
	if n <= 0 {
		return []SalesRecord{}
	}
	ranked := slices.Clone(sales)
	slices.SortStableFunc(ranked, func(a, b SalesRecord) int { return by(b).Cmp(by(a)) })
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Total sums the field over all records.
func Total(sales []SalesRecord, by SalesField) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(by(s))
	}
	return sum
}
