package silver

import (
	"github.com/etnz/silver/date"
	"github.com/shopspring/decimal"
)

// SalesRecord is the quantity of silver purchased in a state.
type SalesRecord struct {
	State     string
	Purchased decimal.Decimal // kilograms
}

// PriceRecord is the average silver price for a month.
type PriceRecord struct {
	Year  int
	Month string          // three-letter abbreviation, e.g. "Jan"
	Price decimal.Decimal // INR per kilogram
	Date  date.Date       // first day of Year-Month
}

// D is a convenient factory for decimal.Decimal.
func D[T float64 | int | int64 | string](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case string:
		return decimal.RequireFromString(v)
	default:
		panic("unsupported type")
	}
}
