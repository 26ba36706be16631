package silver

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Unit is a unit of weight.
type Unit int

const (
	Grams Unit = iota
	Kilograms
)

func (u Unit) String() string {
	switch u {
	case Grams:
		return "grams"
	case Kilograms:
		return "kilograms"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit parses "grams", "g", "kilograms" or "kg", case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grams", "gram", "g":
		return Grams, nil
	case "kilograms", "kilogram", "kg":
		return Kilograms, nil
	}
	return Grams, &ValidationError{Field: "unit", Reason: fmt.Sprintf("%q is not grams or kilograms", s)}
}

// Currency is an ISO-4217 currency code.
type Currency string

const (
	INR Currency = "INR"
	USD Currency = "USD"
)

// ParseCurrency parses INR or USD, case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(s))); c {
	case INR, USD:
		return c, nil
	}
	return INR, &ValidationError{Field: "currency", Reason: fmt.Sprintf("%q is not INR or USD", s)}
}

// DefaultUSDRate is the fixed number of USD per INR.
var DefaultUSDRate = D("0.11")

// Calculator prices a weight of silver.
type Calculator struct {
	// USDRate is the number of USD per INR. Zero means DefaultUSDRate.
	USDRate decimal.Decimal
}

// Price returns the price of weight of silver, given in unit, at pricePerGram INR.
//
// Negative weight, price or rate are rejected with a ValidationError.
func (c Calculator) Price(weight decimal.Decimal, unit Unit, pricePerGram decimal.Decimal, cur Currency) (Money, error) {
	rate := c.USDRate
	if rate.IsZero() {
		rate = DefaultUSDRate
	}
	switch {
	case weight.IsNegative():
		return Money{}, &ValidationError{Field: "weight", Reason: "must not be negative"}
	case pricePerGram.IsNegative():
		return Money{}, &ValidationError{Field: "price per gram", Reason: "must not be negative"}
	case rate.IsNegative():
		return Money{}, &ValidationError{Field: "usd rate", Reason: "must not be negative"}
	}

	grams := weight
	switch unit {
	case Grams:
	case Kilograms:
		grams = weight.Mul(D(1000))
	default:
		return Money{}, &ValidationError{Field: "unit", Reason: fmt.Sprintf("unsupported %v", unit)}
	}

	total := grams.Mul(pricePerGram)
	switch cur {
	case INR:
	case USD:
		total = total.Mul(rate)
	default:
		return Money{}, &ValidationError{Field: "currency", Reason: fmt.Sprintf("unsupported %q", string(cur))}
	}
	return M(total, cur), nil
}

// ConvertAndPrice prices weight of silver with the fixed USD rate.
func ConvertAndPrice(weight decimal.Decimal, unit Unit, pricePerGram decimal.Decimal, cur Currency) (decimal.Decimal, error) {
	m, err := Calculator{}.Price(weight, unit, pricePerGram, cur)
	if err != nil {
		return decimal.Zero, err
	}
	return m.Amount(), nil
}
