package silver

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in a currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   Currency
}

// M returns a Money value.
func M(value decimal.Decimal, cur Currency) Money { return Money{value: value, cur: cur} }

func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) Currency() Currency      { return m.cur }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }

// String formats the amount with the currency symbol and its minor unit digits,
// e.g. "₹5,000.00".
func (m Money) String() string {
	cur := *money.New(0, string(m.cur)).Currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// Plain formats the amount with thousand separators and two decimals, followed by
// the currency code, e.g. "5,000.00 INR".
func (m Money) Plain() string {
	f := money.NewFormatter(2, ".", ",", string(m.cur), "1 $")
	return f.Format(m.value.Round(2).Shift(2).IntPart())
}
