package renderer

import (
	"github.com/etnz/silver"
	"github.com/shopspring/decimal"
)

// Calculation holds the inputs and result of the price calculator.
type Calculation struct {
	Weight       decimal.Decimal
	Unit         silver.Unit
	PricePerGram decimal.Decimal // INR
	Currency     silver.Currency
	Rate         decimal.Decimal // USD per INR, used for USD only
	Total        silver.Money
}

// Dashboard holds everything displayed on the dashboard.
type Dashboard struct {
	Calculation *Calculation

	Band   silver.Band
	Prices []silver.PriceRecord // already filtered by Band

	Sales []silver.SalesRecord
	N     int
	Top   []silver.SalesRecord

	Month       string
	MonthPrices []silver.PriceRecord
}
