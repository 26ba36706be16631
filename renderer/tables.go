package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/silver"
	md "github.com/nao1215/markdown"
)

// SalesMarkdown renders the state purchases table.
func SalesMarkdown(sales []silver.SalesRecord) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("State purchases")
	doc.PlainText(fmt.Sprintf("%d states, %s kg of silver purchased in total.", len(sales), silver.Total(sales, silver.ByPurchased)))
	doc.LF()
	doc.Table(salesTable(sales, false))
	return doc.String()
}

// TopMarkdown renders the top-n ranking of states.
func TopMarkdown(top []silver.SalesRecord, n int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Top %d states by silver purchased (kg)", n))
	doc.Table(salesTable(top, true))
	return doc.String()
}

// PricesMarkdown renders the historical prices within band.
func PricesMarkdown(prices []silver.PriceRecord, band silver.Band) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Historical Silver Price (INR/kg)")
	doc.PlainText(fmt.Sprintf("Filter: %s. %s", band, seriesSummary(prices)))
	doc.LF()
	doc.Table(pricesTable(prices))
	return doc.String()
}

// MonthMarkdown renders the price of a given month, year after year.
func MonthMarkdown(prices []silver.PriceRecord, month string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Silver Price in %s by Year", month))
	doc.Table(monthTable(prices))
	return doc.String()
}

// CalculationMarkdown renders a calculator result.
func CalculationMarkdown(c *Calculation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Silver Price Calculator")
	doc.Table(calculationTable(c))
	doc.PlainText(fmt.Sprintf("Calculated Price : %s", c.Total.Plain()))
	return doc.String()
}

func salesTable(sales []silver.SalesRecord, ranked bool) md.TableSet {
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"State", "Silver Purchased (kg)"},
		Rows:      [][]string{},
	}
	if ranked {
		t.Alignment = append([]md.TableAlignment{md.AlignRight}, t.Alignment...)
		t.Header = append([]string{"Rank"}, t.Header...)
	}
	for i, s := range sales {
		row := []string{s.State, s.Purchased.String()}
		if ranked {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func pricesTable(prices []silver.PriceRecord) md.TableSet {
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Silver Price (INR/kg)"},
		Rows:      [][]string{},
	}
	for _, p := range prices {
		t.Rows = append(t.Rows, []string{p.Date.String(), p.Price.String()})
	}
	return t
}

func monthTable(prices []silver.PriceRecord) md.TableSet {
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Year", "Silver Price (INR/kg)"},
		Rows:      [][]string{},
	}
	for _, p := range prices {
		t.Rows = append(t.Rows, []string{strconv.Itoa(p.Year), p.Price.String()})
	}
	return t
}

func calculationTable(c *Calculation) md.TableSet {
	rows := [][]string{
		{"Weight", fmt.Sprintf("%s %s", c.Weight, c.Unit)},
		{"Price per gram", silver.M(c.PricePerGram, silver.INR).String()},
		{"Currency", string(c.Currency)},
	}
	if c.Currency == silver.USD {
		rows = append(rows, []string{"USD per INR", c.Rate.String()})
	}
	rows = append(rows, []string{"Total", c.Total.String()})
	return md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"", "Value"},
		Rows:      rows,
	}
}

// seriesSummary describes the span and range of a price series.
func seriesSummary(prices []silver.PriceRecord) string {
	if len(prices) == 0 {
		return "No months match."
	}
	lo, hi := prices[0].Price, prices[0].Price
	for _, p := range prices[1:] {
		if p.Price.LessThan(lo) {
			lo = p.Price
		}
		if p.Price.GreaterThan(hi) {
			hi = p.Price
		}
	}
	span := silver.Span(prices)
	return fmt.Sprintf("%d months from %s to %s, between %s and %s INR/kg.", len(prices), span.From.MonthKey(), span.To.MonthKey(), lo, hi)
}
