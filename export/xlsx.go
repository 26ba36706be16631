package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the XLSX export.
const (
	SheetSales       = "Sales"
	SheetTop         = "Top"
	SheetPrices      = "Prices"
	SheetMonthPrices = "Month"
)

// writeXLSX writes one sheet per collection of the bundle.
func writeXLSX(w io.Writer, b *Bundle) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSales); err != nil {
		return err
	}
	for _, name := range []string{SheetTop, SheetPrices, SheetMonthPrices} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("cannot create sheet %q: %w", name, err)
		}
	}

	sales := [][]any{}
	for _, r := range b.Sales {
		sales = append(sales, []any{r.State, r.PurchasedKg})
	}
	top := [][]any{}
	for _, r := range b.Top {
		top = append(top, []any{r.Rank, r.State, r.PurchasedKg})
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SheetSales, []any{"State", "Silver_Purchased_kg"}, sales},
		{SheetTop, []any{"Rank", "State", "Silver_Purchased_kg"}, top},
		{SheetPrices, []any{"Date", "Year", "Month", "Silver_Price_INR_per_kg"}, priceCells(b.Prices)},
		{SheetMonthPrices, []any{"Date", "Year", "Month", "Silver_Price_INR_per_kg"}, priceCells(b.MonthPrices)},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.header, s.rows); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write xlsx: %w", err)
	}
	return nil
}

func priceCells(rows []PriceRow) [][]any {
	cells := [][]any{}
	for _, r := range rows {
		cells = append(cells, []any{r.Date.String(), r.Year, r.Month, r.PriceINRPerKg})
	}
	return cells
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	for i, row := range append([][]any{header}, rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("cannot write row %d of sheet %q: %w", i+1, sheet, err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, 18)
}
