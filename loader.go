package silver

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/silver/date"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Column names of the sales dataset.
const (
	ColState     = "State"
	ColPurchased = "Silver_Purchased_kg"
)

// Column names of the price dataset.
const (
	ColYear  = "Year"
	ColMonth = "Month"
	ColPrice = "Silver_Price_INR_per_kg"
)

// DecodeSales reads the sales dataset at path.
//
// Rows with a non-numeric quantity are skipped and counted in the log.
func DecodeSales(path string) ([]SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	sales, dropped, err := ParseSales(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	logDropped(path, len(sales), dropped)
	return sales, nil
}

// DecodePrices reads the price dataset at path, sorted by date.
//
// Rows whose year, month or price cannot be parsed are skipped and counted in the log.
func DecodePrices(path string) ([]PriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	prices, dropped, err := ParsePrices(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	logDropped(path, len(prices), dropped)
	return prices, nil
}

// ParseSales parses a sales CSV stream. It returns the records in input order
// and the number of rows that were dropped.
func ParseSales(r io.Reader) (sales []SalesRecord, dropped int, err error) {
	rows, cols, dropped, err := readTable(r, ColState, ColPurchased)
	if err != nil {
		return nil, 0, err
	}
	sales = make([]SalesRecord, 0, len(rows))
	for _, row := range rows {
		purchased, err := decimal.NewFromString(field(row, cols[ColPurchased]))
		if err != nil {
			dropped++
			continue
		}
		sales = append(sales, SalesRecord{State: field(row, cols[ColState]), Purchased: purchased})
	}
	return sales, dropped, nil
}

// ParsePrices parses a price CSV stream. Records are stably sorted by date.
func ParsePrices(r io.Reader) (prices []PriceRecord, dropped int, err error) {
	rows, cols, dropped, err := readTable(r, ColYear, ColMonth, ColPrice)
	if err != nil {
		return nil, 0, err
	}
	prices = make([]PriceRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := parsePriceRow(field(row, cols[ColYear]), field(row, cols[ColMonth]), field(row, cols[ColPrice]))
		if err != nil {
			dropped++
			continue
		}
		prices = append(prices, rec)
	}
	slices.SortStableFunc(prices, func(a, b PriceRecord) int { return a.Date.Compare(b.Date) })
	return prices, dropped, nil
}

func parsePriceRow(year, month, price string) (PriceRecord, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return PriceRecord{}, fmt.Errorf("invalid year %q: %w", year, err)
	}
	on, err := date.FromYearMonth(y, month)
	if err != nil {
		return PriceRecord{}, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return PriceRecord{}, fmt.Errorf("invalid price %q: %w", price, err)
	}
	return PriceRecord{Year: y, Month: month, Price: p, Date: on}, nil
}

// readTable reads a CSV stream with a header line, and returns the data rows,
// the index of each required column and the number of malformed rows skipped.
//
// Malformed rows (like a stray quote) are skipped. Read failures of the
// underlying stream are returned as an *IOError.
func readTable(r io.Reader, required ...string) (rows [][]string, cols map[string]int, malformed int, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row width is checked per field
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, 0, &ParseError{Err: ErrEmpty}
	}
	if err != nil {
		return nil, nil, 0, readError(err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	cols = make(map[string]int, len(required))
	for _, name := range required {
		i, ok := index[name]
		if !ok {
			return nil, nil, 0, &ParseError{Column: name, Err: ErrMissingColumn}
		}
		cols[name] = i
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, cols, malformed, nil
		}
		var cerr *csv.ParseError
		if errors.As(err, &cerr) {
			logger.Debug("malformed row skipped", zap.Int("line", cerr.Line), zap.Error(cerr.Err))
			malformed++
			continue
		}
		if err != nil {
			return nil, nil, 0, readError(err)
		}
		rows = append(rows, row)
	}
}

// readError classifies a csv.Reader error: syntax errors are a *ParseError,
// anything else comes from the stream and is an *IOError.
func readError(err error) error {
	var cerr *csv.ParseError
	if errors.As(err, &cerr) {
		return &ParseError{Err: err}
	}
	return &IOError{Err: err}
}

// field returns the trimmed i-th field of row, or "" for short rows.
func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func withPath(err error, path string) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Path = path
	}
	var ioerr *IOError
	if errors.As(err, &ioerr) {
		ioerr.Path = path
	}
	return err
}

func logDropped(path string, kept, dropped int) {
	if dropped == 0 {
		logger.Debug("dataset loaded", zap.String("path", path), zap.Int("rows", kept))
		return
	}
	logger.Warn("dataset loaded with dropped rows",
		zap.String("path", path),
		zap.Int("rows", kept),
		zap.Int("dropped", dropped),
	)
}
