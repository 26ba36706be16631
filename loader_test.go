package silver

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/etnz/silver/date"
)

func TestParsePrices(t *testing.T) {
	csv := "Year,Month,Silver_Price_INR_per_kg\n2020,Jan,25000\n2020,Xyz,9999\n"
	prices, dropped, err := ParsePrices(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParsePrices() unexpected error: %v", err)
	}
	if len(prices) != 1 {
		t.Fatalf("ParsePrices() returned %d records, want 1", len(prices))
	}
	if dropped != 1 {
		t.Errorf("ParsePrices() dropped = %d, want 1", dropped)
	}
	if want := date.New(2020, time.January, 1); prices[0].Date != want {
		t.Errorf("ParsePrices() date = %v, want %v", prices[0].Date, want)
	}
	if !prices[0].Price.Equal(D(25000)) {
		t.Errorf("ParsePrices() price = %v, want 25000", prices[0].Price)
	}
}

func TestParsePrices_SortAndDrop(t *testing.T) {
	csv := `Month, Year ,Silver_Price_INR_per_kg,Note
Mar,2021,30000,a
Jan,2021,28000,b
Feb,2020,abc,c
Jan,20x1,1000,d
Jan,2020,20000,e
Mar,2021,31000,f
Feb
`
	prices, dropped, err := ParsePrices(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParsePrices() unexpected error: %v", err)
	}
	if dropped != 3 {
		t.Errorf("ParsePrices() dropped = %d, want 3", dropped)
	}
	want := []string{"2020-Jan:20000", "2021-Jan:28000", "2021-Mar:30000", "2021-Mar:31000"}
	var got []string
	for _, p := range prices {
		got = append(got, p.Date.MonthKey()+":"+p.Price.String())
	}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("ParsePrices() = %v, want %v", got, want)
	}
}

func TestParseSales(t *testing.T) {
	csv := "\ufeffState,Silver_Purchased_kg\nKerala,120.5\nGoa,n/a\n\"Tamil Nadu\",300\n"
	sales, dropped, err := ParseSales(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseSales() unexpected error: %v", err)
	}
	if dropped != 1 {
		t.Errorf("ParseSales() dropped = %d, want 1", dropped)
	}
	if len(sales) != 2 {
		t.Fatalf("ParseSales() returned %d records, want 2", len(sales))
	}
	if sales[0].State != "Kerala" || !sales[0].Purchased.Equal(D("120.5")) {
		t.Errorf("ParseSales()[0] = %v, want Kerala 120.5", sales[0])
	}
	if sales[1].State != "Tamil Nadu" {
		t.Errorf("ParseSales()[1].State = %q, want %q", sales[1].State, "Tamil Nadu")
	}
}

func TestParseSales_MalformedRow(t *testing.T) {
	csv := "State,Silver_Purchased_kg\nKerala,120\nGo\"a,15\nPunjab,300\n"
	sales, dropped, err := ParseSales(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseSales() unexpected error: %v", err)
	}
	if dropped != 1 {
		t.Errorf("ParseSales() dropped = %d, want 1", dropped)
	}
	var got []string
	for _, s := range sales {
		got = append(got, s.State)
	}
	if want := "Kerala Punjab"; strings.Join(got, " ") != want {
		t.Errorf("ParseSales() states = %v, want %s", got, want)
	}
}

func TestParsePrices_MonthCase(t *testing.T) {
	csv := "Year,Month,Silver_Price_INR_per_kg\n2020,jan,25000\n2020,JAN,25100\n2020,Jan,25200\n"
	prices, dropped, err := ParsePrices(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParsePrices() unexpected error: %v", err)
	}
	if dropped != 0 || len(prices) != 3 {
		t.Fatalf("ParsePrices() = %d records, %d dropped, want 3 and 0", len(prices), dropped)
	}
	var months []string
	for _, p := range prices {
		months = append(months, p.Month)
		if p.Date != date.New(2020, time.January, 1) {
			t.Errorf("ParsePrices() date of %q = %v, want 2020-01-01", p.Month, p.Date)
		}
	}
	if want := "jan JAN Jan"; strings.Join(months, " ") != want {
		t.Errorf("ParsePrices() months = %v, want %s", months, want)
	}
	if got := FilterByMonth(prices, "Jan"); len(got) != 1 || !got[0].Price.Equal(D(25200)) {
		t.Errorf("FilterByMonth(Jan) = %v, want the 25200 record only", got)
	}
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		parse   func(string) error
		csv     string
		wantErr error
	}{
		{
			name:    "sales missing column",
			parse:   func(s string) error { _, _, err := ParseSales(strings.NewReader(s)); return err },
			csv:     "State,Kg\nGoa,1\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "prices missing column",
			parse:   func(s string) error { _, _, err := ParsePrices(strings.NewReader(s)); return err },
			csv:     "Year,Silver_Price_INR_per_kg\n2020,1\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "empty file",
			parse:   func(s string) error { _, _, err := ParsePrices(strings.NewReader(s)); return err },
			csv:     "",
			wantErr: ErrEmpty,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.parse(tc.csv)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("parse error = %v, want %v", err, tc.wantErr)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("parse error %T is not a *ParseError", err)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")
	_, err := DecodeSales(missing)
	var ioerr *IOError
	if !errors.As(err, &ioerr) {
		t.Fatalf("DecodeSales() error = %v, want an *IOError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("DecodeSales() error = %v, want fs.ErrNotExist", err)
	}

	dir := t.TempDir()
	_, err = DecodeSales(dir)
	if !errors.As(err, &ioerr) {
		t.Fatalf("DecodeSales(dir) error = %v, want an *IOError", err)
	}
	if ioerr.Path != dir {
		t.Errorf("DecodeSales(dir) error path = %q, want %q", ioerr.Path, dir)
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		t.Errorf("DecodeSales(dir) error = %v, should not be a *ParseError", err)
	}

	bad := writeFile(t, "bad.csv", "Year,Month\n2020,Jan\n")
	_, err = DecodePrices(bad)
	if !errors.As(err, &perr) {
		t.Fatalf("DecodePrices() error = %v, want a *ParseError", err)
	}
	if perr.Path != bad || perr.Column != ColPrice {
		t.Errorf("DecodePrices() error = %+v, want path %q and column %q", perr, bad, ColPrice)
	}
}

// writeFile writes content to a new file in a temporary directory and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
