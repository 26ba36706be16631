package silver

import (
	"slices"
	"strings"
	"testing"

	"github.com/etnz/silver/date"
)

func price(year int, month string, p int) PriceRecord {
	on, err := date.FromYearMonth(year, month)
	if err != nil {
		panic(err)
	}
	return PriceRecord{Year: year, Month: month, Price: D(p), Date: on}
}

func prices(recs []PriceRecord) string {
	var parts []string
	for _, r := range recs {
		parts = append(parts, r.Date.MonthKey()+":"+r.Price.String())
	}
	return strings.Join(parts, " ")
}

func TestFilterByPriceBand(t *testing.T) {
	records := []PriceRecord{
		price(2019, "Jan", 19999),
		price(2019, "Feb", 20000),
		price(2019, "Mar", 20001),
		price(2019, "Apr", 29999),
		price(2019, "May", 30000),
		price(2019, "Jun", 30001),
	}
	testCases := []struct {
		band Band
		want string
	}{
		{AllBands, "2019-Jan:19999 2019-Feb:20000 2019-Mar:20001 2019-Apr:29999 2019-May:30000 2019-Jun:30001"},
		{BelowLow, "2019-Jan:19999 2019-Feb:20000"},
		{BetweenLowHigh, "2019-Mar:20001 2019-Apr:29999"},
		{AboveHigh, "2019-May:30000 2019-Jun:30001"},
	}
	for _, tc := range testCases {
		t.Run(tc.band.Short(), func(t *testing.T) {
			if got := prices(FilterByPriceBand(records, tc.band)); got != tc.want {
				t.Errorf("FilterByPriceBand(%v) = %v, want %v", tc.band, got, tc.want)
			}
		})
	}
	if len(records) != 6 || !records[0].Price.Equal(D(19999)) {
		t.Errorf("FilterByPriceBand() modified its input")
	}
}

func TestBandPartition(t *testing.T) {
	// every price belongs to exactly one of the three non trivial bands.
	for _, p := range []int{0, 19999, 20000, 20001, 25000, 29999, 30000, 30001, 90000} {
		rec := price(2020, "Jan", p)
		n := 0
		for _, b := range []Band{BelowLow, BetweenLowHigh, AboveHigh} {
			if b.Contains(rec) {
				n++
			}
		}
		if n != 1 {
			t.Errorf("price %d belongs to %d bands, want 1", p, n)
		}
	}
}

func TestParseBand(t *testing.T) {
	testCases := []struct {
		in      string
		want    Band
		wantErr bool
	}{
		{"", AllBands, false},
		{"all", AllBands, false},
		{"LOW", BelowLow, false},
		{"mid", BetweenLowHigh, false},
		{"high", AboveHigh, false},
		{"less than 20,000 INR per kg", BelowLow, false},
		{"Between 20,000 and 30,000 INR per kg", BetweenLowHigh, false},
		{"greater than 30,000 INR per kg", AboveHigh, false},
		{"huge", AllBands, true},
	}
	for _, tc := range testCases {
		got, err := ParseBand(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseBand(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseBand(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFilterByMonth(t *testing.T) {
	records := []PriceRecord{
		price(2019, "Jan", 1),
		price(2019, "Feb", 2),
		price(2020, "Jan", 3),
		price(2021, "jan", 4),
		price(2021, "Jan", 5),
	}
	got := FilterByMonth(records, "Jan")
	if want := "2019-Jan:1 2020-Jan:3 2021-Jan:5"; prices(got) != want {
		t.Errorf("FilterByMonth(Jan) = %v, want %v", prices(got), want)
	}
	if got := FilterByMonth(records, "Dec"); len(got) != 0 {
		t.Errorf("FilterByMonth(Dec) = %v, want none", prices(got))
	}
}

func TestTopN(t *testing.T) {
	sales := []SalesRecord{
		{State: "A", Purchased: D(10)},
		{State: "B", Purchased: D(50)},
		{State: "C", Purchased: D(30)},
		{State: "D", Purchased: D(50)},
		{State: "E", Purchased: D(20)},
	}
	states := func(s []SalesRecord) []string {
		var out []string
		for _, r := range s {
			out = append(out, r.State)
		}
		return out
	}
	testCases := []struct {
		n    int
		want []string
	}{
		{5, []string{"B", "D", "C", "E", "A"}},
		{2, []string{"B", "D"}},
		{10, []string{"B", "D", "C", "E", "A"}},
		{0, nil},
	}
	for _, tc := range testCases {
		if got := states(TopN(sales, tc.n, ByPurchased)); !slices.Equal(got, tc.want) {
			t.Errorf("TopN(%d) = %v, want %v", tc.n, got, tc.want)
		}
	}
	if got := states(sales); !slices.Equal(got, []string{"A", "B", "C", "D", "E"}) {
		t.Errorf("TopN() modified its input: %v", got)
	}
}

func TestTotal(t *testing.T) {
	sales := []SalesRecord{{State: "A", Purchased: D("1.5")}, {State: "B", Purchased: D(2)}}
	if got := Total(sales, ByPurchased); !got.Equal(D("3.5")) {
		t.Errorf("Total() = %v, want 3.5", got)
	}
}

func TestMonths(t *testing.T) {
	if len(Months()) != 12 || Months()[0] != "Jan" {
		t.Errorf("Months() = %v", Months())
	}
	if !ValidMonth("Sep") || ValidMonth("sep") || ValidMonth("Sept") {
		t.Errorf("ValidMonth() is not an exact match")
	}
}

func TestFilterByRange(t *testing.T) {
	records := []PriceRecord{
		price(2019, "Dec", 21000),
		price(2020, "Jan", 22000),
		price(2020, "Jun", 23000),
		price(2021, "Jan", 24000),
	}
	testCases := []struct {
		in   string
		want string
	}{
		{"2020-Jan:2020-Dec", "2020-Jan:22000 2020-Jun:23000"},
		{":2020-Jan", "2019-Dec:21000 2020-Jan:22000"},
		{"2020-Jun:", "2020-Jun:23000 2021-Jan:24000"},
	}
	for _, tc := range testCases {
		r, err := date.ParseRange(tc.in)
		if err != nil {
			t.Fatalf("ParseRange(%q) unexpected error: %v", tc.in, err)
		}
		if got := prices(FilterByRange(records, r)); got != tc.want {
			t.Errorf("FilterByRange(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if got := FilterByRange(records, date.Range{}); len(got) != len(records) {
		t.Errorf("FilterByRange(zero) returned %d records, want %d", len(got), len(records))
	}

	span := Span(records)
	if got, want := span.String(), "2019-Dec:2021-Jan"; got != want {
		t.Errorf("Span() = %q, want %q", got, want)
	}
	if !Span(nil).IsZero() {
		t.Error("Span(nil) should be zero")
	}
}
