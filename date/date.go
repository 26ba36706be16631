// Package date provides a calendar date type for monthly price series.
package date

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthFormat is the layout of a year-month key: 4-digit year and 3-letter English month.
const MonthFormat = "2006-Jan"

// DateFormat is the ISO-8601 layout used to print dates.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// time returns the canonical instant of that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

func (d Date) Year() int          { return d.y }
func (d Date) Month() time.Month  { return d.m }
func (d Date) Day() int           { return d.d }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Before(x Date) bool { return d.Compare(x) < 0 }
func (d Date) After(x Date) bool  { return d.Compare(x) > 0 }

// Compare returns -1, 0 or +1 depending on whether d is before, equal or after x.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.time().Format(DateFormat) }

// MonthKey formats the date as its year-month key, e.g. "2020-Jan".
func (d Date) MonthKey() string { return d.time().Format(MonthFormat) }

// ParseMonth parses a year-month key like "2020-Jan" into the first day of that month.
func ParseMonth(str string) (Date, error) {
	on, err := time.Parse(MonthFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month %q want format %q: %w", str, MonthFormat, err)
	}
	return New(on.Date()), nil
}

// FromYearMonth combines a numeric year and a month abbreviation into a Date.
func FromYearMonth(year int, month string) (Date, error) {
	return ParseMonth(strconv.Itoa(year) + "-" + strings.TrimSpace(month))
}

// Parse parses an ISO date. Single-digit month and day are accepted.
func Parse(str string) (Date, error) {
	on, err := time.Parse("2006-1-2", str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return New(on.Date()), nil
}

// MarshalText formats the date as YYYY-MM-DD, in JSON and YAML alike.
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText parses an ISO date.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

var _ encoding.TextMarshaler = Date{}
var _ encoding.TextUnmarshaler = (*Date)(nil)
