package date

import (
	"fmt"
	"strings"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Contains return true if date is included in the range.
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsZero reports whether the range is unset.
func (r Range) IsZero() bool { return r.From.IsZero() && r.To.IsZero() }

// Months returns the number of calendar months the range spans.
func (r Range) Months() int {
	if r.To.Before(r.From) {
		return 0
	}
	return (r.To.Year()-r.From.Year())*12 + int(r.To.Month()-r.From.Month()) + 1
}

// String formats the range with month keys, e.g. "2019-Feb:2020-Jan".
func (r Range) String() string {
	if r.IsZero() {
		return ""
	}
	return r.From.MonthKey() + ":" + r.To.MonthKey()
}

// ParseRange parses "FROM:TO" month keys, like "2019-Feb:2020-Jan", into the
// range from the first day of FROM to the last day of TO.
// An empty FROM or TO leaves that side open.
func ParseRange(str string) (Range, error) {
	from, to, ok := strings.Cut(str, ":")
	if !ok {
		return Range{}, fmt.Errorf("invalid range %q want format %q", str, MonthFormat+":"+MonthFormat)
	}
	var r Range
	var err error
	if from != "" {
		if r.From, err = ParseMonth(from); err != nil {
			return Range{}, err
		}
	}
	if to == "" {
		r.To = New(9999, 12, 31)
	} else {
		if r.To, err = ParseMonth(to); err != nil {
			return Range{}, err
		}
		r.To = New(r.To.Year(), r.To.Month()+1, 0)
	}
	if r.To.Before(r.From) {
		return Range{}, fmt.Errorf("invalid range %q: %s is after %s", str, from, to)
	}
	return r, nil
}

// Set implements flag.Value.
func (r *Range) Set(str string) error {
	v, err := ParseRange(str)
	if err != nil {
		return err
	}
	*r = v
	return nil
}
