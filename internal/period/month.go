// Package period models budget months.
//
// A Month is a calendar month with no time zone attached. Every transaction,
// plan row and asset snapshot belongs to exactly one Month, and every report
// is computed for an explicit Month passed by the caller.
package period

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Layout is the textual form of a month, e.g. "2025-03".
const Layout = "2006-01"

var monthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Month is a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// Parse parses a "YYYY-MM" string. Anything else, including out-of-range
// month numbers, is rejected.
func Parse(s string) (Month, error) {
	m := monthPattern.FindStringSubmatch(s)
	if m == nil {
		return Month{}, fmt.Errorf("month %q must use the YYYY-MM format", s)
	}
	year, _ := strconv.Atoi(m[1])
	mon, _ := strconv.Atoi(m[2])
	if mon < 1 || mon > 12 {
		return Month{}, fmt.Errorf("month %q has month number %d outside 01-12", s, mon)
	}
	if year < 1 {
		return Month{}, fmt.Errorf("month %q has year 0000", s)
	}
	return Month{Year: year, Month: time.Month(mon)}, nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Month {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Of returns the month containing t.
func Of(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String returns the "YYYY-MM" form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Prev returns the immediately preceding calendar month.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Next returns the immediately following calendar month.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Start returns midnight UTC on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight UTC on the first day of the following month.
func (m Month) End() time.Time {
	return m.Next().Start()
}

// Contains reports whether t falls within the month, using t's own calendar date.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Before reports whether m is earlier than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

// Through returns every month from m to last inclusive. It returns nil when
// last is before m.
func (m Month) Through(last Month) []Month {
	var out []Month
	for cur := m; !last.Before(cur); cur = cur.Next() {
		out = append(out, cur)
	}
	return out
}
