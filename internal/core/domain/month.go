package domain

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// MonthKey identifies a calendar month, e.g. "2024-07".
type MonthKey string

// MonthKeyOf returns the month key of t in t's own location.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey(t.Format(monthKeyLayout))
}

// ParseMonthKey validates and returns a month key.
func ParseMonthKey(s string) (MonthKey, error) {
	if _, err := time.Parse(monthKeyLayout, s); err != nil {
		return "", fmt.Errorf("invalid month key %q: expected YYYY-MM", s)
	}
	return MonthKey(s), nil
}

// Start returns midnight of the first day of the month in loc.
func (k MonthKey) Start(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(monthKeyLayout, string(k), loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Next returns the following month.
func (k MonthKey) Next() MonthKey {
	return MonthKeyOf(k.Start(time.UTC).AddDate(0, 1, 0))
}

// Prev returns the preceding month.
func (k MonthKey) Prev() MonthKey {
	return MonthKeyOf(k.Start(time.UTC).AddDate(0, -1, 0))
}

// Before reports whether k is an earlier month than other.
// The fixed-width layout makes lexical order chronological.
func (k MonthKey) Before(other MonthKey) bool {
	return k < other
}

func (k MonthKey) String() string {
	return string(k)
}
