package domain

import (
	"fmt"
	"time"
)

// Date is a calendar day in ISO "YYYY-MM-DD" form. Days, tasks and
// templates are keyed by Date; all comparisons are lexicographic, which
// matches chronological order for this format.
type Date string

// DateOf returns the Date of t in the given location.
func DateOf(t time.Time, loc *time.Location) Date {
	return Date(t.In(loc).Format(time.DateOnly))
}

// ParseDate parses an ISO date string.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(time.DateOnly, string(d), loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Weekday returns the weekday of the date.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// AddDays returns the date shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date(d.Time(time.UTC).AddDate(0, 0, n).Format(time.DateOnly))
}

// DayNumber returns the day-of-month (1-31).
func (d Date) DayNumber() int {
	return d.Time(time.UTC).Day()
}

func (d Date) String() string { return string(d) }
