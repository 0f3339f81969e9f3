package domain

import (
	"fmt"
	"time"
)

// ISO calendar-date layout used everywhere in the engine.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO YYYY-MM-DD string into a UTC-midnight instant.
// All engine date arithmetic happens at UTC midnight so month/year
// rollovers and leap years come from the calendar, never from manual
// day counting, and daylight-saving shifts cannot skew day counts.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders a date as ISO YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// AddDays returns the calendar date n days after t (n may be negative).
func AddDays(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, 0, n)
}

// DaysBetween returns the signed day count from a to b, such that
// AddDays(a, DaysBetween(a, b)) equals b for any two valid dates.
func DaysBetween(a, b time.Time) int {
	a = midnight(a)
	b = midnight(b)
	return int(b.Sub(a).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
