// Package window computes the closed time ranges used to bound feed queries.
package window

import (
	"errors"
	"time"
)

var ErrInvalidMonths = errors.New("window: months must be at least 1")

// Range is a closed time range; both ends are inclusive.
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range, bounds included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// LastNMonths returns the range ending at ref and starting n calendar months
// earlier. When the start month is shorter than ref's day-of-month, the day is
// clamped to the last day of that month: Aug 31 minus one month is Jul 31, and
// Mar 31 minus one month is Feb 28 (29 in leap years), never an overflow into
// the following month.
func LastNMonths(n int, ref time.Time) (Range, error) {
	if n < 1 {
		return Range{}, ErrInvalidMonths
	}

	year, month, day := ref.Date()

	months := year*12 + int(month) - 1 - n
	startYear := months / 12
	startMonth := months % 12
	if startMonth < 0 {
		startMonth += 12
		startYear--
	}

	if last := daysIn(startYear, time.Month(startMonth+1)); day > last {
		day = last
	}

	start := time.Date(startYear, time.Month(startMonth+1), day,
		ref.Hour(), ref.Minute(), ref.Second(), ref.Nanosecond(), ref.Location())

	return Range{Start: start, End: ref}, nil
}

// daysIn returns the number of days in the given month; day zero of the next
// month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
