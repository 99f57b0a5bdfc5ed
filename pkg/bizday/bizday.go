// Package bizday derives calendar-day keys for a user base living at a fixed UTC-3 offset.
//
// The offset is applied as a constant shift of the instant, not through the timezone
// database. The target region has no daylight saving, so the shift is exact there.
// Every "today" in the service comes from Today.
package bizday

import (
	"errors"
	"time"
)

const (
	Layout = "2006-01-02"
	Offset = 3 * time.Hour
)

var ErrInvalidDay = errors.New("day must be formatted as YYYY-MM-DD")

// Today returns the business-day key for the instant now.
func Today(now time.Time) string {
	return now.UTC().Add(-Offset).Format(Layout)
}

// DaysAgo returns the key of the business day n days before Today(now).
func DaysAgo(now time.Time, n int) string {
	return now.UTC().Add(-Offset).AddDate(0, 0, -n).Format(Layout)
}

// Parse validates a day key.
func Parse(day string) (time.Time, error) {
	t, err := time.Parse(Layout, day)
	if err != nil {
		return time.Time{}, ErrInvalidDay
	}
	return t, nil
}

// Bounds returns the UTC instants [start, end) covering the business day.
func Bounds(day string) (time.Time, time.Time, error) {
	t, err := Parse(day)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := t.Add(Offset)
	return start, start.Add(24 * time.Hour), nil
}

// Of returns the business-day key an instant belongs to.
func Of(instant time.Time) string {
	return Today(instant)
}
