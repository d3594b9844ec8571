// Package dateutil normalizes instants to calendar days and enumerates the
// days needed to render a month grid. All functions are pure.
package dateutil

import (
	"time"

	"github.com/mstern/zenith/internal/constants"
)

// DayKey returns the calendar-day identifier (YYYY-MM-DD) for an instant in
// its own location. Two instants on the same local date yield identical keys,
// and keys sort lexically in chronological order.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a day key back into midnight local time.
func ParseDay(key string) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, key, time.Local)
}

// ValidDay reports whether key is a well-formed day key.
func ValidDay(key string) bool {
	_, err := ParseDay(key)
	return err == nil
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// IsFutureDay reports whether the day key names a calendar date strictly
// after ref's calendar date. Day keys sort lexically, so a string compare
// against ref's own key is exact.
func IsFutureDay(day string, ref time.Time) bool {
	return day > DayKey(ref)
}

// PrevDay returns the day key of the calendar day before the given one.
func PrevDay(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, -1)), nil
}

// StartOfMonth returns midnight on the first of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight on the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// MonthGrid returns every day needed to render the month containing t as a
// calendar: from the Sunday on/before the 1st through the Saturday on/after
// the month's last day. The result length is always a multiple of 7. Each
// call computes a fresh slice.
func MonthGrid(t time.Time) []time.Time {
	first := StartOfMonth(t)
	last := first.AddDate(0, 1, -1)

	cur := StartOfWeek(first)
	end := StartOfWeek(last).AddDate(0, 0, 6)

	var days []time.Time
	for !cur.After(end) {
		days = append(days, cur)
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// InMonth reports whether the day key falls within t's calendar month.
func InMonth(day string, t time.Time) bool {
	d, err := ParseDay(day)
	if err != nil {
		return false
	}
	return d.Year() == t.Year() && d.Month() == t.Month()
}
