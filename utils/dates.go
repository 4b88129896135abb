package utils

import (
	"math"
	"time"
)

// DayFormat is the calendar-day layout used on every daily record.
const DayFormat = "2006-01-02"

func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

func FormatDay(t time.Time) string { return t.Format(DayFormat) }

// ParseDay parses a YYYY-MM-DD string in local time.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, time.Local)
}

// DaysBetween returns the number of calendar days from day up to ref,
// ignoring time of day. Rounding absorbs DST-shortened days.
func DaysBetween(day, ref time.Time) int {
	d := DayStart(ref).Sub(DayStart(day))
	return int(math.Round(d.Hours() / 24))
}
