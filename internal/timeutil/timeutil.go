package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayKey returns the UTC date string for a time; alert dedupe and snapshot
// file names key off this.
func DayKey(t time.Time) string {
	return FormatDate(t.UTC())
}

// DaysAgo returns the UTC date string n days before t.
func DaysAgo(t time.Time, n int) string {
	return FormatDate(t.UTC().AddDate(0, 0, -n))
}
