package status

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned when a date string on a record cannot be parsed.
var ErrInvalidDateFormat = errors.New("invalid date format")

const (
	dateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate parses a stored date into a calendar date (midnight UTC).
// Plain YYYY-MM-DD values are taken as-is; timestamps are first moved into
// loc so that the calendar day matches what the planner sees.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}

	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return calendarDay(t, loc), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
}

// calendarDay truncates t to its calendar date in loc, expressed as midnight UTC.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of calendar days from `from` to `to`.
// Both must be calendar days produced by calendarDay or ParseDate.
func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}
