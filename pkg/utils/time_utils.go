package utils

import (
	"fmt"
	"time"
)

const (
	// DateOnly is the wire format for scheduling dates.
	DateOnly = "2006-01-02"
	// ClockTime is the wire format for start/end times within a day.
	ClockTime = "15:04"
)

func NowUnixSeconds() int64 { return time.Now().Unix() }

// ParseDateOnly parses a "yyyy-mm-dd" string into a UTC midnight time.
func ParseDateOnly(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateOnly, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func FormatDateOnly(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateOnly)
}

// ParseClock validates an "hh:mm" string and returns minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockTime, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// TruncateToDay drops the time-of-day component, keeping the location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
