package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	LongDateLayout = "January 2, 2006"
)

// Clock is the source of "now" for anything that validates against today.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (f FixedClock) Now() time.Time { return f.At }

// ParseDate accepts a calendar date (2006-01-02) or a full RFC3339 timestamp.
// The result is midnight UTC of the calendar date that was written.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return DateOnly(t), nil
}

// DateOnly keeps the calendar date of t (in t's location) at midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func FormatLongDate(t time.Time) string {
	return t.Format(LongDateLayout)
}
