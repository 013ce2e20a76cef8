package chore

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Day normalizes t to its calendar date, expressed as midnight UTC. Every date
// that is stored, compared or grouped goes through Day first, so values read
// from different sources land in the same bucket.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date as observed in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return Day(now.In(loc))
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Day(t), nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func inRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}
