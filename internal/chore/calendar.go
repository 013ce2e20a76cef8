package chore

import (
	"time"

	"github.com/dukerupert/choretracker/internal/model"
)

// ValidMonth reports whether month is 1..12.
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// LeadingBlanks is the number of padding cells before the 1st in a
// Monday-first week.
func LeadingBlanks(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return (int(first.Weekday()) + 6) % 7
}

// BuildCalendar lays out the month as Monday-first weeks of seven cells and
// totals the points of completions landing on each day. Completions outside
// the month are ignored.
func BuildCalendar(year int, month time.Month, completions []model.Completion) model.Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := DaysIn(year, month)

	daily := make(map[int]int)
	for _, c := range completions {
		d := Day(c.Date)
		if d.Year() == year && d.Month() == month {
			daily[d.Day()] += c.Points
		}
	}

	lead := LeadingBlanks(year, month)
	cells := make([]model.DayCell, lead, lead+days+6)
	for d := 1; d <= days; d++ {
		cells = append(cells, model.DayCell{Day: d, Points: daily[d]})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, model.DayCell{})
	}

	weeks := make([][]model.DayCell, 0, len(cells)/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	return model.Calendar{
		Month: first,
		Weeks: weeks,
		Prev:  first.AddDate(0, -1, 0),
		Next:  first.AddDate(0, 1, 0),
	}
}
