package chore

import (
	"testing"
	"time"

	"github.com/dukerupert/choretracker/internal/model"
)

func TestBuildCalendarShape(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		days  int
		lead  int
		weeks int
	}{
		{2024, time.February, 29, 3, 5}, // Thursday start, leap year
		{2023, time.February, 28, 2, 5},
		{2021, time.February, 28, 0, 4}, // Monday start, exactly 4 weeks
		{2026, time.March, 31, 6, 6},    // Sunday start
	}
	for _, tt := range tests {
		cal := BuildCalendar(tt.year, tt.month, nil)
		if len(cal.Weeks) != tt.weeks {
			t.Errorf("%d-%02d: weeks = %d, want %d", tt.year, tt.month, len(cal.Weeks), tt.weeks)
		}
		var nonBlank, lead int
		seenDay := false
		for _, week := range cal.Weeks {
			if len(week) != 7 {
				t.Fatalf("%d-%02d: week has %d cells", tt.year, tt.month, len(week))
			}
			for _, cell := range week {
				if cell.Blank() {
					if !seenDay {
						lead++
					}
					continue
				}
				seenDay = true
				nonBlank++
			}
		}
		if nonBlank != tt.days {
			t.Errorf("%d-%02d: days = %d, want %d", tt.year, tt.month, nonBlank, tt.days)
		}
		if lead != tt.lead {
			t.Errorf("%d-%02d: leading blanks = %d, want %d", tt.year, tt.month, lead, tt.lead)
		}
	}
}

func TestBuildCalendarPoints(t *testing.T) {
	cs := []model.Completion{
		{Date: date(2026, 3, 1), Points: 2},
		{Date: date(2026, 3, 1), Points: 3},
		{Date: date(2026, 3, 31), Points: 1},
		{Date: date(2026, 2, 28), Points: 50},
		{Date: date(2026, 4, 1), Points: 50},
	}
	cal := BuildCalendar(2026, time.March, cs)

	sum := 0
	byDay := map[int]int{}
	for _, week := range cal.Weeks {
		for _, cell := range week {
			sum += cell.Points
			byDay[cell.Day] = cell.Points
		}
	}
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
	if byDay[1] != 5 || byDay[31] != 1 {
		t.Errorf("day 1 = %d, day 31 = %d", byDay[1], byDay[31])
	}
}

func TestBuildCalendarNavigation(t *testing.T) {
	cal := BuildCalendar(2026, time.January, nil)
	if !cal.Prev.Equal(date(2025, 12, 1)) {
		t.Errorf("Prev = %v, want 2025-12-01", cal.Prev)
	}
	if !cal.Next.Equal(date(2026, 2, 1)) {
		t.Errorf("Next = %v, want 2026-02-01", cal.Next)
	}
	cal = BuildCalendar(2026, time.December, nil)
	if !cal.Next.Equal(date(2027, 1, 1)) {
		t.Errorf("Next = %v, want 2027-01-01", cal.Next)
	}
}

func TestValidMonth(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		if ValidMonth(m) {
			t.Errorf("ValidMonth(%d) = true", m)
		}
	}
	if !ValidMonth(1) || !ValidMonth(12) {
		t.Error("ValidMonth rejected 1 or 12")
	}
}
