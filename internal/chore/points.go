package chore

import (
	"strings"
	"time"

	"github.com/dukerupert/choretracker/internal/model"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod maps unknown values to PeriodAll.
func ParsePeriod(s string) Period {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p
	default:
		return PeriodAll
	}
}

// Window returns the inclusive date range covered by p, ending today. ok is
// false for PeriodAll, which has no lower or upper bound.
func Window(p Period, today time.Time) (start, end time.Time, ok bool) {
	end = Day(today)
	switch p {
	case PeriodDay:
		return end, end, true
	case PeriodWeek:
		return end.AddDate(0, 0, -7), end, true
	case PeriodMonth:
		return end.AddDate(0, 0, -30), end, true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Points sums the points of completions that fall inside p's window.
func Points(completions []model.Completion, p Period, today time.Time) int {
	start, end, bounded := Window(p, today)
	total := 0
	for _, c := range completions {
		if bounded && !inRange(Day(c.Date), start, end) {
			continue
		}
		total += c.Points
	}
	return total
}

func Totals(completions []model.Completion, today time.Time) model.PointTotals {
	return model.PointTotals{
		Day:   Points(completions, PeriodDay, today),
		Week:  Points(completions, PeriodWeek, today),
		Month: Points(completions, PeriodMonth, today),
		All:   Points(completions, PeriodAll, today),
	}
}
