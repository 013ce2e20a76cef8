package chore

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dukerupert/choretracker/internal/model"
)

// DefaultSeriesDays is how far back a graph reaches when no start is given.
const DefaultSeriesDays = 30

// SeriesRange resolves the optional start/end query values. end defaults to
// today and start to DefaultSeriesDays before end.
func SeriesRange(startStr, endStr string, today time.Time) (start, end time.Time, err error) {
	end = Day(today)
	if s := strings.TrimSpace(endStr); s != "" {
		if end, err = ParseDate(s); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date: %w", ErrInvalid)
		}
	}
	start = end.AddDate(0, 0, -DefaultSeriesDays)
	if s := strings.TrimSpace(startStr); s != "" {
		if start, err = ParseDate(s); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("start_date: %w", ErrInvalid)
		}
	}
	return start, end, nil
}

// BuildSeries counts completions per day inside [start, end]. Labels are
// strictly increasing; both slices are empty, not nil, when nothing matches.
func BuildSeries(completions []model.Completion, start, end time.Time) model.Series {
	start, end = Day(start), Day(end)

	counts := make(map[time.Time]int)
	for _, c := range completions {
		d := Day(c.Date)
		if inRange(d, start, end) {
			counts[d]++
		}
	}

	days := make([]time.Time, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	s := model.Series{
		Labels: make([]string, 0, len(days)),
		Counts: make([]int, 0, len(days)),
	}
	for _, d := range days {
		s.Labels = append(s.Labels, FormatDate(d))
		s.Counts = append(s.Counts, counts[d])
	}
	return s
}

// Chart wraps a series in the dataset shape the graph page draws.
func Chart(s model.Series) model.ChartData {
	return model.ChartData{
		Labels: s.Labels,
		Datasets: []model.ChartDataset{{
			Label:       "Chores Completed",
			Data:        s.Counts,
			Fill:        false,
			BorderColor: "rgb(75, 192, 192)",
			Tension:     0.1,
		}},
	}
}
