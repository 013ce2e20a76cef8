package chore

import (
	"errors"
	"testing"

	"github.com/dukerupert/choretracker/internal/model"
)

func TestBuildSeries(t *testing.T) {
	cs := []model.Completion{
		{Date: date(2026, 1, 5), Points: 3},
		{Date: date(2026, 1, 3), Points: 1},
		{Date: date(2026, 1, 5), Points: 2},
		{Date: date(2025, 12, 31), Points: 1},
		{Date: date(2026, 1, 11), Points: 1},
	}
	s := BuildSeries(cs, date(2026, 1, 1), date(2026, 1, 10))

	wantLabels := []string{"2026-01-03", "2026-01-05"}
	wantCounts := []int{1, 2}
	if len(s.Labels) != len(wantLabels) {
		t.Fatalf("labels = %v, want %v", s.Labels, wantLabels)
	}
	for i := range wantLabels {
		if s.Labels[i] != wantLabels[i] || s.Counts[i] != wantCounts[i] {
			t.Errorf("[%d] = %s/%d, want %s/%d", i, s.Labels[i], s.Counts[i], wantLabels[i], wantCounts[i])
		}
	}
	for i := 1; i < len(s.Labels); i++ {
		if s.Labels[i-1] >= s.Labels[i] {
			t.Errorf("labels not increasing: %v", s.Labels)
		}
	}
}

func TestBuildSeriesEmpty(t *testing.T) {
	s := BuildSeries(nil, date(2026, 1, 1), date(2026, 1, 31))
	if s.Labels == nil || s.Counts == nil {
		t.Fatal("empty series should have non-nil slices")
	}
	if len(s.Labels) != 0 || len(s.Counts) != 0 {
		t.Errorf("series = %+v, want empty", s)
	}

	cs := []model.Completion{{Date: date(2026, 1, 5)}}
	s = BuildSeries(cs, date(2026, 1, 10), date(2026, 1, 1))
	if len(s.Labels) != 0 {
		t.Errorf("reversed range labels = %v, want empty", s.Labels)
	}
}

func TestSeriesRangeDefaults(t *testing.T) {
	today := date(2026, 3, 31)
	start, end, err := SeriesRange("", "", today)
	if err != nil {
		t.Fatalf("SeriesRange: %v", err)
	}
	if !end.Equal(today) || !start.Equal(date(2026, 3, 1)) {
		t.Errorf("range = %v..%v", start, end)
	}

	start, end, err = SeriesRange("2026-01-01", "2026-01-15", today)
	if err != nil || !start.Equal(date(2026, 1, 1)) || !end.Equal(date(2026, 1, 15)) {
		t.Errorf("range = %v..%v err=%v", start, end, err)
	}

	if _, _, err := SeriesRange("nope", "", today); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad start: err = %v, want ErrInvalid", err)
	}
	if _, _, err := SeriesRange("", "2026-02-30", today); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad end: err = %v, want ErrInvalid", err)
	}
}

func TestChart(t *testing.T) {
	c := Chart(model.Series{Labels: []string{"2026-01-01"}, Counts: []int{4}})
	if len(c.Datasets) != 1 {
		t.Fatalf("datasets = %d, want 1", len(c.Datasets))
	}
	ds := c.Datasets[0]
	if ds.Label != "Chores Completed" || ds.BorderColor != "rgb(75, 192, 192)" || ds.Tension != 0.1 || ds.Fill {
		t.Errorf("dataset = %+v", ds)
	}
	if ds.Data[0] != 4 {
		t.Errorf("data = %v, want [4]", ds.Data)
	}
}
