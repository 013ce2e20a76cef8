package chore

import (
	"testing"
	"time"

	"github.com/dukerupert/choretracker/internal/model"
)

func TestStatusOf(t *testing.T) {
	if got := StatusOf(model.Assignment{}); got != StatusPending {
		t.Errorf("status = %q, want %q", got, StatusPending)
	}
	if got := StatusOf(model.Assignment{Completed: true}); got != StatusCompleted {
		t.Errorf("status = %q, want %q", got, StatusCompleted)
	}
}

func TestCompleteSetsDate(t *testing.T) {
	a := model.Assignment{DateAssigned: date(2026, 2, 1)}
	on := time.Date(2026, 2, 5, 17, 30, 0, 0, time.UTC)

	if !Complete(&a, on) {
		t.Fatal("Complete returned false for pending assignment")
	}
	if !a.Completed {
		t.Error("Completed = false, want true")
	}
	if a.DateCompleted == nil || !a.DateCompleted.Equal(date(2026, 2, 5)) {
		t.Errorf("DateCompleted = %v, want 2026-02-05", a.DateCompleted)
	}
}

func TestCompleteKeepsSuppliedDate(t *testing.T) {
	given := date(2026, 2, 3)
	a := model.Assignment{DateAssigned: date(2026, 2, 1), DateCompleted: &given}

	Complete(&a, date(2026, 2, 9))
	if !a.DateCompleted.Equal(given) {
		t.Errorf("DateCompleted = %v, want %v", a.DateCompleted, given)
	}
}

func TestCompleteTwiceIsNoop(t *testing.T) {
	a := model.Assignment{DateAssigned: date(2026, 2, 1)}
	Complete(&a, date(2026, 2, 2))

	if Complete(&a, date(2026, 2, 8)) {
		t.Error("second Complete returned true")
	}
	if !a.DateCompleted.Equal(date(2026, 2, 2)) {
		t.Errorf("DateCompleted = %v, want 2026-02-02", a.DateCompleted)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
