package chore

import (
	"time"

	"github.com/dukerupert/choretracker/internal/model"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func StatusOf(a model.Assignment) Status {
	if a.Completed {
		return StatusCompleted
	}
	return StatusPending
}

// Complete moves a pending assignment to completed. A completion date already
// on the assignment is kept, otherwise on is used. Completed is terminal:
// calling Complete again changes nothing and reports false.
func Complete(a *model.Assignment, on time.Time) bool {
	if a.Completed {
		return false
	}
	a.Completed = true
	if a.DateCompleted == nil {
		d := Day(on)
		a.DateCompleted = &d
	}
	return true
}
