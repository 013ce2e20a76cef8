package model

import "time"

// Assignment links one child to one chore. Dates are calendar days stored as
// midnight UTC.
//
// ChildName, ChoreName and ChorePoints are filled in by reads that join the
// related rows and are ignored on writes.
type Assignment struct {
	ID            int64      `json:"id"`
	ChildID       int64      `json:"child_id"`
	ChoreID       int64      `json:"chore_id"`
	DateAssigned  time.Time  `json:"date_assigned"`
	Completed     bool       `json:"completed"`
	DateCompleted *time.Time `json:"date_completed"`

	ChildName   string `json:"child_name,omitempty"`
	ChoreName   string `json:"chore_name,omitempty"`
	ChorePoints int    `json:"chore_points,omitempty"`
}

func (a Assignment) String() string {
	return a.ChildName + " - " + a.ChoreName
}

// Completion is a completed assignment reduced to what the reports need.
type Completion struct {
	AssignmentID int64
	Date         time.Time
	Points       int
}
