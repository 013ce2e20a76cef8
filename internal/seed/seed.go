// Package seed fills an empty database with sample children, chores and a
// month of random assignments.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dukerupert/choretracker/internal/model"
	"github.com/dukerupert/choretracker/internal/store"
)

// DefaultAssignments is how many random assignments Populate creates.
const DefaultAssignments = 100

// spanDays is how far back assignment dates reach.
const spanDays = 30

var sampleChildren = []model.Child{
	{Name: "Alice", Age: 8},
	{Name: "Bob", Age: 10},
	{Name: "Charlie", Age: 12},
}

var sampleChores = []model.Chore{
	{Name: "Make bed", Description: "Straighten sheets and comforter", Points: 1},
	{Name: "Do dishes", Description: "Load and run dishwasher", Points: 2},
	{Name: "Take out trash", Description: "Empty all trash bins and take to curb", Points: 2},
	{Name: "Vacuum living room", Description: "Vacuum carpets and rugs", Points: 3},
	{Name: "Mow lawn", Description: "Mow front and back yard", Points: 5},
}

type Stores struct {
	Children    *store.ChildStore
	Chores      *store.ChoreStore
	Assignments *store.AssignmentStore
}

type Result struct {
	Children    int
	Chores      int
	Assignments int
	Completed   int
}

// Populate creates the sample children and chores plus n assignments dated
// within the last 30 days. About half are completed, 0 to 3 days after they
// were assigned but never after today.
func Populate(ctx context.Context, s Stores, today time.Time, rng *rand.Rand, n int) (Result, error) {
	var res Result

	children := make([]model.Child, len(sampleChildren))
	for i, c := range sampleChildren {
		if err := s.Children.Create(ctx, &c); err != nil {
			return res, fmt.Errorf("create child %s: %w", c.Name, err)
		}
		children[i] = c
		res.Children++
	}

	chores := make([]model.Chore, len(sampleChores))
	for i, c := range sampleChores {
		if err := s.Chores.Create(ctx, &c); err != nil {
			return res, fmt.Errorf("create chore %s: %w", c.Name, err)
		}
		chores[i] = c
		res.Chores++
	}

	start := today.AddDate(0, 0, -spanDays)
	for range n {
		a := model.Assignment{
			ChildID:      children[rng.IntN(len(children))].ID,
			ChoreID:      chores[rng.IntN(len(chores))].ID,
			DateAssigned: start.AddDate(0, 0, rng.IntN(spanDays+1)),
		}
		if rng.IntN(2) == 1 {
			done := a.DateAssigned.AddDate(0, 0, rng.IntN(4))
			if done.After(today) {
				done = today
			}
			a.Completed = true
			a.DateCompleted = &done
			res.Completed++
		}
		if err := s.Assignments.Create(ctx, &a); err != nil {
			return res, fmt.Errorf("create assignment: %w", err)
		}
		res.Assignments++
	}

	return res, nil
}
