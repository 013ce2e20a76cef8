package model

import "time"

// DefaultChorePoints is the value a new chore starts with.
const DefaultChorePoints = 1

type Chore struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c Chore) String() string {
	return c.Name
}
