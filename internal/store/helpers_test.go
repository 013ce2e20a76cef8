package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dukerupert/choretracker/internal/database"
	"github.com/dukerupert/choretracker/internal/model"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustChild(t *testing.T, s *ChildStore, name string, age int) *model.Child {
	t.Helper()
	c := &model.Child{Name: name, Age: age}
	if err := s.Create(context.Background(), c); err != nil {
		t.Fatalf("create child %s: %v", name, err)
	}
	return c
}

func mustChore(t *testing.T, s *ChoreStore, name string, points int) *model.Chore {
	t.Helper()
	c := &model.Chore{Name: name, Points: points}
	if err := s.Create(context.Background(), c); err != nil {
		t.Fatalf("create chore %s: %v", name, err)
	}
	return c
}
