package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/model"
)

type ChildStore struct {
	db *sql.DB
}

func NewChildStore(db *sql.DB) *ChildStore {
	return &ChildStore{db: db}
}

func scanChild(scanner interface{ Scan(...any) error }) (*model.Child, error) {
	var c model.Child
	err := scanner.Scan(&c.ID, &c.Name, &c.Age, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const childCols = `id, name, age, created_at, updated_at`

func (s *ChildStore) List(ctx context.Context) ([]model.Child, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+childCols+` FROM children ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer rows.Close()

	var children []model.Child
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		children = append(children, *c)
	}
	return children, rows.Err()
}

func (s *ChildStore) GetByID(ctx context.Context, id int64) (*model.Child, error) {
	return getChild(ctx, s.db, id)
}

func getChild(ctx context.Context, q queryer, id int64) (*model.Child, error) {
	row := q.QueryRowContext(ctx, `SELECT `+childCols+` FROM children WHERE id = ?`, id)
	c, err := scanChild(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get child: %w", err)
	}
	return c, nil
}

// Create inserts c and fills in its ID and timestamps.
func (s *ChildStore) Create(ctx context.Context, c *model.Child) error {
	if err := chore.ValidateChild(*c); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `INSERT INTO children (name, age) VALUES (?, ?)`, c.Name, c.Age)
		if err != nil {
			return fmt.Errorf("insert child: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		got, err := getChild(ctx, tx, id)
		if err != nil {
			return err
		}
		*c = *got
		return nil
	})
}

func (s *ChildStore) Update(ctx context.Context, c *model.Child) error {
	if err := chore.ValidateChild(*c); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE children SET name = ?, age = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			c.Name, c.Age, c.ID,
		)
		if err != nil {
			return fmt.Errorf("update child: %w", err)
		}
		if err := checkAffected(res); err != nil {
			return err
		}
		got, err := getChild(ctx, tx, c.ID)
		if err != nil {
			return err
		}
		*c = *got
		return nil
	})
}

// Delete removes the child and, through the foreign key, its assignments.
func (s *ChildStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM children WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete child: %w", err)
	}
	return checkAffected(res)
}
