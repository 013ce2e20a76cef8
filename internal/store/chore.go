package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/model"
)

type ChoreStore struct {
	db *sql.DB
}

func NewChoreStore(db *sql.DB) *ChoreStore {
	return &ChoreStore{db: db}
}

func scanChore(scanner interface{ Scan(...any) error }) (*model.Chore, error) {
	var c model.Chore
	err := scanner.Scan(&c.ID, &c.Name, &c.Description, &c.Points, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const choreCols = `id, name, description, points, created_at, updated_at`

func (s *ChoreStore) List(ctx context.Context) ([]model.Chore, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+choreCols+` FROM chores ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list chores: %w", err)
	}
	defer rows.Close()

	var chores []model.Chore
	for rows.Next() {
		c, err := scanChore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan chore: %w", err)
		}
		chores = append(chores, *c)
	}
	return chores, rows.Err()
}

func (s *ChoreStore) GetByID(ctx context.Context, id int64) (*model.Chore, error) {
	return getChore(ctx, s.db, id)
}

func getChore(ctx context.Context, q queryer, id int64) (*model.Chore, error) {
	row := q.QueryRowContext(ctx, `SELECT `+choreCols+` FROM chores WHERE id = ?`, id)
	c, err := scanChore(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chore: %w", err)
	}
	return c, nil
}

func (s *ChoreStore) Create(ctx context.Context, c *model.Chore) error {
	if err := chore.ValidateChore(*c); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO chores (name, description, points) VALUES (?, ?, ?)`,
			c.Name, c.Description, c.Points,
		)
		if err != nil {
			return fmt.Errorf("insert chore: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		got, err := getChore(ctx, tx, id)
		if err != nil {
			return err
		}
		*c = *got
		return nil
	})
}

func (s *ChoreStore) Update(ctx context.Context, c *model.Chore) error {
	if err := chore.ValidateChore(*c); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE chores SET name = ?, description = ?, points = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			c.Name, c.Description, c.Points, c.ID,
		)
		if err != nil {
			return fmt.Errorf("update chore: %w", err)
		}
		if err := checkAffected(res); err != nil {
			return err
		}
		got, err := getChore(ctx, tx, c.ID)
		if err != nil {
			return err
		}
		*c = *got
		return nil
	})
}

func (s *ChoreStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM chores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete chore: %w", err)
	}
	return checkAffected(res)
}
