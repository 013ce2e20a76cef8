package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dukerupert/choretracker/internal/chore"
)

// ErrNotFound is returned by write paths when the target row is gone.
// Reads return (nil, nil) instead.
var ErrNotFound = errors.New("not found")

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func exists(ctx context.Context, q queryer, table string, id int64) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+` WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", table, err)
	}
	return n > 0, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func formatDate(t time.Time) string {
	return chore.FormatDate(chore.Day(t))
}

func nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatDate(*t), Valid: true}
}

func parseDate(s string) (time.Time, error) {
	return chore.ParseDate(s)
}

func parseNullDate(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	d, err := chore.ParseDate(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
