package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/model"
)

type AssignmentStore struct {
	db *sql.DB
}

func NewAssignmentStore(db *sql.DB) *AssignmentStore {
	return &AssignmentStore{db: db}
}

func scanAssignment(scanner interface{ Scan(...any) error }) (*model.Assignment, error) {
	var a model.Assignment
	var assigned string
	var completed int
	var done sql.NullString

	err := scanner.Scan(
		&a.ID, &a.ChildID, &a.ChoreID, &assigned, &completed, &done,
		&a.ChildName, &a.ChoreName, &a.ChorePoints,
	)
	if err != nil {
		return nil, err
	}

	if a.DateAssigned, err = parseDate(assigned); err != nil {
		return nil, err
	}
	if a.DateCompleted, err = parseNullDate(done); err != nil {
		return nil, err
	}
	a.Completed = completed != 0
	return &a, nil
}

const assignmentSelect = `SELECT a.id, a.child_id, a.chore_id, a.date_assigned, a.completed, a.date_completed,
	c.name, ch.name, ch.points
	FROM assignments a
	JOIN children c ON c.id = a.child_id
	JOIN chores ch ON ch.id = a.chore_id`

// orderClause maps a sort key to a fixed ORDER BY. The id tiebreaker keeps
// page boundaries stable when sort values repeat.
func orderClause(k chore.SortKey) string {
	switch k {
	case chore.SortDateAssigned:
		return `a.date_assigned ASC, a.id DESC`
	case chore.SortChildName:
		return `c.name ASC, a.id DESC`
	case chore.SortChoreName:
		return `ch.name ASC, a.id DESC`
	case chore.SortCompleted:
		return `a.completed ASC, a.id DESC`
	default:
		return `a.date_assigned DESC, a.id DESC`
	}
}

func (s *AssignmentStore) List(ctx context.Context, key chore.SortKey) ([]model.Assignment, error) {
	return s.list(ctx, `ORDER BY `+orderClause(key))
}

// ListPage returns one page of assignments in the given order.
func (s *AssignmentStore) ListPage(ctx context.Context, key chore.SortKey, limit, offset int) ([]model.Assignment, error) {
	return s.list(ctx, `ORDER BY `+orderClause(key)+` LIMIT ? OFFSET ?`, limit, offset)
}

func (s *AssignmentStore) list(ctx context.Context, tail string, args ...any) ([]model.Assignment, error) {
	rows, err := s.db.QueryContext(ctx, assignmentSelect+` `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var out []model.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (s *AssignmentStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assignments`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count assignments: %w", err)
	}
	return n, nil
}

func (s *AssignmentStore) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	return getAssignment(ctx, s.db, id)
}

func getAssignment(ctx context.Context, q queryer, id int64) (*model.Assignment, error) {
	row := q.QueryRowContext(ctx, assignmentSelect+` WHERE a.id = ?`, id)
	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

// checkRefs validates a and confirms that its child and chore still exist,
// inside the caller's transaction.
func checkRefs(ctx context.Context, tx *sql.Tx, a model.Assignment) error {
	var errs chore.ValidationErrors
	if err := chore.ValidateAssignment(a); err != nil {
		v, ok := chore.AsValidation(err)
		if !ok {
			return err
		}
		errs = v
	}
	if a.ChildID > 0 {
		ok, err := exists(ctx, tx, "children", a.ChildID)
		if err != nil {
			return err
		}
		if !ok {
			errs.Add("child", chore.ErrInvalid, chore.MsgInvalidChoice)
		}
	}
	if a.ChoreID > 0 {
		ok, err := exists(ctx, tx, "chores", a.ChoreID)
		if err != nil {
			return err
		}
		if !ok {
			errs.Add("chore", chore.ErrInvalid, chore.MsgInvalidChoice)
		}
	}
	return errs.Err()
}

func (s *AssignmentStore) Create(ctx context.Context, a *model.Assignment) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := checkRefs(ctx, tx, *a); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx,
			`INSERT INTO assignments (child_id, chore_id, date_assigned, completed, date_completed)
			VALUES (?, ?, ?, ?, ?)`,
			a.ChildID, a.ChoreID, formatDate(a.DateAssigned), boolToInt(a.Completed), nullDate(a.DateCompleted),
		)
		if err != nil {
			return fmt.Errorf("insert assignment: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("last insert id: %w", err)
		}
		got, err := getAssignment(ctx, tx, id)
		if err != nil {
			return err
		}
		*a = *got
		return nil
	})
}

func (s *AssignmentStore) Update(ctx context.Context, a *model.Assignment) error {
	return withTx(ctx, s.db, func(tx *sql.Tx) error {
		cur, err := getAssignment(ctx, tx, a.ID)
		if err != nil {
			return err
		}
		if cur == nil {
			return ErrNotFound
		}
		if err := checkRefs(ctx, tx, *a); err != nil {
			return err
		}
		if err := s.write(ctx, tx, a); err != nil {
			return err
		}
		got, err := getAssignment(ctx, tx, a.ID)
		if err != nil {
			return err
		}
		*a = *got
		return nil
	})
}

func (s *AssignmentStore) write(ctx context.Context, tx *sql.Tx, a *model.Assignment) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE assignments SET child_id = ?, chore_id = ?, date_assigned = ?, completed = ?, date_completed = ?
		WHERE id = ?`,
		a.ChildID, a.ChoreID, formatDate(a.DateAssigned), boolToInt(a.Completed), nullDate(a.DateCompleted), a.ID,
	)
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

// Complete marks the assignment completed on the given date. The returned
// bool is false when it was already completed, in which case nothing changes.
func (s *AssignmentStore) Complete(ctx context.Context, id int64, on time.Time) (*model.Assignment, bool, error) {
	var (
		out     *model.Assignment
		changed bool
	)
	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		a, err := getAssignment(ctx, tx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return ErrNotFound
		}
		out = a
		if changed = chore.Complete(a, on); !changed {
			return nil
		}
		if err := chore.ValidateAssignment(*a); err != nil {
			return err
		}
		return s.write(ctx, tx, a)
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

func (s *AssignmentStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return checkAffected(res)
}

// Completions returns the completed assignments of a child with their chore
// points. A zero from or to leaves that side of the range open.
func (s *AssignmentStore) Completions(ctx context.Context, childID int64, from, to time.Time) ([]model.Completion, error) {
	var b strings.Builder
	b.WriteString(`SELECT a.id, a.date_completed, ch.points
		FROM assignments a
		JOIN chores ch ON ch.id = a.chore_id
		WHERE a.child_id = ? AND a.completed = 1 AND a.date_completed IS NOT NULL`)
	args := []any{childID}
	if !from.IsZero() {
		b.WriteString(` AND a.date_completed >= ?`)
		args = append(args, formatDate(from))
	}
	if !to.IsZero() {
		b.WriteString(` AND a.date_completed <= ?`)
		args = append(args, formatDate(to))
	}
	b.WriteString(` ORDER BY a.date_completed ASC, a.id ASC`)

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	var out []model.Completion
	for rows.Next() {
		var c model.Completion
		var done string
		if err := rows.Scan(&c.AssignmentID, &done, &c.Points); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		if c.Date, err = parseDate(done); err != nil {
			return nil, fmt.Errorf("parse completion date: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
