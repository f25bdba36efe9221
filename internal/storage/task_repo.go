package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TaskRepo struct {
	db DBTX
}

func NewTaskRepo(db DBTX) *TaskRepo {
	return &TaskRepo{db: db}
}

type TaskInsert struct {
	Title    string
	Start    time.Time
	End      time.Time
	Category string
	Status   string
}

// Insert stores a new task and returns its store-assigned ID.
// Timestamps are normalized to UTC so the start ordering is
// chronological regardless of the offset they arrived with.
func (r *TaskRepo) Insert(ctx context.Context, in TaskInsert) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, start_at, end_at, category, status)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, in.Title, in.Start.UTC(), in.End.UTC(), in.Category, in.Status)
	if err != nil {
		return "", fmt.Errorf("task insert: %w", err)
	}
	return id, nil
}

// Get returns a task by ID, or nil when absent.
func (r *TaskRepo) Get(ctx context.Context, id string) (*Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, start_at, end_at, category, status, created_at, updated_at
		FROM tasks
		WHERE id = ?
	`, id)
	return scanTask(row)
}

// List returns tasks in chronological start order. A non-empty
// status filters the result.
func (r *TaskRepo) List(ctx context.Context, status string) ([]Task, error) {
	query := `
		SELECT id, title, start_at, end_at, category, status, created_at, updated_at
		FROM tasks
	`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY start_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("task list: %w", err)
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task list rows: %w", err)
	}
	return out, nil
}

// MarkDone flips a task to done and stamps the transition time.
func (r *TaskRepo) MarkDone(ctx context.Context, id string, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET status = 'done', updated_at = ? WHERE id = ?
	`, updatedAt, id)
	if err != nil {
		return fmt.Errorf("task mark done: %w", err)
	}
	return nil
}

// CountByStatus reports how many tasks carry each status.
func (r *TaskRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tasks GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("task count: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("task count scan: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("task count rows: %w", err)
	}
	return counts, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*Task, error) {
	var (
		t       Task
		updated sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Start, &t.End, &t.Category, &t.Status, &t.CreatedAt, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("task scan: %w", err)
	}
	if updated.Valid {
		v := updated.Time
		t.UpdatedAt = &v
	}
	return &t, nil
}
