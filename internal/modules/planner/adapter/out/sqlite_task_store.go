package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tempo/internal/modules/planner/domain"
	apperrors "tempo/internal/platform/errors"
)

// SQLiteTaskStore shares the database handle owned by the records
// store.
type SQLiteTaskStore struct {
	db *sql.DB
}

func NewSQLiteTaskStore(db *sql.DB) (*SQLiteTaskStore, error) {
	store := &SQLiteTaskStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteTaskStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
  id TEXT PRIMARY KEY,
  day_key TEXT NOT NULL,
  title TEXT NOT NULL,
  done INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  completed_at TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_tasks_day ON tasks (day_key);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (s *SQLiteTaskStore) Insert(ctx context.Context, task domain.Task) error {
	const stmt = `
INSERT INTO tasks (id, day_key, title, done, created_at, completed_at)
VALUES (?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		task.ID,
		task.DayKey,
		task.Title,
		boolToInt(task.Done),
		task.CreatedAt.Format(time.RFC3339),
		formatCompleted(task.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *SQLiteTaskStore) Get(ctx context.Context, id string) (domain.Task, error) {
	const query = `
SELECT id, day_key, title, done, created_at, completed_at
FROM tasks
WHERE id = ?;
`
	row := s.db.QueryRowContext(ctx, query, id)
	task, err := scanTask(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Task{}, fmt.Errorf("%w: task %s", apperrors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("query task: %w", err)
	}
	return task, nil
}

func (s *SQLiteTaskStore) Update(ctx context.Context, task domain.Task) error {
	const stmt = `
UPDATE tasks
SET day_key = ?, title = ?, done = ?, completed_at = ?
WHERE id = ?;
`
	res, err := s.db.ExecContext(ctx, stmt,
		task.DayKey,
		task.Title,
		boolToInt(task.Done),
		formatCompleted(task.CompletedAt),
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: task %s", apperrors.ErrNotFound, task.ID)
	}
	return nil
}

func (s *SQLiteTaskStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: task %s", apperrors.ErrNotFound, id)
	}
	return nil
}

func (s *SQLiteTaskStore) ListDay(ctx context.Context, dayKey string) ([]domain.Task, error) {
	const query = `
SELECT id, day_key, title, done, created_at, completed_at
FROM tasks
WHERE day_key = ?
ORDER BY created_at ASC;
`
	rows, err := s.db.QueryContext(ctx, query, dayKey)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return scanTasks(rows)
}

func (s *SQLiteTaskStore) ListOpenBefore(ctx context.Context, dayKey string) ([]domain.Task, error) {
	const query = `
SELECT id, day_key, title, done, created_at, completed_at
FROM tasks
WHERE day_key < ? AND done = 0
ORDER BY day_key ASC, created_at ASC;
`
	rows, err := s.db.QueryContext(ctx, query, dayKey)
	if err != nil {
		return nil, fmt.Errorf("query open tasks: %w", err)
	}
	return scanTasks(rows)
}

func scanTasks(rows *sql.Rows) ([]domain.Task, error) {
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(scan func(...any) error) (domain.Task, error) {
	var task domain.Task
	var done int
	var createdAt, completedAt string
	if err := scan(&task.ID, &task.DayKey, &task.Title, &done, &createdAt, &completedAt); err != nil {
		return domain.Task{}, err
	}
	task.Done = done != 0
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	task.CreatedAt = parsed
	if completedAt != "" {
		parsed, err := time.Parse(time.RFC3339, completedAt)
		if err != nil {
			return domain.Task{}, fmt.Errorf("parse completed_at: %w", err)
		}
		task.CompletedAt = parsed
	}
	return task, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func formatCompleted(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
