package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tempo/internal/modules/checkin/domain"
)

// SQLiteCheckInStore shares the database handle owned by the records
// store.
type SQLiteCheckInStore struct {
	db *sql.DB
}

func NewSQLiteCheckInStore(db *sql.DB) (*SQLiteCheckInStore, error) {
	store := &SQLiteCheckInStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteCheckInStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS check_ins (
  id TEXT PRIMARY KEY,
  day_key TEXT NOT NULL,
  at TEXT NOT NULL,
  mood INTEGER NOT NULL,
  energy INTEGER NOT NULL,
  note TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_check_ins_day ON check_ins (day_key);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create check_ins table: %w", err)
	}
	return nil
}

func (s *SQLiteCheckInStore) Insert(ctx context.Context, entry domain.CheckIn) error {
	const stmt = `
INSERT INTO check_ins (id, day_key, at, mood, energy, note)
VALUES (?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.ID,
		entry.DayKey,
		entry.At.Format(time.RFC3339),
		entry.Mood,
		entry.Energy,
		entry.Note,
	)
	if err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	return nil
}

func (s *SQLiteCheckInStore) ListDay(ctx context.Context, dayKey string) ([]domain.CheckIn, error) {
	const query = `
SELECT id, day_key, at, mood, energy, note
FROM check_ins
WHERE day_key = ?
ORDER BY at ASC;
`
	rows, err := s.db.QueryContext(ctx, query, dayKey)
	if err != nil {
		return nil, fmt.Errorf("query check-ins: %w", err)
	}
	return scanCheckIns(rows)
}

func (s *SQLiteCheckInStore) ListRange(ctx context.Context, fromKey, toKey string) ([]domain.CheckIn, error) {
	const query = `
SELECT id, day_key, at, mood, energy, note
FROM check_ins
WHERE day_key >= ? AND day_key <= ?
ORDER BY at ASC;
`
	rows, err := s.db.QueryContext(ctx, query, fromKey, toKey)
	if err != nil {
		return nil, fmt.Errorf("query check-ins: %w", err)
	}
	return scanCheckIns(rows)
}

func scanCheckIns(rows *sql.Rows) ([]domain.CheckIn, error) {
	defer rows.Close()

	entries := []domain.CheckIn{}
	for rows.Next() {
		var e domain.CheckIn
		var at string
		if err := rows.Scan(&e.ID, &e.DayKey, &at, &e.Mood, &e.Energy, &e.Note); err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("parse check-in time: %w", err)
		}
		e.At = parsed
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate check-ins: %w", err)
	}
	return entries, nil
}
