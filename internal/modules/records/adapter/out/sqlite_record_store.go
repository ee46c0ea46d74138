package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/modules/records/domain"
	"tempo/internal/platform/daykey"

	_ "modernc.org/sqlite"
)

type SQLiteRecordStore struct {
	db *sql.DB
}

func NewSQLiteRecordStore(dbPath string) (*SQLiteRecordStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteRecordStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// DB exposes the handle so sibling stores can share one database file.
func (s *SQLiteRecordStore) DB() *sql.DB { return s.db }

func (s *SQLiteRecordStore) Close() error { return s.db.Close() }

func (s *SQLiteRecordStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS daily_records (
  day_key TEXT PRIMARY KEY,
  study_seconds INTEGER NOT NULL DEFAULT 0,
  break_seconds INTEGER NOT NULL DEFAULT 0,
  sessions_count INTEGER NOT NULL DEFAULT 0
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create daily_records table: %w", err)
	}
	return nil
}

func (s *SQLiteRecordStore) Upsert(ctx context.Context, delta domain.Delta) error {
	const stmt = `
INSERT INTO daily_records (day_key, study_seconds, break_seconds, sessions_count)
VALUES (?, ?, ?, ?)
ON CONFLICT(day_key) DO UPDATE SET
  study_seconds=study_seconds + excluded.study_seconds,
  break_seconds=break_seconds + excluded.break_seconds,
  sessions_count=sessions_count + excluded.sessions_count;
`
	_, err := s.db.ExecContext(ctx, stmt,
		string(delta.DayKey),
		delta.StudySeconds,
		delta.BreakSeconds,
		delta.SessionsCount,
	)
	if err != nil {
		return fmt.Errorf("upsert daily record: %w", err)
	}
	return nil
}

func (s *SQLiteRecordStore) QueryAll(ctx context.Context) ([]domain.DailyRecord, error) {
	const query = `
SELECT day_key, study_seconds, break_seconds, sessions_count
FROM daily_records
ORDER BY day_key ASC;
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query daily records: %w", err)
	}
	defer rows.Close()

	records := []domain.DailyRecord{}
	for rows.Next() {
		var r domain.DailyRecord
		var day string
		if err := rows.Scan(&day, &r.StudySeconds, &r.BreakSeconds, &r.SessionsCount); err != nil {
			return nil, fmt.Errorf("scan daily record: %w", err)
		}
		r.DayKey = daykey.Key(day)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily records: %w", err)
	}
	return records, nil
}

func (s *SQLiteRecordStore) ForDay(ctx context.Context, day string) (domain.DailyRecord, error) {
	const query = `
SELECT study_seconds, break_seconds, sessions_count
FROM daily_records
WHERE day_key = ?;
`
	record := domain.DailyRecord{DayKey: daykey.Key(day)}
	err := s.db.QueryRowContext(ctx, query, day).
		Scan(&record.StudySeconds, &record.BreakSeconds, &record.SessionsCount)
	if err == sql.ErrNoRows {
		return record, nil
	}
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("query daily record: %w", err)
	}
	return record, nil
}
