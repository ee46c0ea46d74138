package out_test

import (
	"context"
	"path/filepath"
	"testing"

	recordsout "tempo/internal/modules/records/adapter/out"
	"tempo/internal/modules/records/domain"
	"tempo/internal/platform/daykey"
)

func newStore(t *testing.T) *recordsout.SQLiteRecordStore {
	t.Helper()
	store, err := recordsout.NewSQLiteRecordStore(filepath.Join(t.TempDir(), "tempo.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestUpsertCreatesThenAccumulates(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	if err := store.Upsert(ctx, domain.Delta{DayKey: "2026-08-23", StudySeconds: 10, SessionsCount: 1}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := store.Upsert(ctx, domain.Delta{DayKey: "2026-08-23", StudySeconds: 5, BreakSeconds: 3}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	record, err := store.ForDay(ctx, "2026-08-23")
	if err != nil {
		t.Fatalf("for day: %v", err)
	}
	if record.StudySeconds != 15 || record.BreakSeconds != 3 || record.SessionsCount != 1 {
		t.Fatalf("deltas must merge additively, got %+v", record)
	}
}

func TestQueryAllSortsByDayKey(t *testing.T) {
	t.Parallel()
	store := newStore(t)
	ctx := context.Background()

	for _, day := range []string{"2026-08-23", "2026-08-21", "2026-08-22"} {
		if err := store.Upsert(ctx, domain.Delta{DayKey: daykey.Key(day), StudySeconds: 1}); err != nil {
			t.Fatalf("upsert %s: %v", day, err)
		}
	}

	records, err := store.QueryAll(ctx)
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].DayKey >= records[i].DayKey {
			t.Fatalf("records not sorted: %+v", records)
		}
	}
}

func TestForDayWithoutRecordReturnsZeroes(t *testing.T) {
	t.Parallel()
	store := newStore(t)

	record, err := store.ForDay(context.Background(), "2026-01-01")
	if err != nil {
		t.Fatalf("for day: %v", err)
	}
	if record.StudySeconds != 0 || record.BreakSeconds != 0 || record.SessionsCount != 0 {
		t.Fatalf("expected zero record, got %+v", record)
	}
	if record.DayKey != "2026-01-01" {
		t.Fatalf("zero record must carry the requested day key, got %s", record.DayKey)
	}
}
