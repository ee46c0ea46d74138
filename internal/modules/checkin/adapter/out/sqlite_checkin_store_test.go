package out

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"tempo/internal/modules/checkin/domain"
	recordsout "tempo/internal/modules/records/adapter/out"
)

func newStore(t *testing.T) *SQLiteCheckInStore {
	t.Helper()
	records, err := recordsout.NewSQLiteRecordStore(filepath.Join(t.TempDir(), "tempo.db"))
	if err != nil {
		t.Fatalf("open records store: %v", err)
	}
	t.Cleanup(func() { _ = records.Close() })

	store, err := NewSQLiteCheckInStore(records.DB())
	if err != nil {
		t.Fatalf("open check-in store: %v", err)
	}
	return store
}

func TestInsertAndListDay(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	ctx := context.Background()
	at := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)

	entries := []domain.CheckIn{
		{ID: "a", DayKey: "2026-08-23", At: at, Mood: 4, Energy: 3, Note: "sharp"},
		{ID: "b", DayKey: "2026-08-23", At: at.Add(2 * time.Hour), Mood: 2, Energy: 2},
		{ID: "c", DayKey: "2026-08-22", At: at.AddDate(0, 0, -1), Mood: 5, Energy: 5},
	}
	for _, e := range entries {
		if err := store.Insert(ctx, e); err != nil {
			t.Fatalf("insert %s: %v", e.ID, err)
		}
	}

	got, err := store.ListDay(ctx, "2026-08-23")
	if err != nil {
		t.Fatalf("list day: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("order = %s, %s, want time ascending", got[0].ID, got[1].ID)
	}
	if got[0].Note != "sharp" || !got[0].At.Equal(at) {
		t.Fatalf("round trip lost fields: %+v", got[0])
	}
}

func TestListRangeIsInclusive(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	for i, day := range []string{"2026-08-20", "2026-08-21", "2026-08-22", "2026-08-23"} {
		entry := domain.CheckIn{
			ID:     day,
			DayKey: day,
			At:     base.AddDate(0, 0, i),
			Mood:   3,
			Energy: 3,
		}
		if err := store.Insert(ctx, entry); err != nil {
			t.Fatalf("insert %s: %v", day, err)
		}
	}

	got, err := store.ListRange(ctx, "2026-08-21", "2026-08-22")
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].DayKey != "2026-08-21" || got[1].DayKey != "2026-08-22" {
		t.Fatalf("range = %s..%s", got[0].DayKey, got[1].DayKey)
	}
}
