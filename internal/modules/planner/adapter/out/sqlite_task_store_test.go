package out

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tempo/internal/modules/planner/domain"
	recordsout "tempo/internal/modules/records/adapter/out"
	apperrors "tempo/internal/platform/errors"
)

func newStore(t *testing.T) *SQLiteTaskStore {
	t.Helper()
	records, err := recordsout.NewSQLiteRecordStore(filepath.Join(t.TempDir(), "tempo.db"))
	if err != nil {
		t.Fatalf("open records store: %v", err)
	}
	t.Cleanup(func() { _ = records.Close() })

	store, err := NewSQLiteTaskStore(records.DB())
	if err != nil {
		t.Fatalf("open task store: %v", err)
	}
	return store
}

func TestTaskRoundTrip(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	ctx := context.Background()
	created := time.Date(2026, 8, 23, 8, 0, 0, 0, time.UTC)

	task := domain.Task{ID: "t1", DayKey: "2026-08-23", Title: "flashcards", CreatedAt: created}
	if err := store.Insert(ctx, task); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := store.Get(ctx, "t1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "flashcards" || got.Done || !got.CreatedAt.Equal(created) {
		t.Fatalf("round trip = %+v", got)
	}
	if !got.CompletedAt.IsZero() {
		t.Fatalf("open task has completion time: %v", got.CompletedAt)
	}

	done := got.Complete(created.Add(time.Hour))
	if err := store.Update(ctx, done); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = store.Get(ctx, "t1")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if !got.Done || !got.CompletedAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("completion lost: %+v", got)
	}
}

func TestGetAndDeleteMissingTask(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("get: err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("delete: err = %v, want ErrNotFound", err)
	}
}

func TestListOpenBeforeSkipsDoneAndToday(t *testing.T) {
	t.Parallel()

	store := newStore(t)
	ctx := context.Background()
	created := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)

	seed := []domain.Task{
		{ID: "past-open", DayKey: "2026-08-21", Title: "a", CreatedAt: created},
		{ID: "past-done", DayKey: "2026-08-21", Title: "b", Done: true, CreatedAt: created, CompletedAt: created.Add(time.Hour)},
		{ID: "today", DayKey: "2026-08-23", Title: "c", CreatedAt: created},
	}
	for _, task := range seed {
		if err := store.Insert(ctx, task); err != nil {
			t.Fatalf("insert %s: %v", task.ID, err)
		}
	}

	open, err := store.ListOpenBefore(ctx, "2026-08-23")
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(open) != 1 || open[0].ID != "past-open" {
		t.Fatalf("open = %+v", open)
	}
}
