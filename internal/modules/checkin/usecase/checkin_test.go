package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tempo/internal/modules/checkin/domain"
	checkindto "tempo/internal/modules/checkin/dto"
	"tempo/internal/modules/checkin/service"
	apperrors "tempo/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (c fakeClock) Now() time.Time {
	return c.now
}

type fakeIDGen struct {
	next string
}

func (g fakeIDGen) New() string {
	return g.next
}

type fakeStore struct {
	entries []domain.CheckIn
	err     error
}

func (f *fakeStore) Insert(_ context.Context, entry domain.CheckIn) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeStore) ListDay(_ context.Context, dayKey string) ([]domain.CheckIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.CheckIn{}
	for _, e := range f.entries {
		if e.DayKey == dayKey {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) ListRange(_ context.Context, fromKey, toKey string) ([]domain.CheckIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.CheckIn{}
	for _, e := range f.entries {
		if e.DayKey >= fromKey && e.DayKey <= toKey {
			out = append(out, e)
		}
	}
	return out, nil
}

func newInteractor(now time.Time, store *fakeStore) *Interactor {
	svc := service.NewCheckInService(fakeClock{now: now}, fakeIDGen{next: "checkin-1"}, store)
	return &Interactor{svc: svc}
}

func TestAddStampsDayAndTrimsNote(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC)
	store := &fakeStore{}
	interactor := newInteractor(now, store)

	out, err := interactor.Add(context.Background(), checkindto.AddInput{Mood: 4, Energy: 3, Note: "  good run  "})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if out.ID != "checkin-1" {
		t.Fatalf("id = %q", out.ID)
	}
	if out.DayKey != "2026-08-23" {
		t.Fatalf("day key = %q", out.DayKey)
	}
	if out.Note != "good run" {
		t.Fatalf("note = %q, want trimmed", out.Note)
	}
	if len(store.entries) != 1 {
		t.Fatalf("stored %d entries", len(store.entries))
	}
}

func TestAddRejectsOutOfRangeMood(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 23, 15, 30, 0, 0, time.UTC)
	store := &fakeStore{}
	interactor := newInteractor(now, store)

	for _, mood := range []int{0, 6, -1} {
		_, err := interactor.Add(context.Background(), checkindto.AddInput{Mood: mood, Energy: 3})
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("mood %d: err = %v, want ErrInvalidInput", mood, err)
		}
	}
	if len(store.entries) != 0 {
		t.Fatalf("invalid entries stored: %d", len(store.entries))
	}
}

func TestTodayAveragesMood(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 23, 20, 0, 0, 0, time.UTC)
	store := &fakeStore{entries: []domain.CheckIn{
		{ID: "a", DayKey: "2026-08-23", Mood: 2, Energy: 2},
		{ID: "b", DayKey: "2026-08-23", Mood: 5, Energy: 4},
		{ID: "c", DayKey: "2026-08-22", Mood: 1, Energy: 1},
	}}
	interactor := newInteractor(now, store)

	out, err := interactor.Today(context.Background())
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(out.Entries) != 2 {
		t.Fatalf("entries = %d, want today's 2", len(out.Entries))
	}
	if out.AverageMood != 3.5 {
		t.Fatalf("average = %v, want 3.5", out.AverageMood)
	}
}

func TestRangeRejectsMalformedKeys(t *testing.T) {
	t.Parallel()

	interactor := newInteractor(time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC), &fakeStore{})

	if _, err := interactor.Range(context.Background(), "23-08-2026", "2026-08-23"); err == nil {
		t.Fatal("malformed from key accepted")
	}
	if _, err := interactor.Range(context.Background(), "2026-08-20", "not-a-day"); err == nil {
		t.Fatal("malformed to key accepted")
	}
}
