package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tempo/internal/modules/planner/domain"
	plannerdto "tempo/internal/modules/planner/dto"
	"tempo/internal/modules/planner/service"
	apperrors "tempo/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type seqIDGen struct {
	n int
}

func (g *seqIDGen) New() string {
	g.n++
	return fmt.Sprintf("task-%d", g.n)
}

type fakeStore struct {
	tasks map[string]domain.Task
}

func newFakeStore() *fakeStore {
	return &fakeStore{tasks: map[string]domain.Task{}}
}

func (f *fakeStore) Insert(_ context.Context, task domain.Task) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeStore) Get(_ context.Context, id string) (domain.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: task %s", apperrors.ErrNotFound, id)
	}
	return task, nil
}

func (f *fakeStore) Update(_ context.Context, task domain.Task) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return fmt.Errorf("%w: task %s", apperrors.ErrNotFound, task.ID)
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	if _, ok := f.tasks[id]; !ok {
		return fmt.Errorf("%w: task %s", apperrors.ErrNotFound, id)
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeStore) ListDay(_ context.Context, dayKey string) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, task := range f.tasks {
		if task.DayKey == dayKey {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeStore) ListOpenBefore(_ context.Context, dayKey string) ([]domain.Task, error) {
	out := []domain.Task{}
	for _, task := range f.tasks {
		if !task.Done && task.DayKey < dayKey {
			out = append(out, task)
		}
	}
	return out, nil
}

func newInteractor(now time.Time, store *fakeStore) (*Interactor, *fakeClock) {
	clk := &fakeClock{now: now}
	svc := service.NewPlannerService(clk, &seqIDGen{}, store)
	return &Interactor{svc: svc}, clk
}

func TestAddDefaultsToToday(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	interactor, _ := newInteractor(time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC), store)

	task, err := interactor.Add(context.Background(), plannerdto.AddInput{Title: "  read chapter 4  "})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if task.DayKey != "2026-08-23" {
		t.Fatalf("day key = %q", task.DayKey)
	}
	if task.Title != "read chapter 4" {
		t.Fatalf("title = %q, want trimmed", task.Title)
	}
	if task.Done {
		t.Fatal("new task marked done")
	}
}

func TestAddRejectsBlankTitleAndBadDay(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	interactor, _ := newInteractor(time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC), store)

	if _, err := interactor.Add(context.Background(), plannerdto.AddInput{Title: "   "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank title: err = %v", err)
	}
	if _, err := interactor.Add(context.Background(), plannerdto.AddInput{Title: "x", DayKey: "someday"}); err == nil {
		t.Fatal("malformed day key accepted")
	}
	if len(store.tasks) != 0 {
		t.Fatalf("rejected tasks stored: %d", len(store.tasks))
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	interactor, clk := newInteractor(time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC), store)

	added, err := interactor.Add(context.Background(), plannerdto.AddInput{Title: "review notes"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	clk.now = clk.now.Add(time.Hour)
	first, err := interactor.Complete(context.Background(), added.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !first.Done || !first.CompletedAt.Equal(clk.now) {
		t.Fatalf("first completion = %+v", first)
	}

	clk.now = clk.now.Add(time.Hour)
	second, err := interactor.Complete(context.Background(), added.ID)
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if !second.CompletedAt.Equal(first.CompletedAt) {
		t.Fatalf("completion time moved: %v then %v", first.CompletedAt, second.CompletedAt)
	}
}

func TestCompleteUnknownTaskFails(t *testing.T) {
	t.Parallel()

	interactor, _ := newInteractor(time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC), newFakeStore())

	if _, err := interactor.Complete(context.Background(), "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCarryOverMovesOnlyOpenPastTasks(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	created := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	store.tasks["old-open"] = domain.Task{ID: "old-open", DayKey: "2026-08-20", Title: "a", CreatedAt: created}
	store.tasks["old-done"] = domain.Task{ID: "old-done", DayKey: "2026-08-21", Title: "b", Done: true, CreatedAt: created}
	store.tasks["today"] = domain.Task{ID: "today", DayKey: "2026-08-23", Title: "c", CreatedAt: created}

	interactor, _ := newInteractor(time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC), store)

	moved, err := interactor.CarryOver(context.Background())
	if err != nil {
		t.Fatalf("carry over: %v", err)
	}
	if len(moved) != 1 || moved[0].ID != "old-open" {
		t.Fatalf("moved = %+v", moved)
	}
	if store.tasks["old-open"].DayKey != "2026-08-23" {
		t.Fatalf("task not rescheduled: %q", store.tasks["old-open"].DayKey)
	}
	if store.tasks["old-done"].DayKey != "2026-08-21" {
		t.Fatal("done task was moved")
	}
}

func TestDayPlanCountsOpenAndDone(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.tasks["a"] = domain.Task{ID: "a", DayKey: "2026-08-23", Title: "a"}
	store.tasks["b"] = domain.Task{ID: "b", DayKey: "2026-08-23", Title: "b", Done: true}
	store.tasks["c"] = domain.Task{ID: "c", DayKey: "2026-08-22", Title: "c"}

	interactor, _ := newInteractor(time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC), store)

	plan, err := interactor.TodayPlan(context.Background())
	if err != nil {
		t.Fatalf("today plan: %v", err)
	}
	if plan.OpenCount != 1 || plan.DoneCount != 1 || len(plan.Tasks) != 2 {
		t.Fatalf("plan = %+v", plan)
	}
}
