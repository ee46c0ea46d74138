package service

import (
	"context"
	"fmt"
	"strings"

	"tempo/internal/modules/planner/domain"
	plannerout "tempo/internal/modules/planner/port/out"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/daykey"
	"tempo/internal/platform/id"
)

type PlannerService struct {
	clock clock.Clock
	idGen id.Generator
	store plannerout.TaskStore
}

func NewPlannerService(clk clock.Clock, idGen id.Generator, store plannerout.TaskStore) *PlannerService {
	return &PlannerService{clock: clk, idGen: idGen, store: store}
}

// Add plans a task for the given day, defaulting to today.
func (s *PlannerService) Add(ctx context.Context, title, dayKeyRaw string) (domain.Task, error) {
	now := s.clock.Now()
	key := string(daykey.FromTime(now))
	if dayKeyRaw != "" {
		parsed, err := daykey.Parse(dayKeyRaw)
		if err != nil {
			return domain.Task{}, err
		}
		key = string(parsed)
	}
	task := domain.Task{
		ID:        s.idGen.New(),
		DayKey:    key,
		Title:     strings.TrimSpace(title),
		CreatedAt: now,
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}
	if err := s.store.Insert(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("store task: %w", err)
	}
	return task, nil
}

// Complete marks the task done. Completing an already done task is a
// no-op returning the task unchanged.
func (s *PlannerService) Complete(ctx context.Context, taskID string) (domain.Task, error) {
	task, err := s.store.Get(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if task.Done {
		return task, nil
	}
	task = task.Complete(s.clock.Now())
	if err := s.store.Update(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

func (s *PlannerService) Remove(ctx context.Context, taskID string) error {
	return s.store.Delete(ctx, taskID)
}

// DayPlan lists the tasks planned for one day.
func (s *PlannerService) DayPlan(ctx context.Context, dayKeyRaw string) ([]domain.Task, string, error) {
	parsed, err := daykey.Parse(dayKeyRaw)
	if err != nil {
		return nil, "", err
	}
	tasks, err := s.store.ListDay(ctx, string(parsed))
	if err != nil {
		return nil, "", fmt.Errorf("list tasks: %w", err)
	}
	return tasks, string(parsed), nil
}

func (s *PlannerService) TodayPlan(ctx context.Context) ([]domain.Task, string, error) {
	today := string(daykey.FromTime(s.clock.Now()))
	tasks, err := s.store.ListDay(ctx, today)
	if err != nil {
		return nil, "", fmt.Errorf("list tasks: %w", err)
	}
	return tasks, today, nil
}

// CarryOver moves every open task planned before today onto today and
// returns the moved tasks.
func (s *PlannerService) CarryOver(ctx context.Context) ([]domain.Task, error) {
	today := string(daykey.FromTime(s.clock.Now()))
	open, err := s.store.ListOpenBefore(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list open tasks: %w", err)
	}
	moved := make([]domain.Task, 0, len(open))
	for _, task := range open {
		carried := task.CarryTo(today)
		if err := s.store.Update(ctx, carried); err != nil {
			return moved, fmt.Errorf("carry task %s: %w", task.ID, err)
		}
		moved = append(moved, carried)
	}
	return moved, nil
}
