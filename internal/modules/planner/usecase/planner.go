package usecase

import (
	"context"

	"tempo/internal/modules/planner/domain"
	plannerdto "tempo/internal/modules/planner/dto"
	plannerin "tempo/internal/modules/planner/port/in"
	"tempo/internal/modules/planner/service"
)

type Interactor struct {
	svc *service.PlannerService
}

func NewInteractor(svc *service.PlannerService) plannerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input plannerdto.AddInput) (plannerdto.TaskOutput, error) {
	task, err := i.svc.Add(ctx, input.Title, input.DayKey)
	if err != nil {
		return plannerdto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Complete(ctx context.Context, id string) (plannerdto.TaskOutput, error) {
	task, err := i.svc.Complete(ctx, id)
	if err != nil {
		return plannerdto.TaskOutput{}, err
	}
	return toOutput(task), nil
}

func (i *Interactor) Remove(ctx context.Context, id string) error {
	return i.svc.Remove(ctx, id)
}

func (i *Interactor) DayPlan(ctx context.Context, dayKey string) (plannerdto.DayPlanOutput, error) {
	tasks, day, err := i.svc.DayPlan(ctx, dayKey)
	if err != nil {
		return plannerdto.DayPlanOutput{}, err
	}
	return toPlan(tasks, day), nil
}

func (i *Interactor) TodayPlan(ctx context.Context) (plannerdto.DayPlanOutput, error) {
	tasks, day, err := i.svc.TodayPlan(ctx)
	if err != nil {
		return plannerdto.DayPlanOutput{}, err
	}
	return toPlan(tasks, day), nil
}

func (i *Interactor) CarryOver(ctx context.Context) ([]plannerdto.TaskOutput, error) {
	moved, err := i.svc.CarryOver(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]plannerdto.TaskOutput, 0, len(moved))
	for _, task := range moved {
		out = append(out, toOutput(task))
	}
	return out, nil
}

func toPlan(tasks []domain.Task, day string) plannerdto.DayPlanOutput {
	plan := plannerdto.DayPlanOutput{DayKey: day}
	for _, task := range tasks {
		plan.Tasks = append(plan.Tasks, toOutput(task))
		if task.Done {
			plan.DoneCount++
		} else {
			plan.OpenCount++
		}
	}
	return plan
}

func toOutput(t domain.Task) plannerdto.TaskOutput {
	return plannerdto.TaskOutput{
		ID:          t.ID,
		DayKey:      t.DayKey,
		Title:       t.Title,
		Done:        t.Done,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}
