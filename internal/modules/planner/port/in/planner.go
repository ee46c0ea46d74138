package in

import (
	"context"

	"tempo/internal/modules/planner/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.TaskOutput, error)
	Complete(ctx context.Context, id string) (dto.TaskOutput, error)
	Remove(ctx context.Context, id string) error
	DayPlan(ctx context.Context, dayKey string) (dto.DayPlanOutput, error)
	TodayPlan(ctx context.Context) (dto.DayPlanOutput, error)
	CarryOver(ctx context.Context) ([]dto.TaskOutput, error)
}
