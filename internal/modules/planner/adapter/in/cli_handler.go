package in

import (
	"context"

	plannerdto "tempo/internal/modules/planner/dto"
	plannerin "tempo/internal/modules/planner/port/in"
)

type CLIHandler struct {
	usecase plannerin.Usecase
}

func NewCLIHandler(usecase plannerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input plannerdto.AddInput) (plannerdto.TaskOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Complete(ctx context.Context, id string) (plannerdto.TaskOutput, error) {
	return h.usecase.Complete(ctx, id)
}

func (h CLIHandler) Remove(ctx context.Context, id string) error {
	return h.usecase.Remove(ctx, id)
}

func (h CLIHandler) DayPlan(ctx context.Context, dayKey string) (plannerdto.DayPlanOutput, error) {
	return h.usecase.DayPlan(ctx, dayKey)
}

func (h CLIHandler) TodayPlan(ctx context.Context) (plannerdto.DayPlanOutput, error) {
	return h.usecase.TodayPlan(ctx)
}

func (h CLIHandler) CarryOver(ctx context.Context) ([]plannerdto.TaskOutput, error) {
	return h.usecase.CarryOver(ctx)
}
