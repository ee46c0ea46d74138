package in

import (
	"context"

	progressdto "tempo/internal/modules/progress/dto"
	progressin "tempo/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Today(ctx context.Context) (progressdto.TodayOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Streaks(ctx context.Context) (progressdto.StreakOutput, error) {
	return h.usecase.Streaks(ctx)
}

func (h CLIHandler) WeekSummary(ctx context.Context) (progressdto.SummaryOutput, error) {
	return h.usecase.WeekSummary(ctx)
}

func (h CLIHandler) MonthSummary(ctx context.Context) (progressdto.SummaryOutput, error) {
	return h.usecase.MonthSummary(ctx)
}

func (h CLIHandler) Badges(ctx context.Context) ([]progressdto.BadgeOutput, error) {
	return h.usecase.Badges(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]progressdto.DayOutput, error) {
	return h.usecase.History(ctx, limit)
}
