package in

import (
	"context"

	"tempo/internal/modules/progress/dto"
)

type Usecase interface {
	Today(ctx context.Context) (dto.TodayOutput, error)
	Streaks(ctx context.Context) (dto.StreakOutput, error)
	WeekSummary(ctx context.Context) (dto.SummaryOutput, error)
	MonthSummary(ctx context.Context) (dto.SummaryOutput, error)
	Badges(ctx context.Context) ([]dto.BadgeOutput, error)
	History(ctx context.Context, limit int) ([]dto.DayOutput, error)
}
