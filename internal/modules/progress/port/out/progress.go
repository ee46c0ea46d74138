package out

import (
	"context"

	"tempo/internal/modules/progress/domain"
)

// RecordSource supplies the persisted daily records.
type RecordSource interface {
	QueryAll(ctx context.Context) ([]domain.Record, error)
}

// LiveSource supplies today's in-flight study seconds.
type LiveSource interface {
	TodayLive(ctx context.Context) (domain.Live, error)
}

// GoalSource supplies the configured daily goal in seconds.
type GoalSource interface {
	DailyGoalSeconds(ctx context.Context) (int, error)
}
