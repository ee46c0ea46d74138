package out

import (
	"context"

	"tempo/internal/modules/planner/domain"
)

type TaskStore interface {
	Insert(ctx context.Context, task domain.Task) error
	Get(ctx context.Context, id string) (domain.Task, error)
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id string) error
	ListDay(ctx context.Context, dayKey string) ([]domain.Task, error)
	ListOpenBefore(ctx context.Context, dayKey string) ([]domain.Task, error)
}
