package out

import (
	"context"

	"tempo/internal/modules/checkin/domain"
)

type CheckInStore interface {
	Insert(ctx context.Context, entry domain.CheckIn) error
	ListDay(ctx context.Context, dayKey string) ([]domain.CheckIn, error)
	ListRange(ctx context.Context, fromKey, toKey string) ([]domain.CheckIn, error)
}
