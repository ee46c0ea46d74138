package in

import (
	"context"

	"tempo/internal/modules/checkin/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.CheckInOutput, error)
	Today(ctx context.Context) (dto.DaySummaryOutput, error)
	Range(ctx context.Context, fromKey, toKey string) ([]dto.CheckInOutput, error)
}
