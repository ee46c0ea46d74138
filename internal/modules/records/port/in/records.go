package in

import (
	"context"

	"tempo/internal/modules/records/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) error
	ListAll(ctx context.Context) ([]dto.RecordOutput, error)
	ForDay(ctx context.Context, dayKey string) (dto.RecordOutput, error)
}
