package in

import (
	"context"

	"tempo/internal/modules/calm/dto"
)

type Usecase interface {
	Patterns(ctx context.Context) ([]dto.PatternOutput, error)
	Meditations(ctx context.Context) ([]dto.PresetOutput, error)
	StepAt(ctx context.Context, patternID string, elapsedSeconds int) (dto.StepOutput, error)
}
