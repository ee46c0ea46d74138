package in

import (
	"context"

	calmdto "tempo/internal/modules/calm/dto"
	calmin "tempo/internal/modules/calm/port/in"
)

type CLIHandler struct {
	usecase calmin.Usecase
}

func NewCLIHandler(usecase calmin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Patterns(ctx context.Context) ([]calmdto.PatternOutput, error) {
	return h.usecase.Patterns(ctx)
}

func (h CLIHandler) Meditations(ctx context.Context) ([]calmdto.PresetOutput, error) {
	return h.usecase.Meditations(ctx)
}

func (h CLIHandler) StepAt(ctx context.Context, patternID string, elapsedSeconds int) (calmdto.StepOutput, error) {
	return h.usecase.StepAt(ctx, patternID, elapsedSeconds)
}
