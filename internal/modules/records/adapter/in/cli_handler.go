package in

import (
	"context"

	"tempo/internal/modules/records/dto"
	recordsin "tempo/internal/modules/records/port/in"
)

type CLIHandler struct {
	usecase recordsin.Usecase
}

func NewCLIHandler(usecase recordsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListAll(ctx context.Context) ([]dto.RecordOutput, error) {
	return h.usecase.ListAll(ctx)
}

func (h CLIHandler) ForDay(ctx context.Context, dayKey string) (dto.RecordOutput, error) {
	return h.usecase.ForDay(ctx, dayKey)
}
