package in

import (
	"context"

	checkindto "tempo/internal/modules/checkin/dto"
	checkinin "tempo/internal/modules/checkin/port/in"
)

type CLIHandler struct {
	usecase checkinin.Usecase
}

func NewCLIHandler(usecase checkinin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input checkindto.AddInput) (checkindto.CheckInOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Today(ctx context.Context) (checkindto.DaySummaryOutput, error) {
	return h.usecase.Today(ctx)
}

func (h CLIHandler) Range(ctx context.Context, fromKey, toKey string) ([]checkindto.CheckInOutput, error) {
	return h.usecase.Range(ctx, fromKey, toKey)
}
