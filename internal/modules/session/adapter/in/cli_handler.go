package in

import (
	"context"

	sessiondto "tempo/internal/modules/session/dto"
	sessionin "tempo/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StatusOutput, error) {
	return h.usecase.Start(ctx, input)
}

func (h CLIHandler) Pause(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Tick(ctx context.Context) (sessiondto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) SkipBreak(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.SkipBreak(ctx)
}

func (h CLIHandler) Acknowledge(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Acknowledge(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) (sessiondto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Suspend(ctx context.Context) error {
	return h.usecase.Suspend(ctx)
}

func (h CLIHandler) Restore(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Restore(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Live(ctx context.Context) (sessiondto.LiveOutput, error) {
	return h.usecase.Live(ctx)
}
