package in

import (
	"context"

	"tempo/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StatusOutput, error)
	Pause(ctx context.Context) (dto.StatusOutput, error)
	Resume(ctx context.Context) (dto.StatusOutput, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	SkipBreak(ctx context.Context) (dto.StatusOutput, error)
	Acknowledge(ctx context.Context) (dto.StatusOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	Suspend(ctx context.Context) error
	Restore(ctx context.Context) (dto.StatusOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Live(ctx context.Context) (dto.LiveOutput, error)
}
