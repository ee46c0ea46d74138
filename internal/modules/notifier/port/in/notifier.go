package in

import (
	"context"

	"tempo/internal/modules/notifier/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.PluginInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
	AmbienceOn(ctx context.Context, sound string) error
	AmbienceOff(ctx context.Context) error
	Alert(ctx context.Context, kind string) error
	Notify(ctx context.Context, input dto.NotifyInput) error
}
