package in

import (
	"context"

	notifierdto "tempo/internal/modules/notifier/dto"
	notifierin "tempo/internal/modules/notifier/port/in"
)

type CLIHandler struct {
	usecase notifierin.Usecase
}

func NewCLIHandler(usecase notifierin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]notifierdto.PluginInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]notifierdto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}

func (h CLIHandler) AmbienceOn(ctx context.Context, sound string) error {
	return h.usecase.AmbienceOn(ctx, sound)
}

func (h CLIHandler) AmbienceOff(ctx context.Context) error {
	return h.usecase.AmbienceOff(ctx)
}

func (h CLIHandler) Notify(ctx context.Context, input notifierdto.NotifyInput) error {
	return h.usecase.Notify(ctx, input)
}

func (h CLIHandler) Alert(ctx context.Context, kind string) error {
	return h.usecase.Alert(ctx, kind)
}
