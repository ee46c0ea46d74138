package usecase

import (
	"context"

	"tempo/internal/modules/notifier/domain"
	notifierdto "tempo/internal/modules/notifier/dto"
	notifierin "tempo/internal/modules/notifier/port/in"
	"tempo/internal/modules/notifier/service"
)

type Interactor struct {
	svc *service.NotifierService
}

func NewInteractor(svc *service.NotifierService) notifierin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]notifierdto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]notifierdto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) AmbienceOn(ctx context.Context, sound string) error {
	return i.svc.AmbienceOn(ctx, sound)
}

func (i *Interactor) AmbienceOff(ctx context.Context) error {
	return i.svc.AmbienceOff(ctx)
}

func (i *Interactor) Alert(ctx context.Context, kind string) error {
	return i.svc.Alert(ctx, domain.AlertKind(kind))
}

func (i *Interactor) Notify(ctx context.Context, input notifierdto.NotifyInput) error {
	return i.svc.Notify(ctx, domain.Notification{Title: input.Title, Body: input.Body})
}
