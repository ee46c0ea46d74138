package usecase

import (
	"context"

	"tempo/internal/modules/checkin/domain"
	checkindto "tempo/internal/modules/checkin/dto"
	checkinin "tempo/internal/modules/checkin/port/in"
	"tempo/internal/modules/checkin/service"
)

type Interactor struct {
	svc *service.CheckInService
}

func NewInteractor(svc *service.CheckInService) checkinin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input checkindto.AddInput) (checkindto.CheckInOutput, error) {
	entry, err := i.svc.Add(ctx, input.Mood, input.Energy, input.Note)
	if err != nil {
		return checkindto.CheckInOutput{}, err
	}
	return toOutput(entry), nil
}

func (i *Interactor) Today(ctx context.Context) (checkindto.DaySummaryOutput, error) {
	entries, average, today, err := i.svc.Today(ctx)
	if err != nil {
		return checkindto.DaySummaryOutput{}, err
	}
	out := checkindto.DaySummaryOutput{DayKey: today, AverageMood: average}
	for _, e := range entries {
		out.Entries = append(out.Entries, toOutput(e))
	}
	return out, nil
}

func (i *Interactor) Range(ctx context.Context, fromKey, toKey string) ([]checkindto.CheckInOutput, error) {
	entries, err := i.svc.Range(ctx, fromKey, toKey)
	if err != nil {
		return nil, err
	}
	out := make([]checkindto.CheckInOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, toOutput(e))
	}
	return out, nil
}

func toOutput(e domain.CheckIn) checkindto.CheckInOutput {
	return checkindto.CheckInOutput{
		ID:     e.ID,
		DayKey: e.DayKey,
		At:     e.At,
		Mood:   e.Mood,
		Energy: e.Energy,
		Note:   e.Note,
	}
}
