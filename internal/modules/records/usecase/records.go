package usecase

import (
	"context"

	"tempo/internal/modules/records/domain"
	"tempo/internal/modules/records/dto"
	recordsin "tempo/internal/modules/records/port/in"
	"tempo/internal/modules/records/service"
	"tempo/internal/platform/daykey"
)

type Interactor struct {
	svc *service.RecordService
}

func NewInteractor(svc *service.RecordService) recordsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Record(ctx context.Context, input dto.RecordInput) error {
	return i.svc.Record(ctx, domain.Delta{
		DayKey:        daykey.Key(input.DayKey),
		StudySeconds:  input.StudySeconds,
		BreakSeconds:  input.BreakSeconds,
		SessionsCount: input.SessionsCount,
	})
}

func (i *Interactor) ListAll(ctx context.Context) ([]dto.RecordOutput, error) {
	records, err := i.svc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, toOutput(r))
	}
	return out, nil
}

func (i *Interactor) ForDay(ctx context.Context, dayKey string) (dto.RecordOutput, error) {
	record, err := i.svc.ForDay(ctx, dayKey)
	if err != nil {
		return dto.RecordOutput{}, err
	}
	return toOutput(record), nil
}

func toOutput(r domain.DailyRecord) dto.RecordOutput {
	return dto.RecordOutput{
		DayKey:        string(r.DayKey),
		StudySeconds:  r.StudySeconds,
		BreakSeconds:  r.BreakSeconds,
		SessionsCount: r.SessionsCount,
	}
}
