package out

import (
	"context"

	recordsdto "tempo/internal/modules/records/dto"
	recordsin "tempo/internal/modules/records/port/in"
	"tempo/internal/modules/session/domain"
	sessionout "tempo/internal/modules/session/port/out"
)

// RecordsGateway bridges session flushes to the records module.
type RecordsGateway struct {
	records recordsin.Usecase
}

func NewRecordsGateway(records recordsin.Usecase) sessionout.RecordGateway {
	return &RecordsGateway{records: records}
}

func (g *RecordsGateway) Flush(ctx context.Context, delta domain.FlushDelta) error {
	return g.records.Record(ctx, recordsdto.RecordInput{
		DayKey:        delta.DayKey,
		StudySeconds:  delta.StudySeconds,
		BreakSeconds:  delta.BreakSeconds,
		SessionsCount: delta.SessionsCount,
	})
}

func (g *RecordsGateway) StudySeconds(ctx context.Context, dayKey string) (int, error) {
	record, err := g.records.ForDay(ctx, dayKey)
	if err != nil {
		return 0, err
	}
	return record.StudySeconds, nil
}
