package out

import (
	"context"

	"tempo/internal/modules/progress/domain"
	recordsin "tempo/internal/modules/records/port/in"
)

// RecordsSource reads daily records through the records module.
type RecordsSource struct {
	records recordsin.Usecase
}

func NewRecordsSource(records recordsin.Usecase) RecordsSource {
	return RecordsSource{records: records}
}

func (s RecordsSource) QueryAll(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Record{
			DayKey:        r.DayKey,
			StudySeconds:  r.StudySeconds,
			BreakSeconds:  r.BreakSeconds,
			SessionsCount: r.SessionsCount,
		})
	}
	return out, nil
}
