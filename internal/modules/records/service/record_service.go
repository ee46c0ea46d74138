package service

import (
	"context"

	"tempo/internal/modules/records/domain"
	recordsout "tempo/internal/modules/records/port/out"
)

type RecordService struct {
	store recordsout.RecordStore
}

func NewRecordService(store recordsout.RecordStore) *RecordService {
	return &RecordService{store: store}
}

func (s *RecordService) Record(ctx context.Context, delta domain.Delta) error {
	if err := delta.Validate(); err != nil {
		return err
	}
	if delta.Empty() {
		return nil
	}
	return s.store.Upsert(ctx, delta)
}

func (s *RecordService) ListAll(ctx context.Context) ([]domain.DailyRecord, error) {
	return s.store.QueryAll(ctx)
}

func (s *RecordService) ForDay(ctx context.Context, day string) (domain.DailyRecord, error) {
	return s.store.ForDay(ctx, day)
}
