package out

import (
	"context"

	"tempo/internal/modules/records/domain"
)

type RecordStore interface {
	// Upsert additively merges the delta into the day's record, creating
	// it on the first flush of that day.
	Upsert(ctx context.Context, delta domain.Delta) error
	// QueryAll returns every record sorted ascending by day key.
	QueryAll(ctx context.Context) ([]domain.DailyRecord, error)
	// ForDay returns the record for one day, or a zero record when the
	// day has no credited time yet.
	ForDay(ctx context.Context, day string) (domain.DailyRecord, error)
}
