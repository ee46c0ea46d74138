package out

import (
	"context"

	"tempo/internal/modules/session/domain"
)

// RecordGateway is the flush target for pending credited time, plus the
// lookup needed to seed today's goal progress on start.
type RecordGateway interface {
	Flush(ctx context.Context, delta domain.FlushDelta) error
	StudySeconds(ctx context.Context, dayKey string) (int, error)
}

// SnapshotStore persists the resumable session snapshot.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot domain.Snapshot) error
	Load(ctx context.Context) (domain.Snapshot, error)
	Clear(ctx context.Context) error
}

// SoundPort starts and stops ambience and alert playback. Failures must
// never block the timer; callers ignore errors.
type SoundPort interface {
	AmbienceOn(ctx context.Context, name string) error
	AmbienceOff(ctx context.Context) error
	AlertOn(ctx context.Context) error
	AlertOff(ctx context.Context) error
}

// SessionLogStore writes a per-session log note when a session ends.
type SessionLogStore interface {
	Save(ctx context.Context, log domain.SessionLog) (string, error)
}
