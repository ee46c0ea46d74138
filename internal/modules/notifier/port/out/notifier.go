package out

import (
	"context"

	"tempo/internal/modules/notifier/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Host runs plugin binaries. Ambience keeps the plugin process alive
// until StopAmbience or Close; the other calls are one-shot.
type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	StartAmbience(ctx context.Context, manifest domain.Manifest, sound string) error
	StopAmbience(ctx context.Context, manifest domain.Manifest) error
	Alert(ctx context.Context, manifest domain.Manifest, kind domain.AlertKind) error
	Notify(ctx context.Context, manifest domain.Manifest, notification domain.Notification) error
	Close()
}
