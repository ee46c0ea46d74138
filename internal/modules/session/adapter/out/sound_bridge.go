package out

import (
	"context"

	notifierin "tempo/internal/modules/notifier/port/in"
)

// NotifierSoundBridge plays session sounds through the notifier
// plugins. Playback failures are returned but callers treat them as
// advisory; a missing sound plugin never blocks the timer.
type NotifierSoundBridge struct {
	notifier notifierin.Usecase
}

func NewNotifierSoundBridge(notifier notifierin.Usecase) NotifierSoundBridge {
	return NotifierSoundBridge{notifier: notifier}
}

func (b NotifierSoundBridge) AmbienceOn(ctx context.Context, name string) error {
	return b.notifier.AmbienceOn(ctx, name)
}

func (b NotifierSoundBridge) AmbienceOff(ctx context.Context) error {
	return b.notifier.AmbienceOff(ctx)
}

func (b NotifierSoundBridge) AlertOn(ctx context.Context) error {
	return b.notifier.Alert(ctx, "break_start")
}

// AlertOff is a no-op; alert chimes are one-shot.
func (b NotifierSoundBridge) AlertOff(context.Context) error {
	return nil
}
