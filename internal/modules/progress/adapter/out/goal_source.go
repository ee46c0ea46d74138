package out

import (
	"context"

	"tempo/internal/platform/settings"
)

// SettingsGoalSource reads the daily goal from the settings file on
// every call so edits apply without a restart.
type SettingsGoalSource struct {
	store *settings.Store
}

func NewSettingsGoalSource(store *settings.Store) SettingsGoalSource {
	return SettingsGoalSource{store: store}
}

func (s SettingsGoalSource) DailyGoalSeconds(_ context.Context) (int, error) {
	loaded, err := s.store.Load()
	if err != nil {
		return 0, err
	}
	return loaded.DailyGoal(), nil
}
