package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"tempo/internal/platform/settings"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	t.Parallel()
	store := settings.NewStore(filepath.Join(t.TempDir(), "settings.yaml"))
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if got.StudyDuration() != 25*60 || got.BreakDuration() != 5*60 {
		t.Fatalf("unexpected default durations: %d/%d", got.StudyDuration(), got.BreakDuration())
	}
	if got.DailyGoal() != 7200 {
		t.Fatalf("unexpected default goal: %d", got.DailyGoal())
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	store := settings.NewStore(path)
	in := settings.Defaults()
	in.StudyMinutes = 50
	in.Ambience = "forest"
	if err := store.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.StudyMinutes != 50 || out.Ambience != "forest" {
		t.Fatalf("round trip lost values: %+v", out)
	}
}

func TestZeroDurationsClampToOneSecond(t *testing.T) {
	t.Parallel()
	s := settings.Settings{}
	if s.StudyDuration() != 1 || s.BreakDuration() != 1 || s.DailyGoal() != 1 {
		t.Fatalf("zero configuration must clamp to 1s, got %d/%d/%d",
			s.StudyDuration(), s.BreakDuration(), s.DailyGoal())
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("daily_goal_seconds: [oops"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	if _, err := settings.NewStore(path).Load(); err == nil {
		t.Fatalf("expected decode error")
	}
}
