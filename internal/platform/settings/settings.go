package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the small user preference store: durations, the daily goal
// and the selected ambience. Values are clamped, never rejected.
type Settings struct {
	DailyGoalSeconds int    `yaml:"daily_goal_seconds"`
	StudyMinutes     int    `yaml:"study_minutes"`
	StudySeconds     int    `yaml:"study_seconds"`
	BreakMinutes     int    `yaml:"break_minutes"`
	BreakSeconds     int    `yaml:"break_seconds"`
	Ambience         string `yaml:"ambience"`
	ReminderHour     int    `yaml:"reminder_hour"`
	SummaryHour      int    `yaml:"summary_hour"`
	RemindersEnabled bool   `yaml:"reminders_enabled"`
}

func Defaults() Settings {
	return Settings{
		DailyGoalSeconds: 2 * 60 * 60,
		StudyMinutes:     25,
		BreakMinutes:     5,
		Ambience:         "rain",
		ReminderHour:     18,
		SummaryHour:      21,
		RemindersEnabled: true,
	}
}

// StudyDuration is the configured study phase length in seconds, floored
// to one second.
func (s Settings) StudyDuration() int {
	return clampSeconds(s.StudyMinutes*60 + s.StudySeconds)
}

// BreakDuration is the configured break phase length in seconds, floored
// to one second.
func (s Settings) BreakDuration() int {
	return clampSeconds(s.BreakMinutes*60 + s.BreakSeconds)
}

// DailyGoal is the goal in seconds, floored to one second so progress
// ratios never divide by zero.
func (s Settings) DailyGoal() int {
	return clampSeconds(s.DailyGoalSeconds)
}

func clampSeconds(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads settings from disk, falling back to defaults when the file
// does not exist yet.
func (s *Store) Load() (Settings, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	loaded := Defaults()
	if err := yaml.Unmarshal(b, &loaded); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return loaded, nil
}

func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	raw, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
