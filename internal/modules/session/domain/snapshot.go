package domain

import "time"

// Snapshot is the small durable record written so an interrupted session
// can be resumed. It is not a source of truth for historical data; the
// daily records are.
type Snapshot struct {
	SchemaVersion       int       `json:"schema_version"`
	DayKey              string    `json:"day_key"`
	State               State     `json:"state"`
	Phase               Phase     `json:"phase"`
	RemainingSeconds    int       `json:"remaining_seconds"`
	GoalProgressSeconds int       `json:"goal_progress_seconds"`
	DailyGoalSeconds    int       `json:"daily_goal_seconds"`
	StudyDuration       int       `json:"study_duration"`
	BreakDuration       int       `json:"break_duration"`
	StatusText          string    `json:"status_text"`
	Label               string    `json:"label"`
	Ambience            string    `json:"ambience,omitempty"`
	StartedAt           time.Time `json:"started_at"`
	SavedAt             time.Time `json:"saved_at"`
}

// SnapshotOf captures the machine state worth persisting.
func SnapshotOf(m *Machine, now time.Time) Snapshot {
	return Snapshot{
		SchemaVersion:       SchemaVersion,
		DayKey:              m.DayKey,
		State:               m.State,
		Phase:               m.Phase,
		RemainingSeconds:    m.RemainingSeconds,
		GoalProgressSeconds: m.GoalProgressSeconds,
		DailyGoalSeconds:    m.DailyGoalSeconds,
		StudyDuration:       m.StudyDuration,
		BreakDuration:       m.BreakDuration,
		StatusText:          m.StatusText,
		Label:               m.Label,
		StartedAt:           m.StartedAt,
		SavedAt:             now,
	}
}

// Resumable reports whether a stored snapshot should restore a session.
// Anything idle or with no time left is discarded instead.
func (s Snapshot) Resumable() bool {
	return s.State != StateIdle && s.State != "" && s.RemainingSeconds > 0
}

// Restore rebuilds a machine from a snapshot. Restored sessions always
// come back paused, never running, and stale day keys reset progress.
func (s Snapshot) Restore(today string) *Machine {
	m := &Machine{
		DayKey:              s.DayKey,
		State:               StatePaused,
		Phase:               s.Phase,
		RemainingSeconds:    s.RemainingSeconds,
		GoalProgressSeconds: s.GoalProgressSeconds,
		DailyGoalSeconds:    s.DailyGoalSeconds,
		StudyDuration:       s.StudyDuration,
		BreakDuration:       s.BreakDuration,
		Label:               s.Label,
		StartedAt:           s.StartedAt,
		StatusText:          "paused (tap resume)",
	}
	m.Rollover(today)
	return m
}
