package domain

import (
	"time"

	apperrors "tempo/internal/platform/errors"
)

const SchemaVersion = 1

// FlushThresholdSeconds bounds how much credited time can sit in the
// pending buffers before a flush is forced. Crash loss stays under it.
const FlushThresholdSeconds = 15

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

type Phase string

const (
	PhaseStudy Phase = "study"
	PhaseBreak Phase = "break"
)

type EventKind string

const (
	EventFlushRequested EventKind = "flush_requested"
	EventBreakStarted   EventKind = "break_started"
	EventBreakEnded     EventKind = "break_ended"
	EventGoalCompleted  EventKind = "goal_completed"
	EventAmbienceOn     EventKind = "ambience_on"
	EventAmbienceOff    EventKind = "ambience_off"
	EventAlertOn        EventKind = "alert_on"
	EventAlertOff       EventKind = "alert_off"
)

// Event is emitted by machine transitions. The service interprets flush
// requests and sound cues against ports; prompt events carry the text
// surfaced to the user.
type Event struct {
	Kind EventKind
	Text string
}

// FlushDelta is one flush worth of pending credited time, keyed by the
// day it was accrued on.
type FlushDelta struct {
	DayKey        string
	StudySeconds  int
	BreakSeconds  int
	SessionsCount int
}

func (d FlushDelta) Empty() bool {
	return d.StudySeconds == 0 && d.BreakSeconds == 0 && d.SessionsCount == 0
}

// Machine drives a single focus/break cycle: countdown, phase
// transitions, goal completion and pending-time buffering. It is pure;
// every method mutates only the machine and returns events for the
// service layer to act on.
type Machine struct {
	DayKey string
	State  State
	Phase  Phase

	RemainingSeconds    int
	GoalProgressSeconds int
	DailyGoalSeconds    int
	StudyDuration       int
	BreakDuration       int

	PendingStudySeconds  int
	PendingBreakSeconds  int
	PendingSessionsCount int

	// Per-session totals for the session log, not reset by flushes.
	SessionStudySeconds int
	SessionBreakSeconds int

	PromptPending bool
	StatusText    string
	Label         string
	StartedAt     time.Time
}

func NewMachine(dayKey string) *Machine {
	return &Machine{DayKey: dayKey, State: StateIdle, StatusText: "ready"}
}

// Rollover resets day-scoped progress when the stored day key is stale.
// Calling it twice on the same day is a no-op the second time. Pending
// buffers must be flushed to the old day before calling it.
func (m *Machine) Rollover(today string) {
	if m.DayKey == today {
		return
	}
	m.DayKey = today
	m.GoalProgressSeconds = 0
}

// RemainingGoalSeconds is how much study time is still owed today.
func (m *Machine) RemainingGoalSeconds() int {
	remaining := m.DailyGoalSeconds - m.GoalProgressSeconds
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Start begins a study phase. alreadyToday seeds goal progress with the
// study seconds credited earlier today, so restarted sessions keep the
// goal monotone.
func (m *Machine) Start(label string, dailyGoal, studyDuration, breakDuration, alreadyToday int, now time.Time) ([]Event, error) {
	if m.State != StateIdle {
		return nil, apperrors.ErrSessionExists
	}
	m.DailyGoalSeconds = clampSeconds(dailyGoal)
	m.StudyDuration = clampSeconds(studyDuration)
	m.BreakDuration = clampSeconds(breakDuration)
	if alreadyToday > m.DailyGoalSeconds {
		alreadyToday = m.DailyGoalSeconds
	}
	// Never regress progress already held in memory; max() reconciles the
	// persisted value with the live counter.
	if alreadyToday > m.GoalProgressSeconds {
		m.GoalProgressSeconds = alreadyToday
	}
	if m.RemainingGoalSeconds() == 0 {
		m.StatusText = "daily goal already completed"
		return nil, apperrors.ErrGoalCompleted
	}

	m.State = StateRunning
	m.Phase = PhaseStudy
	m.RemainingSeconds = m.StudyDuration
	m.PendingSessionsCount++
	m.SessionStudySeconds = 0
	m.SessionBreakSeconds = 0
	m.PromptPending = false
	m.Label = label
	m.StartedAt = now
	m.StatusText = "studying"
	return []Event{{Kind: EventAmbienceOn}}, nil
}

// Tick advances the machine by one wall-clock second. Ticks only fire
// while running.
func (m *Machine) Tick() []Event {
	if m.State != StateRunning {
		return nil
	}
	if m.RemainingSeconds == 0 {
		return m.transitionPhase()
	}

	m.RemainingSeconds--
	switch m.Phase {
	case PhaseStudy:
		if m.GoalProgressSeconds < m.DailyGoalSeconds {
			m.GoalProgressSeconds++
			m.PendingStudySeconds++
			m.SessionStudySeconds++
		}
	case PhaseBreak:
		m.PendingBreakSeconds++
		m.SessionBreakSeconds++
	}

	if m.GoalProgressSeconds >= m.DailyGoalSeconds {
		return m.completeGoal()
	}
	if m.PendingStudySeconds+m.PendingBreakSeconds >= FlushThresholdSeconds {
		return []Event{{Kind: EventFlushRequested}}
	}
	return nil
}

func (m *Machine) transitionPhase() []Event {
	switch m.Phase {
	case PhaseStudy:
		m.Phase = PhaseBreak
		m.RemainingSeconds = m.BreakDuration
		m.PromptPending = true
		m.StatusText = "take a break"
		return []Event{
			{Kind: EventFlushRequested},
			{Kind: EventAmbienceOff},
			{Kind: EventAlertOn},
			{Kind: EventBreakStarted, Text: "time for a break"},
		}
	default:
		m.Phase = PhaseStudy
		m.RemainingSeconds = m.StudyDuration
		m.PendingSessionsCount++
		m.PromptPending = true
		m.StatusText = "studying"
		return []Event{
			{Kind: EventFlushRequested},
			{Kind: EventAmbienceOn},
			{Kind: EventAlertOn},
			{Kind: EventBreakEnded, Text: "break is over, back to it"},
		}
	}
}

func (m *Machine) completeGoal() []Event {
	m.State = StateIdle
	m.RemainingSeconds = 0
	m.PromptPending = true
	m.StatusText = "daily goal completed"
	return []Event{
		{Kind: EventFlushRequested},
		{Kind: EventAmbienceOff},
		{Kind: EventAlertOn},
		{Kind: EventGoalCompleted, Text: "daily goal completed"},
	}
}

// Pause suspends the countdown and forces a flush of pending seconds.
func (m *Machine) Pause() ([]Event, error) {
	if m.State != StateRunning {
		return nil, apperrors.ErrNotRunning
	}
	m.State = StatePaused
	m.StatusText = "paused"
	return []Event{
		{Kind: EventFlushRequested},
		{Kind: EventAmbienceOff},
		{Kind: EventAlertOff},
	}, nil
}

func (m *Machine) Resume() ([]Event, error) {
	if m.State != StatePaused {
		return nil, apperrors.ErrNotPaused
	}
	m.State = StateRunning
	if m.Phase == PhaseStudy {
		m.StatusText = "studying"
		return []Event{{Kind: EventAmbienceOn}}, nil
	}
	m.StatusText = "on a break"
	return nil, nil
}

// SkipBreak forces an immediate break -> study transition, crediting a
// session start.
func (m *Machine) SkipBreak() ([]Event, error) {
	if m.State != StateRunning || m.Phase != PhaseBreak {
		return nil, apperrors.ErrInvalidInput
	}
	m.Phase = PhaseStudy
	m.RemainingSeconds = m.StudyDuration
	m.PendingSessionsCount++
	m.PromptPending = false
	m.StatusText = "studying"
	return []Event{
		{Kind: EventFlushRequested},
		{Kind: EventAlertOff},
		{Kind: EventAmbienceOn},
	}, nil
}

// Acknowledge clears a pending prompt. It never touches the countdown.
func (m *Machine) Acknowledge() []Event {
	if !m.PromptPending {
		return nil
	}
	m.PromptPending = false
	if m.State == StateRunning && m.Phase == PhaseBreak {
		m.StatusText = "on a break"
	}
	return []Event{{Kind: EventAlertOff}}
}

// Stop ends the session from any state, flushing pending time.
func (m *Machine) Stop() []Event {
	m.State = StateIdle
	m.RemainingSeconds = 0
	m.PromptPending = false
	m.StatusText = "ready"
	return []Event{
		{Kind: EventFlushRequested},
		{Kind: EventAmbienceOff},
		{Kind: EventAlertOff},
	}
}

// PendingDelta snapshots the unflushed buffers. ClearPending is called
// separately so a failed store write keeps the seconds for the next
// flush trigger.
func (m *Machine) PendingDelta() FlushDelta {
	return FlushDelta{
		DayKey:        m.DayKey,
		StudySeconds:  m.PendingStudySeconds,
		BreakSeconds:  m.PendingBreakSeconds,
		SessionsCount: m.PendingSessionsCount,
	}
}

func (m *Machine) ClearPending() {
	m.PendingStudySeconds = 0
	m.PendingBreakSeconds = 0
	m.PendingSessionsCount = 0
}

func clampSeconds(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
