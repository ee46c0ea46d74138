package domain_test

import (
	"testing"
	"time"

	"tempo/internal/modules/session/domain"
	apperrors "tempo/internal/platform/errors"
)

var t0 = time.Date(2026, 8, 23, 9, 0, 0, 0, time.Local)

func start(t *testing.T, m *domain.Machine, goal, study, brk, already int) {
	t.Helper()
	if _, err := m.Start("", goal, study, brk, already, t0); err != nil {
		t.Fatalf("start: %v", err)
	}
}

func kinds(events []domain.Event) map[domain.EventKind]bool {
	seen := map[domain.EventKind]bool{}
	for _, e := range events {
		seen[e.Kind] = true
	}
	return seen
}

func TestTenTicksCompleteTheGoal(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 10, 600, 300, 0)

	var last []domain.Event
	for i := 0; i < 10; i++ {
		last = m.Tick()
	}
	if m.State != domain.StateIdle {
		t.Fatalf("machine must reach idle at goal completion, got %s", m.State)
	}
	if m.GoalProgressSeconds != 10 {
		t.Fatalf("expected goal progress 10, got %d", m.GoalProgressSeconds)
	}
	seen := kinds(last)
	if !seen[domain.EventFlushRequested] || !seen[domain.EventGoalCompleted] {
		t.Fatalf("goal completion must flush and prompt, got %v", last)
	}
	if m.PendingStudySeconds != 10 {
		t.Fatalf("all 10 credited seconds must be pending until the flush lands, got %d", m.PendingStudySeconds)
	}
}

func TestGoalProgressIsMonotoneAndCapped(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 20, 5, 3, 0)

	prev := 0
	for i := 0; i < 200; i++ {
		m.Tick()
		if m.GoalProgressSeconds < prev {
			t.Fatalf("goal progress regressed at tick %d: %d -> %d", i, prev, m.GoalProgressSeconds)
		}
		if m.GoalProgressSeconds > 20 {
			t.Fatalf("goal progress exceeded the daily goal: %d", m.GoalProgressSeconds)
		}
		prev = m.GoalProgressSeconds
		if m.State == domain.StateIdle {
			break
		}
	}
	if m.State != domain.StateIdle {
		t.Fatalf("goal should eventually complete")
	}
}

func TestStudyToBreakTransitionFlushesAndPrompts(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 3600, 2, 3, 0)

	m.Tick()
	m.Tick() // remaining hits 0
	events := m.Tick()
	seen := kinds(events)
	if m.Phase != domain.PhaseBreak {
		t.Fatalf("expected break phase, got %s", m.Phase)
	}
	if m.RemainingSeconds != 3 {
		t.Fatalf("break countdown must reset to break duration, got %d", m.RemainingSeconds)
	}
	if !seen[domain.EventFlushRequested] || !seen[domain.EventBreakStarted] || !seen[domain.EventAlertOn] || !seen[domain.EventAmbienceOff] {
		t.Fatalf("unexpected transition events: %v", events)
	}
	if !m.PromptPending {
		t.Fatalf("break prompt must await acknowledgement")
	}

	// The countdown keeps going while the prompt is pending.
	m.Tick()
	if m.RemainingSeconds != 2 || m.PendingBreakSeconds != 1 {
		t.Fatalf("break ticks must credit break seconds, got rem=%d pending=%d", m.RemainingSeconds, m.PendingBreakSeconds)
	}
}

func TestBreakToStudyTransitionCreditsSession(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 3600, 2, 1, 0)
	before := m.PendingSessionsCount

	// 2 study ticks, transition, 1 break tick, transition back.
	m.Tick()
	m.Tick()
	m.Tick()
	m.Tick()
	events := m.Tick()
	if m.Phase != domain.PhaseStudy {
		t.Fatalf("expected study phase after break ends, got %s", m.Phase)
	}
	if m.PendingSessionsCount != before+1 {
		t.Fatalf("break -> study must credit a session start, got %d", m.PendingSessionsCount)
	}
	if !kinds(events)[domain.EventBreakEnded] {
		t.Fatalf("expected break ended prompt, got %v", events)
	}
}

func TestFlushThresholdForcesFlushAtFifteenSeconds(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 3600, 600, 300, 0)

	for i := 1; i <= 14; i++ {
		if events := m.Tick(); kinds(events)[domain.EventFlushRequested] {
			t.Fatalf("no flush expected before 15 pending seconds, got one at tick %d", i)
		}
	}
	if events := m.Tick(); !kinds(events)[domain.EventFlushRequested] {
		t.Fatalf("expected a flush request at 15 pending seconds")
	}
}

func TestPauseFlushesAndStopsTicks(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 3600, 600, 300, 0)

	for i := 0; i < 5; i++ {
		m.Tick()
	}
	events, err := m.Pause()
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if !kinds(events)[domain.EventFlushRequested] {
		t.Fatalf("pause must force a flush")
	}
	if m.Tick() != nil || m.GoalProgressSeconds != 5 {
		t.Fatalf("ticks must be no-ops while paused")
	}
	if _, err := m.Resume(); err != nil {
		t.Fatalf("resume: %v", err)
	}
	for i := 0; i < 5; i++ {
		m.Tick()
	}
	if m.GoalProgressSeconds != 10 {
		t.Fatalf("expected 10 credited seconds after resume, got %d", m.GoalProgressSeconds)
	}
}

func TestSkipBreakForcesStudyAndCreditsSession(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 3600, 2, 300, 0)
	m.Tick()
	m.Tick()
	m.Tick() // into break
	before := m.PendingSessionsCount

	events, err := m.SkipBreak()
	if err != nil {
		t.Fatalf("skip break: %v", err)
	}
	if m.Phase != domain.PhaseStudy || m.RemainingSeconds != 2 {
		t.Fatalf("skip must land in a fresh study phase, got %s/%d", m.Phase, m.RemainingSeconds)
	}
	if m.PendingSessionsCount != before+1 {
		t.Fatalf("skip must credit a session start")
	}
	if !kinds(events)[domain.EventFlushRequested] {
		t.Fatalf("skip must flush pending time")
	}
	if _, err := m.SkipBreak(); err == nil {
		t.Fatalf("skip outside a break must fail")
	}
}

func TestStartIsRejectedWhenGoalAlreadyMet(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	if _, err := m.Start("", 1500, 25*60, 5*60, 1500, t0); err != apperrors.ErrGoalCompleted {
		t.Fatalf("expected goal completed error, got %v", err)
	}
	if m.State != domain.StateIdle {
		t.Fatalf("rejected start must leave the machine idle")
	}
}

func TestStartClampsZeroDurations(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 0, 0, 0, 0)
	if m.DailyGoalSeconds != 1 || m.StudyDuration != 1 || m.BreakDuration != 1 {
		t.Fatalf("zero configuration must clamp to 1, got %d/%d/%d", m.DailyGoalSeconds, m.StudyDuration, m.BreakDuration)
	}
}

func TestRolloverResetsOnceAndIsIdempotent(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-22")
	m.GoalProgressSeconds = 900

	m.Rollover("2026-08-23")
	if m.GoalProgressSeconds != 0 || m.DayKey != "2026-08-23" {
		t.Fatalf("rollover must reset progress for the new day")
	}
	m.GoalProgressSeconds = 60
	m.Rollover("2026-08-23")
	if m.GoalProgressSeconds != 60 {
		t.Fatalf("rollover on the same day key must be a no-op")
	}
}

func TestAcknowledgeClearsPromptWithoutTouchingCountdown(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 3600, 1, 5, 0)
	m.Tick()
	m.Tick() // study -> break prompt
	remaining := m.RemainingSeconds

	events := m.Acknowledge()
	if m.PromptPending {
		t.Fatalf("acknowledge must clear the prompt")
	}
	if m.RemainingSeconds != remaining {
		t.Fatalf("acknowledge must not touch the countdown")
	}
	if !kinds(events)[domain.EventAlertOff] {
		t.Fatalf("acknowledge must silence the alert")
	}
	if m.Acknowledge() != nil {
		t.Fatalf("acknowledge without a prompt is a no-op")
	}
}

func TestStopClearsTransientStateButKeepsProgress(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 3600, 600, 300, 0)
	for i := 0; i < 7; i++ {
		m.Tick()
	}

	events := m.Stop()
	if m.State != domain.StateIdle || m.RemainingSeconds != 0 {
		t.Fatalf("stop must return to idle with no countdown")
	}
	if m.GoalProgressSeconds != 7 {
		t.Fatalf("stop must keep the day's goal progress, got %d", m.GoalProgressSeconds)
	}
	if !kinds(events)[domain.EventFlushRequested] {
		t.Fatalf("stop must flush pending time")
	}
}

func TestStartSeedsProgressFromPersistedValue(t *testing.T) {
	t.Parallel()
	m := domain.NewMachine("2026-08-23")
	start(t, m, 7200, 25*60, 5*60, 5400)
	if m.GoalProgressSeconds != 5400 {
		t.Fatalf("start must seed progress from persisted study seconds, got %d", m.GoalProgressSeconds)
	}
	if m.RemainingGoalSeconds() != 1800 {
		t.Fatalf("expected 1800 seconds remaining, got %d", m.RemainingGoalSeconds())
	}
}
