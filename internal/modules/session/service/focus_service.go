package service

import (
	"context"
	"errors"

	"tempo/internal/modules/session/domain"
	sessionout "tempo/internal/modules/session/port/out"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/daykey"
	apperrors "tempo/internal/platform/errors"
	"tempo/internal/platform/id"
)

// FocusService owns the single machine instance and applies its events
// against the persistence and sound ports. Flush failures are skipped
// silently; the pending buffers keep the seconds for the next trigger.
type FocusService struct {
	clock    clock.Clock
	idGen    id.Generator
	gateway  sessionout.RecordGateway
	snaps    sessionout.SnapshotStore
	sounds   sessionout.SoundPort
	logs     sessionout.SessionLogStore
	machine  *domain.Machine
	ambience string
}

func NewFocusService(clk clock.Clock, idGen id.Generator, gateway sessionout.RecordGateway, snaps sessionout.SnapshotStore, sounds sessionout.SoundPort, logs sessionout.SessionLogStore) *FocusService {
	return &FocusService{clock: clk, idGen: idGen, gateway: gateway, snaps: snaps, sounds: sounds, logs: logs}
}

func (s *FocusService) today() string {
	return string(daykey.FromTime(s.clock.Now()))
}

// ensureMachine lazily creates the machine and applies the day-boundary
// policy: pending time is flushed to the day it was accrued on before
// progress resets for the new day.
func (s *FocusService) ensureMachine(ctx context.Context) *domain.Machine {
	today := s.today()
	if s.machine == nil {
		s.machine = domain.NewMachine(today)
		return s.machine
	}
	if s.machine.DayKey != today {
		s.flush(ctx)
		s.machine.Rollover(today)
	}
	return s.machine
}

func (s *FocusService) Machine(ctx context.Context) *domain.Machine {
	return s.ensureMachine(ctx)
}

func (s *FocusService) Start(ctx context.Context, label, ambience string, dailyGoal, studyDuration, breakDuration int) (*domain.Machine, error) {
	m := s.ensureMachine(ctx)

	alreadyToday := 0
	if s.gateway != nil {
		if persisted, err := s.gateway.StudySeconds(ctx, m.DayKey); err == nil {
			alreadyToday = persisted
		}
	}
	events, err := m.Start(label, dailyGoal, studyDuration, breakDuration, alreadyToday, s.clock.Now())
	if err != nil {
		return m, err
	}
	s.ambience = ambience
	s.applyEvents(ctx, events)
	s.persistSnapshot(ctx)
	return m, nil
}

func (s *FocusService) Tick(ctx context.Context) (*domain.Machine, []string) {
	m := s.ensureMachine(ctx)
	wasRunning := m.State == domain.StateRunning
	prompts := s.applyEvents(ctx, m.Tick())
	// Goal completion ends the session; the snapshot must not revive it.
	if wasRunning && m.State == domain.StateIdle {
		s.persistSnapshot(ctx)
	}
	return m, prompts
}

func (s *FocusService) Pause(ctx context.Context) (*domain.Machine, error) {
	m := s.ensureMachine(ctx)
	events, err := m.Pause()
	if err != nil {
		return m, err
	}
	s.applyEvents(ctx, events)
	s.persistSnapshot(ctx)
	return m, nil
}

func (s *FocusService) Resume(ctx context.Context) (*domain.Machine, error) {
	m := s.ensureMachine(ctx)
	events, err := m.Resume()
	if err != nil {
		return m, err
	}
	s.applyEvents(ctx, events)
	s.persistSnapshot(ctx)
	return m, nil
}

func (s *FocusService) SkipBreak(ctx context.Context) (*domain.Machine, error) {
	m := s.ensureMachine(ctx)
	events, err := m.SkipBreak()
	if err != nil {
		return m, err
	}
	s.applyEvents(ctx, events)
	s.persistSnapshot(ctx)
	return m, nil
}

func (s *FocusService) Acknowledge(ctx context.Context) *domain.Machine {
	m := s.ensureMachine(ctx)
	s.applyEvents(ctx, m.Acknowledge())
	return m
}

// Stop ends the session, flushes pending time and writes the session
// log note. Goal progress for the day survives on the idle machine.
func (s *FocusService) Stop(ctx context.Context) (*domain.Machine, domain.SessionLog, string, error) {
	m := s.ensureMachine(ctx)
	hadSession := m.State != domain.StateIdle
	s.applyEvents(ctx, m.Stop())
	s.persistSnapshot(ctx)

	log := domain.SessionLog{
		ID:           s.idGen.New(),
		Label:        m.Label,
		DayKey:       m.DayKey,
		StartedAt:    m.StartedAt,
		EndedAt:      s.clock.Now(),
		StudySeconds: m.SessionStudySeconds,
		BreakSeconds: m.SessionBreakSeconds,
		GoalProgress: m.GoalProgressSeconds,
		DailyGoal:    m.DailyGoalSeconds,
	}
	path := ""
	if hadSession && s.logs != nil {
		saved, err := s.logs.Save(ctx, log)
		if err == nil {
			path = saved
		}
	}
	return m, log, path, nil
}

// Suspend is the one point where persistence is on the critical path:
// pending time and the snapshot are written before the app goes away.
func (s *FocusService) Suspend(ctx context.Context) error {
	m := s.ensureMachine(ctx)
	s.flush(ctx)
	if m.State == domain.StateIdle {
		return s.snaps.Clear(ctx)
	}
	return s.snaps.Save(ctx, s.snapshotOf(m))
}

// Restore rebuilds the machine from a durable snapshot. A non-idle
// snapshot with remaining time comes back paused; anything else is
// discarded.
func (s *FocusService) Restore(ctx context.Context) (*domain.Machine, error) {
	snap, err := s.snaps.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSnapshot) {
			return s.ensureMachine(ctx), nil
		}
		return s.ensureMachine(ctx), err
	}
	if !snap.Resumable() {
		_ = s.snaps.Clear(ctx)
		return s.ensureMachine(ctx), nil
	}
	s.machine = snap.Restore(s.today())
	s.ambience = snap.Ambience
	return s.machine, nil
}

// LiveProgress reports today's in-flight goal progress without mutating
// anything: the in-memory machine and the durable snapshot are both
// consulted and the larger counter wins.
func (s *FocusService) LiveProgress(ctx context.Context) (string, int) {
	today := s.today()
	best := 0
	if s.machine != nil && s.machine.DayKey == today {
		best = s.machine.GoalProgressSeconds
	}
	if s.snaps != nil {
		if snap, err := s.snaps.Load(ctx); err == nil && snap.DayKey == today && snap.GoalProgressSeconds > best {
			best = snap.GoalProgressSeconds
		}
	}
	return today, best
}

func (s *FocusService) applyEvents(ctx context.Context, events []domain.Event) []string {
	prompts := []string{}
	for _, event := range events {
		switch event.Kind {
		case domain.EventFlushRequested:
			s.flush(ctx)
		case domain.EventAmbienceOn:
			if s.sounds != nil {
				_ = s.sounds.AmbienceOn(ctx, s.ambience)
			}
		case domain.EventAmbienceOff:
			if s.sounds != nil {
				_ = s.sounds.AmbienceOff(ctx)
			}
		case domain.EventAlertOn:
			if s.sounds != nil {
				_ = s.sounds.AlertOn(ctx)
			}
		case domain.EventAlertOff:
			if s.sounds != nil {
				_ = s.sounds.AlertOff(ctx)
			}
		default:
			if event.Text != "" {
				prompts = append(prompts, event.Text)
			}
		}
	}
	return prompts
}

func (s *FocusService) flush(ctx context.Context) {
	if s.machine == nil || s.gateway == nil {
		return
	}
	delta := s.machine.PendingDelta()
	if delta.Empty() {
		return
	}
	if err := s.gateway.Flush(ctx, delta); err != nil {
		return
	}
	s.machine.ClearPending()
}

func (s *FocusService) persistSnapshot(ctx context.Context) {
	m := s.machine
	if m == nil || s.snaps == nil {
		return
	}
	if m.State == domain.StateIdle {
		_ = s.snaps.Clear(ctx)
		return
	}
	_ = s.snaps.Save(ctx, s.snapshotOf(m))
}

func (s *FocusService) snapshotOf(m *domain.Machine) domain.Snapshot {
	snap := domain.SnapshotOf(m, s.clock.Now())
	snap.Ambience = s.ambience
	return snap
}
