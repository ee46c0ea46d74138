package usecase

import (
	"context"

	"tempo/internal/modules/session/domain"
	sessiondto "tempo/internal/modules/session/dto"
	sessionin "tempo/internal/modules/session/port/in"
	"tempo/internal/modules/session/service"
)

type Interactor struct {
	svc *service.FocusService
}

func NewInteractor(svc *service.FocusService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.StatusOutput, error) {
	m, err := i.svc.Start(ctx, input.Label, input.Ambience, input.DailyGoalSeconds, input.StudyDuration, input.BreakDuration)
	if err != nil {
		return toStatus(m), err
	}
	return toStatus(m), nil
}

func (i *Interactor) Pause(ctx context.Context) (sessiondto.StatusOutput, error) {
	m, err := i.svc.Pause(ctx)
	return toStatus(m), err
}

func (i *Interactor) Resume(ctx context.Context) (sessiondto.StatusOutput, error) {
	m, err := i.svc.Resume(ctx)
	return toStatus(m), err
}

func (i *Interactor) Tick(ctx context.Context) (sessiondto.TickOutput, error) {
	m, prompts := i.svc.Tick(ctx)
	return sessiondto.TickOutput{Status: toStatus(m), Prompts: prompts}, nil
}

func (i *Interactor) SkipBreak(ctx context.Context) (sessiondto.StatusOutput, error) {
	m, err := i.svc.SkipBreak(ctx)
	return toStatus(m), err
}

func (i *Interactor) Acknowledge(ctx context.Context) (sessiondto.StatusOutput, error) {
	return toStatus(i.svc.Acknowledge(ctx)), nil
}

func (i *Interactor) Stop(ctx context.Context) (sessiondto.StopOutput, error) {
	_, log, path, err := i.svc.Stop(ctx)
	if err != nil {
		return sessiondto.StopOutput{}, err
	}
	return sessiondto.StopOutput{
		LogPath:      path,
		StudySeconds: log.StudySeconds,
		BreakSeconds: log.BreakSeconds,
	}, nil
}

func (i *Interactor) Suspend(ctx context.Context) error {
	return i.svc.Suspend(ctx)
}

func (i *Interactor) Restore(ctx context.Context) (sessiondto.StatusOutput, error) {
	m, err := i.svc.Restore(ctx)
	return toStatus(m), err
}

func (i *Interactor) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	return toStatus(i.svc.Machine(ctx)), nil
}

func (i *Interactor) Live(ctx context.Context) (sessiondto.LiveOutput, error) {
	dayKey, seconds := i.svc.LiveProgress(ctx)
	return sessiondto.LiveOutput{DayKey: dayKey, Seconds: seconds}, nil
}

func toStatus(m *domain.Machine) sessiondto.StatusOutput {
	if m == nil {
		return sessiondto.StatusOutput{State: string(domain.StateIdle)}
	}
	return sessiondto.StatusOutput{
		State:               string(m.State),
		Phase:               string(m.Phase),
		RemainingSeconds:    m.RemainingSeconds,
		GoalProgressSeconds: m.GoalProgressSeconds,
		DailyGoalSeconds:    m.DailyGoalSeconds,
		RemainingGoal:       m.RemainingGoalSeconds(),
		PromptPending:       m.PromptPending,
		StatusText:          m.StatusText,
		Label:               m.Label,
	}
}
