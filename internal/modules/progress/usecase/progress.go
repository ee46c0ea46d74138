package usecase

import (
	"context"

	"tempo/internal/modules/progress/domain"
	progressdto "tempo/internal/modules/progress/dto"
	progressin "tempo/internal/modules/progress/port/in"
	"tempo/internal/modules/progress/service"
)

type Interactor struct {
	svc *service.ProgressService
}

func NewInteractor(svc *service.ProgressService) progressin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Today(ctx context.Context) (progressdto.TodayOutput, error) {
	rec, goal, today, err := i.svc.Today(ctx)
	if err != nil {
		return progressdto.TodayOutput{}, err
	}
	return progressdto.TodayOutput{
		DayKey:                today,
		EffectiveStudySeconds: rec.StudySeconds,
		BreakSeconds:          rec.BreakSeconds,
		SessionsCount:         rec.SessionsCount,
		DailyGoalSeconds:      goal,
		Ratio:                 domain.Ratio(rec.StudySeconds, goal),
		RemainingGoalSeconds:  domain.RemainingGoalSeconds(rec.StudySeconds, goal),
	}, nil
}

func (i *Interactor) Streaks(ctx context.Context) (progressdto.StreakOutput, error) {
	current, longest, err := i.svc.Streaks(ctx)
	if err != nil {
		return progressdto.StreakOutput{}, err
	}
	return progressdto.StreakOutput{Current: current, Longest: longest}, nil
}

func (i *Interactor) WeekSummary(ctx context.Context) (progressdto.SummaryOutput, error) {
	totals, err := i.svc.WeekTotals(ctx)
	if err != nil {
		return progressdto.SummaryOutput{}, err
	}
	return toSummary(totals), nil
}

func (i *Interactor) MonthSummary(ctx context.Context) (progressdto.SummaryOutput, error) {
	totals, err := i.svc.MonthTotals(ctx)
	if err != nil {
		return progressdto.SummaryOutput{}, err
	}
	return toSummary(totals), nil
}

func (i *Interactor) Badges(ctx context.Context) ([]progressdto.BadgeOutput, error) {
	badges, err := i.svc.Badges(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]progressdto.BadgeOutput, 0, len(badges))
	for _, b := range badges {
		out = append(out, progressdto.BadgeOutput{ID: b.ID, Title: b.Title, Earned: b.Earned})
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]progressdto.DayOutput, error) {
	records, goal, err := i.svc.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]progressdto.DayOutput, 0, len(records))
	for _, r := range records {
		out = append(out, progressdto.DayOutput{
			DayKey:        r.DayKey,
			StudySeconds:  r.StudySeconds,
			BreakSeconds:  r.BreakSeconds,
			SessionsCount: r.SessionsCount,
			Ratio:         domain.Ratio(r.StudySeconds, goal),
		})
	}
	return out, nil
}

func toSummary(t domain.Totals) progressdto.SummaryOutput {
	return progressdto.SummaryOutput{
		StudySeconds:  t.StudySeconds,
		BreakSeconds:  t.BreakSeconds,
		SessionsCount: t.SessionsCount,
		ActiveDays:    t.ActiveDays,
	}
}
