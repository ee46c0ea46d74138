package service

import (
	"context"
	"fmt"
	"sort"

	"tempo/internal/modules/progress/domain"
	progressout "tempo/internal/modules/progress/port/out"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/daykey"
)

// ProgressService aggregates persisted records with the live counter.
// All derivations are read-only.
type ProgressService struct {
	clock   clock.Clock
	records progressout.RecordSource
	live    progressout.LiveSource
	goals   progressout.GoalSource
}

func NewProgressService(clk clock.Clock, records progressout.RecordSource, live progressout.LiveSource, goals progressout.GoalSource) *ProgressService {
	return &ProgressService{clock: clk, records: records, live: live, goals: goals}
}

func (s *ProgressService) load(ctx context.Context) ([]domain.Record, domain.Live, int, string, error) {
	today := string(daykey.FromTime(s.clock.Now()))
	records, err := s.records.QueryAll(ctx)
	if err != nil {
		return nil, domain.Live{}, 0, today, fmt.Errorf("query records: %w", err)
	}
	live, err := s.live.TodayLive(ctx)
	if err != nil {
		return nil, domain.Live{}, 0, today, fmt.Errorf("read live counter: %w", err)
	}
	goal, err := s.goals.DailyGoalSeconds(ctx)
	if err != nil {
		return nil, domain.Live{}, 0, today, fmt.Errorf("read daily goal: %w", err)
	}
	return records, live, goal, today, nil
}

// Today reports the effective progress for the current day.
func (s *ProgressService) Today(ctx context.Context) (domain.Record, int, string, error) {
	records, live, goal, today, err := s.load(ctx)
	if err != nil {
		return domain.Record{}, 0, today, err
	}
	rec := domain.Record{DayKey: today}
	for _, r := range records {
		if r.DayKey == today {
			rec = r
			break
		}
	}
	rec.StudySeconds = domain.EffectiveStudySeconds(records, today, today, live)
	return rec, goal, today, nil
}

// Streaks reports the current and longest goal streaks.
func (s *ProgressService) Streaks(ctx context.Context) (current, longest int, err error) {
	records, live, goal, today, err := s.load(ctx)
	if err != nil {
		return 0, 0, err
	}
	current = domain.Streak(records, today, goal, live)
	longest = domain.LongestStreak(records)
	if current > longest {
		longest = current
	}
	return current, longest, nil
}

// WeekTotals sums the current ISO week.
func (s *ProgressService) WeekTotals(ctx context.Context) (domain.Totals, error) {
	records, _, _, today, err := s.load(ctx)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.WeekTotals(records, today), nil
}

// MonthTotals sums the current calendar month.
func (s *ProgressService) MonthTotals(ctx context.Context) (domain.Totals, error) {
	records, _, _, today, err := s.load(ctx)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.MonthTotals(records, today), nil
}

// Badges evaluates every badge against the full history.
func (s *ProgressService) Badges(ctx context.Context) ([]domain.Badge, error) {
	records, live, goal, today, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return domain.EvaluateBadges(records, today, goal, live), nil
}

// History returns the most recent days first, today's record reconciled
// with the live counter.
func (s *ProgressService) History(ctx context.Context, limit int) ([]domain.Record, int, error) {
	records, live, goal, today, err := s.load(ctx)
	if err != nil {
		return nil, 0, err
	}
	out := make([]domain.Record, len(records))
	copy(out, records)
	seenToday := false
	for i := range out {
		if out[i].DayKey == today {
			out[i].StudySeconds = domain.EffectiveStudySeconds(records, today, today, live)
			seenToday = true
		}
	}
	if !seenToday && live.DayKey == today && live.Seconds > 0 {
		out = append(out, domain.Record{DayKey: today, StudySeconds: live.Seconds})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayKey > out[j].DayKey })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, goal, nil
}
