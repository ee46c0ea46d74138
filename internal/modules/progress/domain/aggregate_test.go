package domain_test

import (
	"math"
	"testing"

	"tempo/internal/modules/progress/domain"
)

const today = "2026-08-23"

func TestStreakOnEmptyRecordsIsZero(t *testing.T) {
	t.Parallel()
	if got := domain.Streak(nil, today, 1500, domain.Live{}); got != 0 {
		t.Fatalf("expected streak 0 on empty records, got %d", got)
	}
}

func TestRatioAndRemainingForPartialDay(t *testing.T) {
	t.Parallel()
	records := []domain.Record{{DayKey: today, StudySeconds: 5400}}
	effective := domain.EffectiveStudySeconds(records, today, today, domain.Live{})
	if ratio := domain.Ratio(effective, 7200); math.Abs(ratio-0.75) > 1e-9 {
		t.Fatalf("expected ratio 0.75, got %f", ratio)
	}
	if remaining := domain.RemainingGoalSeconds(effective, 7200); remaining != 1800 {
		t.Fatalf("expected 1800 seconds remaining, got %d", remaining)
	}
}

func TestRatioIsCappedAndGoalClamped(t *testing.T) {
	t.Parallel()
	if ratio := domain.Ratio(9000, 7200); ratio != 1 {
		t.Fatalf("ratio must cap at 1, got %f", ratio)
	}
	if ratio := domain.Ratio(10, 0); ratio != 1 {
		t.Fatalf("zero goal must clamp to 1 second, got %f", ratio)
	}
}

func TestEffectiveSecondsNeverRegressBelowLiveCounter(t *testing.T) {
	t.Parallel()
	records := []domain.Record{{DayKey: today, StudySeconds: 100}}
	live := domain.Live{DayKey: today, Seconds: 160}
	if got := domain.EffectiveStudySeconds(records, today, today, live); got != 160 {
		t.Fatalf("live counter must win while larger, got %d", got)
	}
	live.Seconds = 40
	if got := domain.EffectiveStudySeconds(records, today, today, live); got != 100 {
		t.Fatalf("persisted total must win once flushed, got %d", got)
	}
	// The live counter never applies to other days.
	if got := domain.EffectiveStudySeconds(records, "2026-08-22", today, domain.Live{DayKey: today, Seconds: 999}); got != 0 {
		t.Fatalf("live counter must not leak into other days, got %d", got)
	}
}

func TestStreakBreaksAtZeroWhileTodayBelowGoal(t *testing.T) {
	t.Parallel()
	goal := 1500
	records := []domain.Record{
		{DayKey: "2026-08-22", StudySeconds: 1800},
		{DayKey: today, StudySeconds: 300},
	}
	if got := domain.Streak(records, today, goal, domain.Live{}); got != 0 {
		t.Fatalf("today below goal must break the streak at zero, got %d", got)
	}

	records[1].StudySeconds = 1500
	if got := domain.Streak(records, today, goal, domain.Live{}); got != 2 {
		t.Fatalf("yesterday and today meeting goal must count 2, got %d", got)
	}
}

func TestStreakCountsLiveProgressForToday(t *testing.T) {
	t.Parallel()
	goal := 600
	records := []domain.Record{
		{DayKey: "2026-08-21", StudySeconds: 700},
		{DayKey: "2026-08-22", StudySeconds: 650},
	}
	live := domain.Live{DayKey: today, Seconds: 600}
	if got := domain.Streak(records, today, goal, live); got != 3 {
		t.Fatalf("unflushed live progress must still qualify today, got %d", got)
	}
}

func TestLongestStreakBridgesSortedGaps(t *testing.T) {
	t.Parallel()
	records := []domain.Record{
		{DayKey: "2026-08-10", StudySeconds: 60},
		{DayKey: "2026-08-11", StudySeconds: 60},
		{DayKey: "2026-08-12", StudySeconds: 60},
		{DayKey: "2026-08-14", StudySeconds: 60},
		{DayKey: "2026-08-15", StudySeconds: 60},
	}
	if got := domain.LongestStreak(records); got != 3 {
		t.Fatalf("expected longest run of 3, got %d", got)
	}
	if got := domain.LongestStreak(nil); got != 0 {
		t.Fatalf("no records means no streak, got %d", got)
	}
}

func TestWeekAndMonthTotals(t *testing.T) {
	t.Parallel()
	records := []domain.Record{
		// 2026-08-17 (Mon) .. 2026-08-23 (Sun) is the current ISO week.
		{DayKey: "2026-08-16", StudySeconds: 1000, SessionsCount: 1},
		{DayKey: "2026-08-17", StudySeconds: 600, BreakSeconds: 120, SessionsCount: 2},
		{DayKey: "2026-08-23", StudySeconds: 400, SessionsCount: 1},
		{DayKey: "2026-07-31", StudySeconds: 5000, SessionsCount: 3},
	}
	week := domain.WeekTotals(records, today)
	if week.StudySeconds != 1000 || week.BreakSeconds != 120 || week.SessionsCount != 3 || week.ActiveDays != 2 {
		t.Fatalf("unexpected week totals %+v", week)
	}
	month := domain.MonthTotals(records, today)
	if month.StudySeconds != 2000 || month.ActiveDays != 3 {
		t.Fatalf("unexpected month totals %+v", month)
	}
}

func TestBadgesThresholds(t *testing.T) {
	t.Parallel()
	records := []domain.Record{
		{DayKey: "2026-08-20", StudySeconds: 5 * 3600, SessionsCount: 4},
		{DayKey: "2026-08-21", StudySeconds: 6 * 3600, SessionsCount: 4},
	}
	badges := domain.EvaluateBadges(records, today, 7200, domain.Live{})
	got := map[string]bool{}
	for _, b := range badges {
		got[b.ID] = b.Earned
	}
	if !got["first-session"] || !got["first-goal"] || !got["hours-10"] {
		t.Fatalf("expected first-session, first-goal and hours-10 earned: %v", got)
	}
	if got["streak-7"] || got["hours-100"] {
		t.Fatalf("unearned badges reported as earned: %v", got)
	}
}
