package domain

import (
	"sort"

	"tempo/internal/platform/daykey"
)

// Record mirrors one day's persisted totals. Aggregation never mutates
// records; every function here is pure and deterministic given the
// record list, the live snapshot and "now".
type Record struct {
	DayKey        string
	StudySeconds  int
	BreakSeconds  int
	SessionsCount int
}

// Live is the in-memory counter for today. The displayed value never
// regresses below it while a flush is still in flight.
type Live struct {
	DayKey  string
	Seconds int
}

func persistedStudy(records []Record, day string) int {
	for _, r := range records {
		if r.DayKey == day {
			return r.StudySeconds
		}
	}
	return 0
}

// EffectiveStudySeconds reconciles the persisted total with the live
// counter: for today the larger of the two wins, other days are purely
// persisted.
func EffectiveStudySeconds(records []Record, day, today string, live Live) int {
	persisted := persistedStudy(records, day)
	if day == today && live.DayKey == today && live.Seconds > persisted {
		return live.Seconds
	}
	return persisted
}

// Ratio is the day's progress toward the goal, capped at 1.
func Ratio(effectiveSeconds, goalSeconds int) float64 {
	if goalSeconds < 1 {
		goalSeconds = 1
	}
	ratio := float64(effectiveSeconds) / float64(goalSeconds)
	if ratio > 1 {
		return 1
	}
	return ratio
}

func RemainingGoalSeconds(effectiveSeconds, goalSeconds int) int {
	remaining := goalSeconds - effectiveSeconds
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Streak counts consecutive days meeting the goal, ending at today.
// A day still in progress below goal breaks the streak at zero.
func Streak(records []Record, today string, goalSeconds int, live Live) int {
	if goalSeconds < 1 {
		goalSeconds = 1
	}
	count := 0
	day := daykey.Key(today)
	for {
		effective := EffectiveStudySeconds(records, string(day), today, live)
		if effective < goalSeconds {
			break
		}
		count++
		day = day.Prev()
	}
	return count
}

// LongestStreak is the longest run of calendar-consecutive days with
// any recorded activity.
func LongestStreak(records []Record) int {
	days := make([]string, 0, len(records))
	seen := map[string]bool{}
	for _, r := range records {
		if r.StudySeconds == 0 && r.BreakSeconds == 0 && r.SessionsCount == 0 {
			continue
		}
		if !seen[r.DayKey] {
			seen[r.DayKey] = true
			days = append(days, r.DayKey)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Strings(days)

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if daykey.Consecutive(daykey.Key(days[i-1]), daykey.Key(days[i])) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Totals is a filter-and-reduce over a calendar interval.
type Totals struct {
	StudySeconds  int
	BreakSeconds  int
	SessionsCount int
	ActiveDays    int
}

// WeekTotals sums records in the ISO week containing today (weeks start
// on Monday).
func WeekTotals(records []Record, today string) Totals {
	return reduce(records, func(day daykey.Key) bool {
		return daykey.SameWeek(day, daykey.Key(today))
	})
}

// MonthTotals sums records in the calendar month containing today.
func MonthTotals(records []Record, today string) Totals {
	return reduce(records, func(day daykey.Key) bool {
		return daykey.SameMonth(day, daykey.Key(today))
	})
}

func reduce(records []Record, include func(daykey.Key) bool) Totals {
	totals := Totals{}
	for _, r := range records {
		if !include(daykey.Key(r.DayKey)) {
			continue
		}
		totals.StudySeconds += r.StudySeconds
		totals.BreakSeconds += r.BreakSeconds
		totals.SessionsCount += r.SessionsCount
		if r.StudySeconds > 0 || r.BreakSeconds > 0 || r.SessionsCount > 0 {
			totals.ActiveDays++
		}
	}
	return totals
}
