package domain

// Badge is a progress milestone derived entirely from records; badges
// are recomputed, never stored.
type Badge struct {
	ID     string
	Title  string
	Earned bool
}

// EvaluateBadges checks every milestone against the full record list.
func EvaluateBadges(records []Record, today string, goalSeconds int, live Live) []Badge {
	totalStudy := 0
	totalSessions := 0
	for _, r := range records {
		totalStudy += r.StudySeconds
		totalSessions += r.SessionsCount
	}
	longest := LongestStreak(records)
	current := Streak(records, today, goalSeconds, live)
	if current > longest {
		longest = current
	}

	return []Badge{
		{ID: "first-session", Title: "First focus session", Earned: totalSessions >= 1},
		{ID: "first-goal", Title: "Daily goal met", Earned: EffectiveStudySeconds(records, today, today, live) >= goalSeconds || anyDayMet(records, goalSeconds)},
		{ID: "streak-7", Title: "Seven days straight", Earned: longest >= 7},
		{ID: "streak-30", Title: "Thirty days straight", Earned: longest >= 30},
		{ID: "hours-10", Title: "Ten hours of focus", Earned: totalStudy >= 10*3600},
		{ID: "hours-100", Title: "One hundred hours of focus", Earned: totalStudy >= 100*3600},
	}
}

func anyDayMet(records []Record, goalSeconds int) bool {
	if goalSeconds < 1 {
		goalSeconds = 1
	}
	for _, r := range records {
		if r.StudySeconds >= goalSeconds {
			return true
		}
	}
	return false
}
