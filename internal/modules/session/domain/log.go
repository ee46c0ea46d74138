package domain

import "time"

// SessionLog summarizes one finished session for the log note.
type SessionLog struct {
	ID           string
	Label        string
	DayKey       string
	StartedAt    time.Time
	EndedAt      time.Time
	StudySeconds int
	BreakSeconds int
	GoalProgress int
	DailyGoal    int
}
