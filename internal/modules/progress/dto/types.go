package dto

type TodayOutput struct {
	DayKey                string  `json:"day"`
	EffectiveStudySeconds int     `json:"study_seconds"`
	BreakSeconds          int     `json:"break_seconds"`
	SessionsCount         int     `json:"sessions"`
	DailyGoalSeconds      int     `json:"daily_goal_seconds"`
	Ratio                 float64 `json:"ratio"`
	RemainingGoalSeconds  int     `json:"remaining_goal_seconds"`
}

type StreakOutput struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type SummaryOutput struct {
	StudySeconds  int `json:"study_seconds"`
	BreakSeconds  int `json:"break_seconds"`
	SessionsCount int `json:"sessions"`
	ActiveDays    int `json:"active_days"`
}

type BadgeOutput struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Earned bool   `json:"earned"`
}

type DayOutput struct {
	DayKey        string  `json:"day"`
	StudySeconds  int     `json:"study_seconds"`
	BreakSeconds  int     `json:"break_seconds"`
	SessionsCount int     `json:"sessions"`
	Ratio         float64 `json:"ratio"`
}
