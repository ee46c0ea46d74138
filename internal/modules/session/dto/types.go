package dto

type StartInput struct {
	Label            string
	DailyGoalSeconds int
	StudyDuration    int
	BreakDuration    int
	Ambience         string
}

type StatusOutput struct {
	State               string
	Phase               string
	RemainingSeconds    int
	GoalProgressSeconds int
	DailyGoalSeconds    int
	RemainingGoal       int
	PromptPending       bool
	StatusText          string
	Label               string
}

type StopOutput struct {
	LogPath      string
	StudySeconds int
	BreakSeconds int
}

type TickOutput struct {
	Status  StatusOutput
	Prompts []string
}

type LiveOutput struct {
	DayKey  string
	Seconds int
}
