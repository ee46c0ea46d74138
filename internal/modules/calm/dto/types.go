package dto

type PhaseOutput struct {
	Name    string `json:"name"`
	Seconds int    `json:"seconds"`
}

type PatternOutput struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Phases       []PhaseOutput `json:"phases"`
	CycleSeconds int           `json:"cycle_seconds"`
}

type PresetOutput struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationSeconds int    `json:"duration_seconds"`
}

type StepOutput struct {
	PatternID        string `json:"pattern"`
	PhaseName        string `json:"phase"`
	RemainingSeconds int    `json:"remaining_seconds"`
	Cycle            int    `json:"cycle"`
}
