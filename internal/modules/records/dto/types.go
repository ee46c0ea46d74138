package dto

type RecordInput struct {
	DayKey        string
	StudySeconds  int
	BreakSeconds  int
	SessionsCount int
}

type RecordOutput struct {
	DayKey        string
	StudySeconds  int
	BreakSeconds  int
	SessionsCount int
}
