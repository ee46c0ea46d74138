package dto

import "time"

type AddInput struct {
	Mood   int
	Energy int
	Note   string
}

type CheckInOutput struct {
	ID     string    `json:"id"`
	DayKey string    `json:"day"`
	At     time.Time `json:"at"`
	Mood   int       `json:"mood"`
	Energy int       `json:"energy"`
	Note   string    `json:"note,omitempty"`
}

type DaySummaryOutput struct {
	DayKey      string          `json:"day"`
	Entries     []CheckInOutput `json:"entries"`
	AverageMood float64         `json:"average_mood"`
}
