package dto

import "time"

type AddInput struct {
	Title  string
	DayKey string
}

type TaskOutput struct {
	ID          string    `json:"id"`
	DayKey      string    `json:"day"`
	Title       string    `json:"title"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

type DayPlanOutput struct {
	DayKey    string       `json:"day"`
	Tasks     []TaskOutput `json:"tasks"`
	OpenCount int          `json:"open"`
	DoneCount int          `json:"done"`
}
