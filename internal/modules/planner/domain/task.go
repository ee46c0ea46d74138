package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "tempo/internal/platform/errors"
)

// Task is one planned study item for a calendar day. Completion is a
// one-way latch; carry-over moves open tasks forward, never back.
type Task struct {
	ID          string
	DayKey      string
	Title       string
	Done        bool
	CreatedAt   time.Time
	CompletedAt time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: task title is empty", apperrors.ErrInvalidInput)
	}
	return nil
}

// Complete marks the task done at the given time. Completing a done
// task changes nothing.
func (t Task) Complete(at time.Time) Task {
	if t.Done {
		return t
	}
	t.Done = true
	t.CompletedAt = at
	return t
}

// CarryTo reschedules an open task to the given day.
func (t Task) CarryTo(dayKey string) Task {
	if t.Done {
		return t
	}
	t.DayKey = dayKey
	return t
}
