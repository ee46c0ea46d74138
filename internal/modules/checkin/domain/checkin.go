package domain

import (
	"fmt"
	"time"

	apperrors "tempo/internal/platform/errors"
)

// CheckIn is one mood entry. Multiple check-ins per day are allowed;
// they are never edited after the fact.
type CheckIn struct {
	ID      string
	DayKey  string
	At      time.Time
	Mood    int
	Energy  int
	Note    string
}

const (
	ScaleMin = 1
	ScaleMax = 5
)

func (c CheckIn) Validate() error {
	if c.Mood < ScaleMin || c.Mood > ScaleMax {
		return fmt.Errorf("%w: mood %d out of range %d..%d", apperrors.ErrInvalidInput, c.Mood, ScaleMin, ScaleMax)
	}
	if c.Energy < ScaleMin || c.Energy > ScaleMax {
		return fmt.Errorf("%w: energy %d out of range %d..%d", apperrors.ErrInvalidInput, c.Energy, ScaleMin, ScaleMax)
	}
	return nil
}

// AverageMood is the arithmetic mean over the given entries, zero when
// there are none.
func AverageMood(entries []CheckIn) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.Mood
	}
	return float64(sum) / float64(len(entries))
}
