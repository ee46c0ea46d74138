package domain

import (
	"fmt"

	"tempo/internal/platform/daykey"
)

const SchemaVersion = 1

// DailyRecord is the per-day aggregate of credited focus time. There is
// at most one record per day key and its fields only ever accumulate.
type DailyRecord struct {
	DayKey        daykey.Key
	StudySeconds  int
	BreakSeconds  int
	SessionsCount int
}

func (r DailyRecord) Validate() error {
	if _, err := daykey.Parse(string(r.DayKey)); err != nil {
		return err
	}
	if r.StudySeconds < 0 || r.BreakSeconds < 0 || r.SessionsCount < 0 {
		return fmt.Errorf("daily record fields must be non-negative")
	}
	return nil
}

// Delta is one flush worth of pending time to merge into a day's record.
type Delta struct {
	DayKey        daykey.Key
	StudySeconds  int
	BreakSeconds  int
	SessionsCount int
}

func (d Delta) Validate() error {
	if _, err := daykey.Parse(string(d.DayKey)); err != nil {
		return err
	}
	if d.StudySeconds < 0 || d.BreakSeconds < 0 || d.SessionsCount < 0 {
		return fmt.Errorf("flush deltas must be non-negative")
	}
	return nil
}

func (d Delta) Empty() bool {
	return d.StudySeconds == 0 && d.BreakSeconds == 0 && d.SessionsCount == 0
}
