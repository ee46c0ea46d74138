package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Scheduler fires daily reminder jobs while the TUI is running. It is a
// thin wrapper around robfig/cron so bootstrap does not depend on the
// cron API directly.
type Scheduler struct {
	cron *cron.Cron
}

func New() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

// AddDaily registers fn to run every day at the given local hour.
func (s *Scheduler) AddDaily(hour int, fn func()) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("reminder hour %d out of range", hour)
	}
	if _, err := s.cron.AddFunc(fmt.Sprintf("0 %d * * *", hour), fn); err != nil {
		return fmt.Errorf("schedule daily job: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() { s.cron.Start() }
func (s *Scheduler) Stop()  { s.cron.Stop() }
