package service

import (
	"context"
	"fmt"
	"strings"

	"tempo/internal/modules/checkin/domain"
	checkinout "tempo/internal/modules/checkin/port/out"
	"tempo/internal/platform/clock"
	"tempo/internal/platform/daykey"
	"tempo/internal/platform/id"
)

type CheckInService struct {
	clock clock.Clock
	idGen id.Generator
	store checkinout.CheckInStore
}

func NewCheckInService(clk clock.Clock, idGen id.Generator, store checkinout.CheckInStore) *CheckInService {
	return &CheckInService{clock: clk, idGen: idGen, store: store}
}

// Add records a mood entry stamped with the current local time.
func (s *CheckInService) Add(ctx context.Context, mood, energy int, note string) (domain.CheckIn, error) {
	now := s.clock.Now()
	entry := domain.CheckIn{
		ID:     s.idGen.New(),
		DayKey: string(daykey.FromTime(now)),
		At:     now,
		Mood:   mood,
		Energy: energy,
		Note:   strings.TrimSpace(note),
	}
	if err := entry.Validate(); err != nil {
		return domain.CheckIn{}, err
	}
	if err := s.store.Insert(ctx, entry); err != nil {
		return domain.CheckIn{}, fmt.Errorf("store check-in: %w", err)
	}
	return entry, nil
}

// Today lists the current day's entries with their mood average.
func (s *CheckInService) Today(ctx context.Context) ([]domain.CheckIn, float64, string, error) {
	today := string(daykey.FromTime(s.clock.Now()))
	entries, err := s.store.ListDay(ctx, today)
	if err != nil {
		return nil, 0, today, fmt.Errorf("list check-ins: %w", err)
	}
	return entries, domain.AverageMood(entries), today, nil
}

// Range lists entries between the two day keys, both inclusive.
func (s *CheckInService) Range(ctx context.Context, fromKey, toKey string) ([]domain.CheckIn, error) {
	if _, err := daykey.Parse(fromKey); err != nil {
		return nil, err
	}
	if _, err := daykey.Parse(toKey); err != nil {
		return nil, err
	}
	entries, err := s.store.ListRange(ctx, fromKey, toKey)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	return entries, nil
}
