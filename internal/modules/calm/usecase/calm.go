package usecase

import (
	"context"

	"tempo/internal/modules/calm/domain"
	calmdto "tempo/internal/modules/calm/dto"
	calmin "tempo/internal/modules/calm/port/in"
)

type Interactor struct{}

func NewInteractor() calmin.Usecase {
	return Interactor{}
}

func (Interactor) Patterns(context.Context) ([]calmdto.PatternOutput, error) {
	patterns := domain.Patterns()
	out := make([]calmdto.PatternOutput, 0, len(patterns))
	for _, p := range patterns {
		entry := calmdto.PatternOutput{
			ID:           p.ID,
			Name:         p.Name,
			CycleSeconds: p.CycleSeconds(),
		}
		for _, phase := range p.Phases {
			entry.Phases = append(entry.Phases, calmdto.PhaseOutput{Name: phase.Name, Seconds: phase.Seconds})
		}
		out = append(out, entry)
	}
	return out, nil
}

func (Interactor) Meditations(context.Context) ([]calmdto.PresetOutput, error) {
	presets := domain.Presets()
	out := make([]calmdto.PresetOutput, 0, len(presets))
	for _, p := range presets {
		out = append(out, calmdto.PresetOutput{
			ID:              p.ID,
			Name:            p.Name,
			DurationSeconds: p.DurationSeconds,
		})
	}
	return out, nil
}

func (Interactor) StepAt(_ context.Context, patternID string, elapsedSeconds int) (calmdto.StepOutput, error) {
	pattern, err := domain.Lookup(patternID)
	if err != nil {
		return calmdto.StepOutput{}, err
	}
	step := pattern.StepAt(elapsedSeconds)
	return calmdto.StepOutput{
		PatternID:        pattern.ID,
		PhaseName:        step.Phase.Name,
		RemainingSeconds: step.RemainingSeconds,
		Cycle:            step.Cycle,
	}, nil
}
