package domain

import (
	"fmt"

	apperrors "tempo/internal/platform/errors"
)

// Phase is one segment of a breathing cycle.
type Phase struct {
	Name    string
	Seconds int
}

// Pattern is a repeating breathing cycle. Patterns are fixed; a
// guided run is just the pattern plus elapsed seconds.
type Pattern struct {
	ID     string
	Name   string
	Phases []Phase
}

// CycleSeconds is the length of one full cycle.
func (p Pattern) CycleSeconds() int {
	total := 0
	for _, phase := range p.Phases {
		total += phase.Seconds
	}
	return total
}

// Step is the state of a run at some elapsed second.
type Step struct {
	Phase            Phase
	RemainingSeconds int
	Cycle            int
}

// StepAt locates the phase containing the given elapsed second.
// Cycles count from one.
func (p Pattern) StepAt(elapsedSeconds int) Step {
	cycle := p.CycleSeconds()
	if elapsedSeconds < 0 || cycle == 0 {
		elapsedSeconds = 0
	}
	within := 0
	if cycle > 0 {
		within = elapsedSeconds % cycle
	}
	for _, phase := range p.Phases {
		if within < phase.Seconds {
			return Step{
				Phase:            phase,
				RemainingSeconds: phase.Seconds - within,
				Cycle:            elapsedSeconds/cycle + 1,
			}
		}
		within -= phase.Seconds
	}
	return Step{Cycle: 1}
}

// Patterns is the built-in catalogue, ordered for display.
func Patterns() []Pattern {
	return []Pattern{
		{
			ID:   "box",
			Name: "Box breathing",
			Phases: []Phase{
				{Name: "inhale", Seconds: 4},
				{Name: "hold", Seconds: 4},
				{Name: "exhale", Seconds: 4},
				{Name: "hold", Seconds: 4},
			},
		},
		{
			ID:   "relax",
			Name: "4-7-8 relax",
			Phases: []Phase{
				{Name: "inhale", Seconds: 4},
				{Name: "hold", Seconds: 7},
				{Name: "exhale", Seconds: 8},
			},
		},
		{
			ID:   "coherent",
			Name: "Coherent breathing",
			Phases: []Phase{
				{Name: "inhale", Seconds: 5},
				{Name: "exhale", Seconds: 5},
			},
		},
	}
}

// Lookup finds a pattern by its ID.
func Lookup(id string) (Pattern, error) {
	for _, p := range Patterns() {
		if p.ID == id {
			return p, nil
		}
	}
	return Pattern{}, fmt.Errorf("%w: breathing pattern %q", apperrors.ErrNotFound, id)
}

// Preset is a fixed-length meditation. Running one is a timer concern;
// the catalogue only carries the durations.
type Preset struct {
	ID              string
	Name            string
	DurationSeconds int
}

// Presets is the built-in meditation catalogue, ordered for display.
func Presets() []Preset {
	return []Preset{
		{ID: "minute", Name: "One minute reset", DurationSeconds: 60},
		{ID: "short", Name: "Short sit", DurationSeconds: 5 * 60},
		{ID: "full", Name: "Full sit", DurationSeconds: 15 * 60},
	}
}

// LookupPreset finds a meditation preset by its ID.
func LookupPreset(id string) (Preset, error) {
	for _, p := range Presets() {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: meditation preset %q", apperrors.ErrNotFound, id)
}
