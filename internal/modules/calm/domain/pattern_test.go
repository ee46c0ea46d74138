package domain

import (
	"errors"
	"testing"

	apperrors "tempo/internal/platform/errors"
)

func TestBoxPatternSteps(t *testing.T) {
	t.Parallel()

	box, err := Lookup("box")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if box.CycleSeconds() != 16 {
		t.Fatalf("cycle = %d, want 16", box.CycleSeconds())
	}

	cases := []struct {
		elapsed   int
		phase     string
		remaining int
		cycle     int
	}{
		{0, "inhale", 4, 1},
		{3, "inhale", 1, 1},
		{4, "hold", 4, 1},
		{11, "exhale", 1, 1},
		{12, "hold", 4, 1},
		{16, "inhale", 4, 2},
		{35, "inhale", 1, 3},
	}
	for _, tc := range cases {
		step := box.StepAt(tc.elapsed)
		if step.Phase.Name != tc.phase || step.RemainingSeconds != tc.remaining || step.Cycle != tc.cycle {
			t.Fatalf("at %ds: got %s/%d cycle %d, want %s/%d cycle %d",
				tc.elapsed, step.Phase.Name, step.RemainingSeconds, step.Cycle, tc.phase, tc.remaining, tc.cycle)
		}
	}
}

func TestRelaxPatternLengths(t *testing.T) {
	t.Parallel()

	relax, err := Lookup("relax")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if relax.CycleSeconds() != 19 {
		t.Fatalf("cycle = %d, want 19", relax.CycleSeconds())
	}
	step := relax.StepAt(4)
	if step.Phase.Name != "hold" || step.RemainingSeconds != 7 {
		t.Fatalf("at 4s: %s/%d", step.Phase.Name, step.RemainingSeconds)
	}
	step = relax.StepAt(18)
	if step.Phase.Name != "exhale" || step.RemainingSeconds != 1 {
		t.Fatalf("at 18s: %s/%d", step.Phase.Name, step.RemainingSeconds)
	}
}

func TestNegativeElapsedClampsToStart(t *testing.T) {
	t.Parallel()

	coherent, err := Lookup("coherent")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	step := coherent.StepAt(-5)
	if step.Phase.Name != "inhale" || step.RemainingSeconds != 5 || step.Cycle != 1 {
		t.Fatalf("clamp = %+v", step)
	}
}

func TestLookupUnknownPattern(t *testing.T) {
	t.Parallel()

	if _, err := Lookup("square"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMeditationPresetLookup(t *testing.T) {
	t.Parallel()

	preset, err := LookupPreset("short")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if preset.DurationSeconds != 5*60 {
		t.Fatalf("duration = %d, want 300", preset.DurationSeconds)
	}
	if _, err := LookupPreset("hour"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
