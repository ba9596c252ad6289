package record

import (
	"errors"
	"math"
	"testing"

	"forest-ca/internal/sims/wildfire"
	"forest-ca/pkg/forest"
)

func TestGridSkipsOverfullScenarios(t *testing.T) {
	got := Grid(10, []float64{0.5, 1.0}, []int{0, 5}, 2)
	// density 1.0 with five flames exceeds the field.
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	first := got[0]
	if first.Grass != 25 || first.Trees != 25 || first.Flames != 0 || first.Seed != 1 {
		t.Fatalf("first scenario = %s", first)
	}
}

func TestSweepWorkerCountDoesNotChangeOutcomes(t *testing.T) {
	base := wildfire.DefaultConfig()
	base.Size = 16
	scenarios := Grid(base.Size, []float64{0.3, 0.6}, []int{2, 8}, 2)

	serial := Sweep(base, scenarios, 30, 1)
	parallel := Sweep(base, scenarios, 30, 4)
	if len(serial) != len(scenarios) || len(parallel) != len(scenarios) {
		t.Fatalf("outcome counts %d/%d, want %d", len(serial), len(parallel), len(scenarios))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("outcome %d differs: %+v vs %+v", i, serial[i], parallel[i])
		}
	}
	for i := 1; i < len(serial); i++ {
		if serial[i].PeakFlames > serial[i-1].PeakFlames {
			t.Fatal("outcomes not ordered by peak flames")
		}
	}
}

func TestSweepWithoutFlamesNeverBurns(t *testing.T) {
	base := wildfire.DefaultConfig()
	base.Size = 8
	out := Sweep(base, []Scenario{{Grass: 10, Trees: 10, Seed: 1}}, 5, 2)
	if len(out) != 1 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].PeakFlames != 0 || out[0].BurnedOut != 0 {
		t.Fatalf("outcome = %+v", out[0])
	}
	if out[0].Final.Grass+out[0].Final.Trees < 20 {
		t.Fatalf("vegetation shrank without fire: %+v", out[0].Final)
	}
}

func TestGridSkipsInvalidInputs(t *testing.T) {
	if got := Grid(4, []float64{-0.5, 1.5, math.NaN()}, []int{2}, 1); len(got) != 0 {
		t.Fatalf("invalid densities produced %v", got)
	}
	if got := Grid(4, []float64{0.5}, []int{-1, math.MaxInt}, 1); len(got) != 0 {
		t.Fatalf("invalid flame counts produced %v", got)
	}
}

func TestSweepReportsFailedScenarios(t *testing.T) {
	base := wildfire.DefaultConfig()
	base.Size = 4
	scenarios := []Scenario{
		{Grass: -4, Trees: -4, Flames: 2, Seed: 1},
		{Grass: 4, Trees: 4, Flames: 2, Seed: 1},
	}
	out := Sweep(base, scenarios, 5, 2)
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].Err != nil {
		t.Fatalf("valid scenario failed: %v", out[0].Err)
	}
	failed := out[1]
	if failed.Scenario != scenarios[0] {
		t.Fatalf("failed scenario should sort last, got %s", failed.Scenario)
	}
	if failed.Err == nil {
		t.Fatal("negative counts should be reported as an error")
	}
	if failed.BurnedOut != -1 || failed.Final != (forest.Counts{}) {
		t.Fatalf("failed scenario reported results: %+v", failed)
	}

	overfull := Sweep(base, []Scenario{{Grass: 10, Trees: 10, Flames: 1, Seed: 1}}, 5, 1)
	if !errors.Is(overfull[0].Err, forest.ErrCapacity) {
		t.Fatalf("err = %v, want ErrCapacity", overfull[0].Err)
	}
}
