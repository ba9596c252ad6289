package forest

import (
	"slices"
	"testing"
)

func TestEmptyField(t *testing.T) {
	f := EmptyField(3)
	if len(f) != 9 {
		t.Fatalf("len = %d, want 9", len(f))
	}
	for i, c := range f {
		if c != (Cell{Type: Empty, Propagation: 1}) {
			t.Fatalf("cell %d = %+v", i, c)
		}
	}
	if len(EmptyField(0)) != 0 || len(EmptyField(-2)) != 0 {
		t.Fatal("non-positive sizes should produce empty fields")
	}
}

func TestRandomFieldCounts(t *testing.T) {
	f := RandomField(10, 20, 15, 5)
	got := Census(f)
	want := Counts{Empty: 60, Grass: 20, Trees: 15, Flames: 5, Total: 100}
	if got != want {
		t.Fatalf("census = %+v, want %+v", got, want)
	}
	for i, c := range f {
		if c.Propagation != 1 {
			t.Fatalf("cell %d propagation = %d", i, c.Propagation)
		}
		if c.Type == Empty {
			if c.Age != 0 {
				t.Fatalf("empty cell %d aged %d", i, c.Age)
			}
			continue
		}
		if c.Age < 0 || c.Age >= 10 {
			t.Fatalf("seeded cell %d age %d outside [0,10)", i, c.Age)
		}
	}
}

func TestRandomFieldDeterministic(t *testing.T) {
	a := RandomField(16, 30, 30, 10)
	b := RandomField(16, 30, 30, 10)
	if !slices.Equal(a, b) {
		t.Fatal("RandomField should be reproducible")
	}
	c := RandomFieldSeeded(1, 16, 30, 30, 10)
	d := RandomFieldSeeded(2, 16, 30, 30, 10)
	if slices.Equal(c, d) {
		t.Fatal("different seeds should place cells differently")
	}
}

// Every pass restarts from the same seed, so the grass pass is unaffected by
// the passes that follow it.
func TestRandomFieldPassesRestartStream(t *testing.T) {
	grassOnly := RandomField(12, 25, 0, 0)
	mixed := RandomField(12, 25, 25, 5)
	for i := range grassOnly {
		if grassOnly[i].Type != Grass {
			continue
		}
		if mixed[i] != grassOnly[i] {
			t.Fatalf("grass cell %d differs: %+v vs %+v", i, mixed[i], grassOnly[i])
		}
	}
}

func TestRandomFieldFillsToCapacity(t *testing.T) {
	f := RandomField(3, 4, 3, 2)
	c := Census(f)
	if c.Empty != 0 || c.Grass != 4 || c.Trees != 3 || c.Flames != 2 {
		t.Fatalf("census = %+v", c)
	}
}
