package forest

import (
	"slices"
	"testing"
)

func TestAgeExtinguishesOldFlames(t *testing.T) {
	f := Field{
		{Age: 16, Type: Flame, Propagation: 1},
		{Age: 15, Type: Flame, Propagation: 1},
		{Age: 15, Type: Flame, Propagation: 0},
		{Age: 40, Type: Flame, Propagation: 0},
	}
	got := Age(f)
	want := Field{
		{Age: 0, Type: Empty, Propagation: 0},
		{Age: 16, Type: Flame, Propagation: 1},
		{Age: 16, Type: Flame, Propagation: 0},
		{Age: 0, Type: Empty, Propagation: 0},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("Age = %+v, want %+v", got, want)
	}
}

func TestAgeIsMonotonicForNonFlames(t *testing.T) {
	for _, typ := range []CellType{Empty, Grass, Tree} {
		for _, age := range []int{0, 7, 15, 16, 100} {
			for _, prop := range []uint8{0, 1} {
				in := Cell{Age: age, Type: typ, Propagation: prop}
				out := Age(Field{in})[0]
				if out.Type != typ || out.Propagation != prop || out.Age != age+1 {
					t.Fatalf("Age(%+v) = %+v", in, out)
				}
			}
		}
	}
}

func TestAgeDoesNotMutateInput(t *testing.T) {
	f := Field{{Age: 3, Type: Grass, Propagation: 1}}
	Age(f)
	if f[0].Age != 3 {
		t.Fatalf("input mutated: %+v", f[0])
	}
}

func TestStepBurnsOutFlameField(t *testing.T) {
	f := make(Field, 4)
	for i := range f {
		f[i] = Cell{Age: 16, Type: Flame, Propagation: 1}
	}
	got := Step(f)
	for i, c := range got {
		if c != (Cell{Type: Empty}) {
			t.Fatalf("cell %d = %+v, want inert empty", i, c)
		}
	}
}

func TestStepCenterTreeSpreadsAtAgeEight(t *testing.T) {
	f := EmptyField(3)
	f[4] = Cell{Type: Tree, Propagation: 1}

	for tick := 1; tick <= 7; tick++ {
		f = Step(f)
		if c := Census(f); c.Trees != 1 {
			t.Fatalf("tick %d: %d trees, want 1", tick, c.Trees)
		}
		if f[4].Age != tick {
			t.Fatalf("tick %d: center age %d", tick, f[4].Age)
		}
	}

	f = Step(f)
	if c := Census(f); c.Trees != 2 {
		t.Fatalf("after eighth tick: %d trees, want 2", c.Trees)
	}
	if f[4] != (Cell{Age: 8, Type: Tree, Propagation: 1}) {
		t.Fatalf("center changed: %+v", f[4])
	}
	spread := 0
	for _, i := range []int{1, 3, 5, 7} {
		if f[i].Type == Tree {
			spread++
			if f[i].Age != 0 || f[i].Propagation != 1 {
				t.Fatalf("new tree at %d = %+v", i, f[i])
			}
		}
	}
	if spread != 1 {
		t.Fatalf("expected one orthogonal neighbour to become a tree, got %d", spread)
	}
}

// Step restarts its propagation stream on every call.
func TestStepReseedsEachCall(t *testing.T) {
	f := RandomField(12, 40, 30, 6)
	for i := range f {
		f[i].Age += 8
	}
	a := Step(f)
	b := Step(f)
	if !slices.Equal(a, b) {
		t.Fatal("Step on equal fields should be deterministic")
	}
}
