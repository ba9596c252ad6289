package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(100), b.IntN(100); x != y {
			t.Fatalf("draw %d diverged: %d != %d", i, x, y)
		}
		if x, y := a.Float32(), b.Float32(); x != y {
			t.Fatalf("float draw %d diverged: %f != %f", i, x, y)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	seen := map[int]bool{}
	for i := 0; i < 256; i++ {
		s := r.Sign()
		if s != -1 && s != 1 {
			t.Fatalf("Sign returned %d", s)
		}
		seen[s] = true
		if f := r.Float32(); f < 0 || f >= 1 {
			t.Fatalf("Float32 out of range: %f", f)
		}
	}
	if len(seen) != 2 {
		t.Fatalf("expected both signs, saw %v", seen)
	}
}
