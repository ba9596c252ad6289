package forest

import (
	"math"
	"testing"
)

func TestCensusPercent(t *testing.T) {
	f := EmptyField(2)
	f[0].Type = Grass
	f[1].Type = Flame
	f[2].Type = Flame
	c := Census(f)
	if c.Of(Flame) != 2 || c.Of(Grass) != 1 || c.Of(Empty) != 1 || c.Of(Tree) != 0 {
		t.Fatalf("census = %+v", c)
	}
	if got := c.Percent(Flame); math.Abs(got-50) > 1e-9 {
		t.Fatalf("flame percent = %f, want 50", got)
	}
	if got := (Counts{}).Percent(Grass); got != 0 {
		t.Fatalf("empty census percent = %f", got)
	}
}
