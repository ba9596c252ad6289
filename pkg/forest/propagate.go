package forest

import "forest-ca/pkg/core"

// Propagate lets every eligible cell try to spread into one random
// orthogonal neighbour. Sources are read from f and results are written to a
// copy of f, so several sources may target the same cell in one pass; they
// are visited in linear order and the last write wins.
//
// A spread that would leave the grid is abandoned. Propagation never fails.
func Propagate(f Field, rng *core.RNG) Field {
	out := f.Clone()
	for i, src := range f {
		if !src.CanSpread() {
			continue
		}
		dx, dy := spreadOffset(rng)
		x, y, err := f.ToCartesian(i)
		if err != nil {
			continue
		}
		target, err := f.ToLinear(x+dx, y+dy)
		if err != nil {
			continue
		}
		spread(src, &out[target])
	}
	return out
}

// spreadOffset picks the axis by comparing two uniform draws, then the sign.
func spreadOffset(rng *core.RNG) (int, int) {
	xp := rng.Float32()
	yp := rng.Float32()
	if yp > xp {
		return 0, rng.Sign()
	}
	return rng.Sign(), 0
}

func spread(src Cell, dst *Cell) {
	switch src.Type {
	case Grass, Tree:
		if dst.Type == Empty {
			*dst = Cell{Type: src.Type, Propagation: 1}
		}
	case Flame:
		switch dst.Type {
		case Grass, Tree:
			*dst = Cell{Type: Flame, Propagation: 1}
		case Empty, Flame:
		}
	case Empty:
	}
}
