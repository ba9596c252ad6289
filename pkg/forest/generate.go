package forest

import "forest-ca/pkg/core"

const maxSeedAge = 10

// EmptyField returns a size*size field of default cells.
func EmptyField(size int) Field {
	if size < 0 {
		size = 0
	}
	f := make(Field, size*size)
	for i := range f {
		f[i] = NewCell()
	}
	return f
}

// RandomField returns an empty field seeded with the requested number of
// grass, tree and flame cells, using DefaultSeed for every pass.
//
// The caller must ensure grass+trees+flames <= size*size; otherwise the
// seeding passes never terminate.
func RandomField(size, grass, trees, flames int) Field {
	return RandomFieldSeeded(DefaultSeed, size, grass, trees, flames)
}

// RandomFieldSeeded is RandomField with an explicit seed. Each of the three
// passes restarts its stream from seed, so placement is reproducible but
// depends on pass order.
func RandomFieldSeeded(seed uint64, size, grass, trees, flames int) Field {
	f := EmptyField(size)
	fillEmpty(f, core.NewRNG(seed), grass, Grass)
	fillEmpty(f, core.NewRNG(seed), trees, Tree)
	fillEmpty(f, core.NewRNG(seed), flames, Flame)
	return f
}

// fillEmpty places count cells of type t on empty slots by rejection
// sampling. Placed cells get a random age in [0, maxSeedAge).
func fillEmpty(f Field, rng *core.RNG, count int, t CellType) {
	s := f.Side()
	if s == 0 {
		return
	}
	for count > 0 {
		a := rng.IntN(s)
		b := rng.IntN(s)
		idx, err := f.ToLinear(a, b)
		if err != nil {
			panic(err)
		}
		if f[idx].Type != Empty {
			continue
		}
		f[idx].Type = t
		f[idx].Age = rng.IntN(maxSeedAge)
		count--
	}
}
