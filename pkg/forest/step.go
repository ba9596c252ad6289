package forest

import "forest-ca/pkg/core"

// DefaultSeed seeds every pass that does not receive an explicit RNG.
const DefaultSeed uint64 = 0

// Age advances every cell by one tick without any cross-cell interaction.
func Age(f Field) Field {
	out := make(Field, len(f))
	for i, c := range f {
		out[i] = c.step()
	}
	return out
}

// Step advances the field by one tick: ageing followed by propagation. The
// propagation pass draws from a fresh stream seeded with DefaultSeed, so two
// calls on equal fields return equal results.
func Step(f Field) Field {
	return StepWith(f, core.NewRNG(DefaultSeed))
}

// StepWith is Step using a caller-owned random stream. Threading one RNG
// through consecutive ticks avoids repeating the same draws every tick.
func StepWith(f Field, rng *core.RNG) Field {
	return Propagate(Age(f), rng)
}
