package forest

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfBounds reports a coordinate or index outside the field.
	ErrOutOfBounds = errors.New("forest: out of bounds")
	// ErrNotSquare reports a field whose length is not a perfect square.
	ErrNotSquare = errors.New("forest: field is not square")
	// ErrInvalidCell reports a cell value no rule can produce.
	ErrInvalidCell = errors.New("forest: invalid cell")
)

// Field stores the grid in linear order. Its side length is derived from the
// length as floor(sqrt(len)); trailing cells beyond side*side are never
// addressed.
type Field []Cell

// Side returns the grid edge length.
func (f Field) Side() int {
	return side(len(f))
}

func side(n int) int {
	if n <= 0 {
		return 0
	}
	s := int(math.Sqrt(float64(n)))
	// Correct float rounding for large n.
	for s*s > n {
		s--
	}
	for (s+1)*(s+1) <= n {
		s++
	}
	return s
}

// ToLinear maps the coordinates (a, b) to a linear index as b*side + a.
func (f Field) ToLinear(a, b int) (int, error) {
	s := f.Side()
	if a < 0 || b < 0 || a >= s || b >= s {
		return 0, fmt.Errorf("%w: (%d, %d) with side %d", ErrOutOfBounds, a, b, s)
	}
	return b*s + a, nil
}

// ToCartesian maps a linear index back to (i % side, i / side). It is the
// inverse of ToLinear.
func (f Field) ToCartesian(i int) (int, int, error) {
	if i < 0 || i >= len(f) {
		return 0, 0, fmt.Errorf("%w: index %d with length %d", ErrOutOfBounds, i, len(f))
	}
	s := f.Side()
	return i % s, i / s, nil
}

// Clone returns an independent copy of the field.
func (f Field) Clone() Field {
	if f == nil {
		return nil
	}
	out := make(Field, len(f))
	copy(out, f)
	return out
}

// Validate checks that the field is square and that every cell holds a
// value the engine understands. Fields arriving from outside the process
// should be validated before stepping.
func (f Field) Validate() error {
	s := f.Side()
	if s*s != len(f) {
		return fmt.Errorf("%w: length %d", ErrNotSquare, len(f))
	}
	for i, c := range f {
		switch {
		case c.Age < 0:
			return fmt.Errorf("%w: cell %d has negative age %d", ErrInvalidCell, i, c.Age)
		case c.Propagation > 1:
			return fmt.Errorf("%w: cell %d has propagation %d", ErrInvalidCell, i, c.Propagation)
		case int(c.Type) >= len(cellTypeNames):
			return fmt.Errorf("%w: cell %d has type %d", ErrInvalidCell, i, c.Type)
		}
	}
	return nil
}
