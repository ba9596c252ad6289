package forest

import (
	"errors"
	"fmt"
	"math"
)

// ErrCapacity reports a seeding request for more cells than the field holds.
var ErrCapacity = errors.New("forest: seeding exceeds field capacity")

// maxSide is the largest side whose cell count fits in an int.
var maxSide = int(math.Sqrt(float64(math.MaxInt)))

// Seeding describes a random field request.
type Seeding struct {
	Size   int
	Grass  int
	Trees  int
	Flames int
	Seed   uint64
}

// Check verifies the request can be satisfied. RandomField itself does not
// check, so callers taking input from outside must.
func (s Seeding) Check() error {
	if s.Size < 0 {
		return fmt.Errorf("forest: negative size %d", s.Size)
	}
	if s.Grass < 0 || s.Trees < 0 || s.Flames < 0 {
		return fmt.Errorf("forest: negative count in %d/%d/%d", s.Grass, s.Trees, s.Flames)
	}
	if s.Size > maxSide {
		return fmt.Errorf("%w: size %d", ErrCapacity, s.Size)
	}
	// Each count is measured against the room left so the sum never overflows.
	room := s.Size * s.Size
	if s.Grass > room || s.Trees > room-s.Grass || s.Flames > room-s.Grass-s.Trees {
		return fmt.Errorf("%w: %d/%d/%d cells requested, %d available", ErrCapacity, s.Grass, s.Trees, s.Flames, room)
	}
	return nil
}

// Field builds the requested random field.
func (s Seeding) Field() (Field, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	return RandomFieldSeeded(s.Seed, s.Size, s.Grass, s.Trees, s.Flames), nil
}
