package core

// ByteGrid stores a 2D grid of byte-sized values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	g := &ByteGrid{}
	g.Resize(w, h)
	return g
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Resize changes the dimensions, reusing the backing array when it is large
// enough. Contents are cleared.
func (g *ByteGrid) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g.W, g.H = w, h
	if cap(g.data) >= w*h {
		g.data = g.data[:w*h]
	} else {
		g.data = make([]uint8, w*h)
	}
	g.Clear()
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
