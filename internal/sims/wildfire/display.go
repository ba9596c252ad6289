package wildfire

import (
	"image/color"

	"forest-ca/internal/core"
	"forest-ca/pkg/forest"
)

const (
	displayTypeMask = 0x03
	displayAgeShift = 2
	// Ages at or above displayAgeCap render at full intensity.
	displayAgeCap = 9
	paletteSize   = (displayAgeCap + 1) << displayAgeShift
)

var wildfirePalette = buildPalette()

// Palette exposes the color palette used for rendering the display buffer.
func (w *World) Palette() []color.RGBA {
	return wildfirePalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, paletteSize)
	for i := range palette {
		t := forest.CellType(i & displayTypeMask)
		age := i >> displayAgeShift
		palette[i] = fade(typeColor(t), age)
	}
	return palette
}

func typeColor(t forest.CellType) color.RGBA {
	switch t {
	case forest.Grass:
		return color.RGBA{R: 25, G: 200, B: 80, A: 255}
	case forest.Tree:
		return color.RGBA{R: 80, G: 150, B: 80, A: 255}
	case forest.Flame:
		return color.RGBA{R: 200, G: 50, B: 50, A: 255}
	default:
		return color.RGBA{A: 255}
	}
}

// fade darkens c towards black for young cells. Opacity grows by 31 per tick
// of age and saturates at displayAgeCap.
func fade(c color.RGBA, age int) color.RGBA {
	alpha := min(255, age*31)
	return color.RGBA{
		R: uint8(int(c.R) * alpha / 255),
		G: uint8(int(c.G) * alpha / 255),
		B: uint8(int(c.B) * alpha / 255),
		A: 255,
	}
}

func encodeDisplayValue(c forest.Cell) uint8 {
	age := c.Age
	if age > displayAgeCap {
		age = displayAgeCap
	}
	if age < 0 {
		age = 0
	}
	return uint8(c.Type)&displayTypeMask | uint8(age)<<displayAgeShift
}

// rebuildDisplay lays the field out row by row so that display index
// y*side+x holds the cell at ToLinear(x, y).
func (w *World) rebuildDisplay() {
	s := w.field.Side()
	if w.display.W != s || w.display.H != s {
		w.display.Resize(s, s)
	}
	cells := w.display.Cells()
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			idx, err := w.field.ToLinear(x, y)
			if err != nil {
				continue
			}
			cells[w.display.Index(x, y)] = encodeDisplayValue(w.field[idx])
		}
	}
}

// InertMask marks cells that will never spread again.
func (w *World) InertMask() []float32 {
	return w.mask(func(c forest.Cell) float32 {
		if c.Propagation == 0 {
			return 1
		}
		return 0
	})
}

// HeatMask is 1 for a freshly lit flame and fades as the flame burns out.
func (w *World) HeatMask() []float32 {
	return w.mask(func(c forest.Cell) float32 {
		if c.Type != forest.Flame {
			return 0
		}
		v := 1 - float32(c.Age)/16
		if v < 0.1 {
			v = 0.1
		}
		return v
	})
}

func (w *World) mask(fn func(forest.Cell) float32) []float32 {
	s := w.field.Side()
	out := make([]float32, s*s)
	for y := 0; y < s; y++ {
		for x := 0; x < s; x++ {
			idx, err := w.field.ToLinear(x, y)
			if err != nil {
				continue
			}
			out[y*s+x] = fn(w.field[idx])
		}
	}
	return out
}

// Shares reports the fraction of the field held by each cell type.
func (w *World) Shares() []core.Share {
	shares := make([]core.Share, 0, len(forest.CellTypes))
	for _, t := range []forest.CellType{forest.Grass, forest.Tree, forest.Flame, forest.Empty} {
		c := typeColor(t)
		if t == forest.Empty {
			c = color.RGBA{R: 60, G: 60, B: 66, A: 255}
		}
		shares = append(shares, core.Share{
			Label:    t.String(),
			Fraction: w.census.Percent(t) / 100,
			Color:    c,
		})
	}
	return shares
}
