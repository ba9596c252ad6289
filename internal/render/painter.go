//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from palette-indexed cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads the provided cells into the painter image and draws it. The
// painter follows size changes of the simulation.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, w, h int, palette []color.RGBA, scale int) {
	if w != gp.w || h != gp.h {
		gp.resize(w, h)
	}
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

