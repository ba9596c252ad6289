//go:build ebiten

package ui

import (
	"image/color"

	"forest-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type inertMaskProvider interface {
	InertMask() []float32
}

type heatMaskProvider interface {
	HeatMask() []float32
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim       core.Sim
	scale     int
	showInert bool
	showHeat  bool
	maskImg   *ebiten.Image
	maskBuf   []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay layers: 1 for inert cells, 2 for flame heat.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showInert = !o.showInert
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeat = !o.showHeat
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showInert && !o.showHeat {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	if total <= 0 {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		if o.maskImg != nil {
			o.maskImg.Deallocate()
		}
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	if provider, ok := o.sim.(inertMaskProvider); ok && o.showInert {
		o.drawMask(screen, provider.InertMask(), color.RGBA{R: 64, G: 164, B: 223})
	}
	if provider, ok := o.sim.(heatMaskProvider); ok && o.showHeat {
		o.drawMask(screen, provider.HeatMask(), color.RGBA{R: 255, G: 200, B: 40})
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	if 4*len(mask) != len(o.maskBuf) {
		return
	}
	fillMaskRGBA(o.maskBuf, mask, tint)
	o.maskImg.WritePixels(o.maskBuf)
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}
