//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"forest-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// HUD is the side panel: adjustable counts, a census bar and read-only values.
type HUD struct {
	sim    core.Sim
	width  int
	title  string
	status string
	face   font.Face

	rows    []controlRow
	managed map[string]bool
	setter  core.IntParameterSetter

	snapshot core.ParameterSnapshot
	shares   []core.Share
	offsetX  int

	canvas *ebiten.Image
	dot    *ebiten.Image
}

// NewHUD builds a panel of the given width for sim. A zero width disables it.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{
		sim:     sim,
		width:   max(width, 0),
		title:   titleFor(sim),
		face:    basicfont.Face7x13,
		managed: map[string]bool{},
	}
	if h.width > 0 {
		h.dot = ebiten.NewImage(1, 1)
		h.dot.Fill(color.White)
	}
	h.setter, _ = sim.(core.IntParameterSetter)
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range p.ParameterControls() {
			h.rows = append(h.rows, controlRow{control: ctrl, text: "--"})
			h.managed[ctrl.Key] = true
		}
		layoutRows(h.rows, h.width, rowsTop)
	}
	return h
}

// SetStatus sets the line under the title.
func (h *HUD) SetStatus(status string) {
	if h != nil {
		h.status = status
	}
}

// Update pulls fresh values from the simulation and handles clicks.
// offsetX is the panel's left edge in screen coordinates.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	h.snapshot = core.ParameterSnapshot{}
	if p, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = p.Parameters()
	}
	h.shares = nil
	if p, ok := h.sim.(core.ShareProvider); ok {
		h.shares = p.Shares()
	}
	// Count bounds move with the field size.
	if p, ok := h.sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range p.ParameterControls() {
			if i < len(h.rows) && h.rows[i].control.Key == ctrl.Key {
				h.rows[i].control = ctrl
			}
		}
	}
	for i := range h.rows {
		h.rows[i].sync(h.snapshot)
	}
	h.click()
}

func (h *HUD) click() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	idx, dir, ok := hitButton(h.rows, mx-h.offsetX, my)
	if !ok {
		return
	}
	row := &h.rows[idx]
	target, ok := adjustedValue(row.control, row.value, dir)
	if !ok || target == row.value {
		return
	}
	if h.setter.SetIntParameter(row.control.Key, target) {
		row.value = target
		row.text = fmt.Sprint(target)
	}
}

// Draw renders the panel at offsetX on screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.canvas == nil || h.canvas.Bounds().Dy() != height {
		if h.canvas != nil {
			h.canvas.Deallocate()
		}
		h.canvas = ebiten.NewImage(h.width, height)
	}
	h.canvas.Fill(panelTheme.background)

	text.Draw(h.canvas, h.title, h.face, panelPadding, panelPadding+titleBaseline, panelTheme.title)
	if h.status != "" {
		text.Draw(h.canvas, h.status, h.face, panelPadding, panelPadding+titleBaseline+statusSpacing, panelTheme.muted)
	}
	y := h.drawRows()
	y = h.drawShares(y)
	h.drawReadouts(y)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.canvas, op)
}

func (h *HUD) drawRows() int {
	if len(h.rows) == 0 {
		return rowsTop
	}
	for i := range h.rows {
		row := &h.rows[i]
		baseline := row.top + labelBaseline
		text.Draw(h.canvas, row.control.Label, h.face, panelPadding, baseline, panelTheme.text)
		fg := panelTheme.text
		if !row.valid {
			fg = panelTheme.muted
		}
		w := text.BoundString(h.face, row.text).Dx()
		text.Draw(h.canvas, row.text, h.face, row.minus.Min.X-buttonGap-w, baseline, fg)
		h.drawButton(row.minus, "-", row.canStep(-1))
		h.drawButton(row.plus, "+", row.canStep(1))
	}
	return h.rows[len(h.rows)-1].top + rowHeight
}

// drawShares paints the census as one stacked bar with a legend underneath.
func (h *HUD) drawShares(y int) int {
	if len(h.shares) == 0 {
		return y
	}
	y += barSpacing
	x := panelPadding
	for i, w := range segmentWidths(h.shares, h.width-2*panelPadding) {
		h.fill(image.Rect(x, y, x+w, y+barHeight), h.shares[i].Color)
		x += w
	}
	y += barHeight + readoutSpacing
	var legend []string
	for _, s := range h.shares {
		legend = append(legend, fmt.Sprintf("%.1s%.0f%%", s.Label, s.Fraction*100))
	}
	text.Draw(h.canvas, strings.Join(legend, " "), h.face, panelPadding, y, panelTheme.muted)
	return y
}

// drawReadouts lists the snapshot values that have no control, by group.
func (h *HUD) drawReadouts(y int) {
	limit := (h.width - 2*panelPadding) / glyphWidth
	for _, group := range h.snapshot.Groups {
		var params []core.Parameter
		for _, p := range group.Params {
			if !h.managed[p.Key] {
				params = append(params, p)
			}
		}
		if len(params) == 0 {
			continue
		}
		y += groupSpacing
		text.Draw(h.canvas, group.Name, h.face, panelPadding, y, panelTheme.heading)
		for _, p := range params {
			y += readoutSpacing
			value := truncate(p.Value, limit-len(p.Label)-1)
			text.Draw(h.canvas, p.Label, h.face, panelPadding, y, panelTheme.text)
			w := text.BoundString(h.face, value).Dx()
			text.Draw(h.canvas, value, h.face, h.width-panelPadding-w, y, panelTheme.title)
		}
	}
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := panelTheme.button, panelTheme.buttonText
	if !enabled {
		bg, fg = panelTheme.disabled, panelTheme.disabledFg
	}
	h.fill(r, bg)
	b := text.BoundString(h.face, label)
	text.Draw(h.canvas, label, h.face, r.Min.X+(r.Dx()-b.Dx())/2, r.Min.Y+(r.Dy()+b.Dy())/2, fg)
}

func (h *HUD) fill(r image.Rectangle, c color.RGBA) {
	if h.dot == nil || r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.canvas.DrawImage(h.dot, op)
}

func titleFor(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}
