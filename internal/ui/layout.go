package ui

import (
	"image"
	"image/color"
	"strconv"

	"forest-ca/internal/core"
)

const (
	panelPadding   = 12
	rowHeight      = 36
	buttonSize     = 24
	buttonGap      = 6
	titleBaseline  = 18
	statusSpacing  = 16
	labelBaseline  = 24
	barHeight      = 10
	barSpacing     = 12
	groupSpacing   = 22
	readoutSpacing = 16
	glyphWidth     = 7
	rowsTop        = panelPadding + titleBaseline + statusSpacing + 10
)

type theme struct {
	background color.RGBA
	title      color.RGBA
	muted      color.RGBA
	text       color.RGBA
	heading    color.RGBA
	button     color.RGBA
	buttonText color.RGBA
	disabled   color.RGBA
	disabledFg color.RGBA
}

var panelTheme = theme{
	background: color.RGBA{R: 14, G: 18, B: 16, A: 255},
	title:      color.RGBA{R: 200, G: 220, B: 205, A: 255},
	muted:      color.RGBA{R: 150, G: 160, B: 155, A: 255},
	text:       color.RGBA{R: 220, G: 228, B: 222, A: 255},
	heading:    color.RGBA{R: 110, G: 130, B: 118, A: 255},
	button:     color.RGBA{R: 48, G: 62, B: 54, A: 255},
	buttonText: color.RGBA{R: 230, G: 240, B: 232, A: 255},
	disabled:   color.RGBA{R: 28, G: 34, B: 30, A: 255},
	disabledFg: color.RGBA{R: 110, G: 120, B: 114, A: 255},
}

// controlRow is one adjustable parameter line with its -/+ buttons.
type controlRow struct {
	control core.ParameterControl
	text    string
	value   int
	valid   bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// sync reads the row's current value from snapshot.
func (r *controlRow) sync(snapshot core.ParameterSnapshot) {
	r.valid = false
	r.text = "--"
	param, ok := snapshot.Lookup(r.control.Key)
	if !ok {
		return
	}
	v, err := strconv.Atoi(param.Value)
	if err != nil {
		return
	}
	r.value = v
	r.text = strconv.Itoa(v)
	r.valid = true
}

// canStep reports whether one step in direction would change the value.
func (r *controlRow) canStep(direction int) bool {
	if !r.valid || direction == 0 {
		return false
	}
	target, ok := adjustedValue(r.control, r.value, direction)
	return ok && target != r.value
}

// layoutRows stacks rows from top, right-aligning the buttons to width.
func layoutRows(rows []controlRow, width, top int) {
	for i := range rows {
		rowTop := top + i*rowHeight
		y := rowTop + (rowHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, y, width-panelPadding, y+buttonSize)
		rows[i].top = rowTop
		rows[i].plus = plus
		rows[i].minus = image.Rect(plus.Min.X-buttonGap-buttonSize, y, plus.Min.X-buttonGap, y+buttonSize)
	}
}

// hitButton finds the button under (x, y) in panel coordinates and returns the
// row index and step direction.
func hitButton(rows []controlRow, x, y int) (int, int, bool) {
	pt := image.Pt(x, y)
	for i := range rows {
		if !rows[i].valid {
			continue
		}
		if pt.In(rows[i].minus) {
			return i, -1, true
		}
		if pt.In(rows[i].plus) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

// segmentWidths splits width pixels across shares so the segments always sum
// to width when any share is positive. Leftover pixels go to the largest
// remainders.
func segmentWidths(shares []core.Share, width int) []int {
	out := make([]int, len(shares))
	var total float64
	for _, s := range shares {
		if s.Fraction > 0 {
			total += s.Fraction
		}
	}
	if total == 0 || width <= 0 {
		return out
	}
	rem := make([]float64, len(shares))
	used := 0
	for i, s := range shares {
		if s.Fraction <= 0 {
			continue
		}
		exact := s.Fraction / total * float64(width)
		out[i] = int(exact)
		rem[i] = exact - float64(out[i])
		used += out[i]
	}
	for ; used < width; used++ {
		best := -1
		for i := range rem {
			if shares[i].Fraction > 0 && (best < 0 || rem[i] > rem[best]) {
				best = i
			}
		}
		out[best]++
		rem[best] = -1
	}
	return out
}

// truncate shortens value to at most limit glyphs, marking the cut with "...".
func truncate(value string, limit int) string {
	if limit <= 3 || len(value) <= limit {
		return value
	}
	return value[:limit-3] + "..."
}
