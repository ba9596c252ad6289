package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	want := []byte{1, 0, 0, 255, 0, 2, 0, 255, 0, 2, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}

	fillPaletteRGBA(buf, []uint8{0, 1, 1}, nil)
	if !slices.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette should clear, got %v", buf)
	}
}

func TestPaletteImageScales(t *testing.T) {
	palette := []color.RGBA{{A: 255}, {R: 200, A: 255}}
	img := PaletteImage([]uint8{0, 1, 1, 0}, 2, 2, 3, palette)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(4, 1); got != palette[1] {
		t.Fatalf("pixel (4,1) = %+v, want %+v", got, palette[1])
	}
	if got := img.RGBAAt(1, 1); got != palette[0] {
		t.Fatalf("pixel (1,1) = %+v, want %+v", got, palette[0])
	}
	if got := img.RGBAAt(2, 5); got != palette[1] {
		t.Fatalf("pixel (2,5) = %+v, want %+v", got, palette[1])
	}
}
