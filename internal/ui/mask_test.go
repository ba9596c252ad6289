package ui

import (
	"image/color"
	"testing"
)

func TestFillMaskRGBA(t *testing.T) {
	buf := make([]byte, 12)
	for i := range buf {
		buf[i] = 9
	}
	tint := color.RGBA{R: 255, G: 120, B: 40}
	fillMaskRGBA(buf, []float32{0, 1, 2}, tint)

	for i := 0; i < 4; i++ {
		if buf[i] != 0 {
			t.Fatalf("zero intensity should be transparent, got %v", buf[:4])
		}
	}
	if buf[7] != 140 {
		t.Fatalf("full intensity alpha = %d, want 140", buf[7])
	}
	for c := 4; c < 7; c++ {
		if buf[c] > buf[7] {
			t.Fatalf("channel %d = %d exceeds alpha %d; pixels must be premultiplied", c, buf[c], buf[7])
		}
	}
	for c := 4; c < 8; c++ {
		if buf[c] != buf[c+4] {
			t.Fatalf("intensity above 1 should clamp, got %v", buf[4:])
		}
	}
}
