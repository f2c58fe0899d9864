package ggrenderer

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

func isWhite(t *testing.T, r, g, b uint32) bool {
	t.Helper()
	switch {
	case r == 0xffff && g == 0xffff && b == 0xffff:
		return true
	case r == 0 && g == 0 && b == 0:
		return false
	default:
		t.Fatalf("expected a pure black or white pixel, got %d,%d,%d", r, g, b)
		return false
	}
}

func TestRenderer_Rasterize(t *testing.T) {
	r := New()

	// 3x2: row 0 white,black,white; row 1 black,white,white
	img := &bwimg.Image{Width: 3, Height: 2, Data: []byte{0xA0, 0x60}}
	out := r.Rasterize(img, 4)

	bounds := out.Bounds()
	if bounds.Dx() != 12 || bounds.Dy() != 8 {
		t.Fatalf("expected 12x8, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	tests := []struct {
		x, y  int
		white bool
	}{
		{1, 1, true},
		{5, 2, false},
		{10, 3, true},
		{2, 6, false},
		{6, 5, true},
		{11, 7, true},
	}
	for _, tt := range tests {
		cr, cg, cb, _ := out.At(tt.x, tt.y).RGBA()
		if got := isWhite(t, cr, cg, cb); got != tt.white {
			t.Errorf("pixel (%d,%d): expected white=%v", tt.x, tt.y, tt.white)
		}
	}
}

func TestRenderer_RasterizeScaleFloor(t *testing.T) {
	r := New()
	out := r.Rasterize(bwimg.New(5, 4), 0)
	if out.Bounds().Dx() != 5 || out.Bounds().Dy() != 4 {
		t.Errorf("expected scale to clamp to 1, got %v", out.Bounds())
	}
}

func TestRenderer_RasterizeEmpty(t *testing.T) {
	out := New().Rasterize(bwimg.New(0, 0), 3)
	if !out.Bounds().Empty() {
		t.Errorf("expected empty bounds, got %v", out.Bounds())
	}
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()
	img := &bwimg.Image{Width: 8, Height: 1, Data: []byte{0xF0}}

	data, err := r.EncodeImage(r.Rasterize(img, 2), ports.FormatPNG)
	if err != nil {
		t.Fatalf("EncodeImage failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 2 {
		t.Errorf("expected 16x2, got %v", decoded.Bounds())
	}
}

func TestRenderer_EncodeUnsupported(t *testing.T) {
	if _, err := New().EncodeImage(bwimg.New(1, 1), ports.ImageFormat(99)); err == nil {
		t.Error("expected error for unknown format")
	}
}
