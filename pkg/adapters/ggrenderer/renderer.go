// Package ggrenderer rasterizes monochrome frames with the gg library and
// encodes them as ordinary images.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

// jpegQuality is used for debug output only; exports are PNG.
const jpegQuality = 90

// Renderer implements ports.Exporter using the gg library.
type Renderer struct {
	white color.Color
	black color.Color
}

// New creates a Renderer drawing pure white on pure black.
func New() *Renderer {
	return &Renderer{white: color.White, black: color.Black}
}

// NewWithColors creates a Renderer with custom colors for set and unset pixels.
func NewWithColors(white, black color.Color) *Renderer {
	return &Renderer{white: white, black: black}
}

// Rasterize draws img with each pixel as a scale x scale square. Runs of
// white pixels in a row are drawn as one rectangle.
func (r *Renderer) Rasterize(img *bwimg.Image, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	w, h := int(img.Width), int(img.Height)
	if w == 0 || h == 0 {
		return image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	}

	dc := gg.NewContext(w*scale, h*scale)
	dc.SetColor(r.black)
	dc.Clear()

	s := float64(scale)
	for y := 0; y < h; y++ {
		x := 0
		for x < w {
			if !img.White(x, y) {
				x++
				continue
			}
			start := x
			for x < w && img.White(x, y) {
				x++
			}
			dc.DrawRectangle(float64(start)*s, float64(y)*s, float64(x-start)*s, s)
		}
	}
	dc.SetColor(r.white)
	dc.Fill()

	return dc.Image()
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatJPEG:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

var _ ports.Exporter = (*Renderer)(nil)
