package bwimg

import (
	"image"
	"image/draw"
)

// Threshold is the luma value a pixel must exceed to be white.
const Threshold = 128

// RGBData is a borrowed view of tightly packed RGB24 pixels in row-major order.
type RGBData struct {
	Pix    []byte
	Width  uint32
	Height uint32
}

// NewRGBData wraps pix without copying.
func NewRGBData(pix []byte, width, height uint32) RGBData {
	return RGBData{Pix: pix, Width: width, Height: height}
}

// ExpectedLen is the buffer length the dimensions call for.
func (d RGBData) ExpectedLen() int {
	return int(uint64(d.Width) * uint64(d.Height) * 3)
}

// ToRGBA copies the pixels into an opaque image.RGBA. It returns nil when
// the buffer does not match the dimensions.
func (d RGBData) ToRGBA() *image.RGBA {
	if len(d.Pix) != d.ExpectedLen() {
		return nil
	}
	w, h := int(d.Width), int(d.Height)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		dst.Pix[i*4] = d.Pix[i*3]
		dst.Pix[i*4+1] = d.Pix[i*3+1]
		dst.Pix[i*4+2] = d.Pix[i*3+2]
		dst.Pix[i*4+3] = 0xff
	}
	return dst
}

// RGBFromImage copies any image into a tightly packed RGB24 buffer.
// Alpha is dropped after compositing over black.
func RGBFromImage(src image.Image) RGBData {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}

	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		out := pix[y*w*3 : (y+1)*w*3]
		for x := 0; x < w; x++ {
			out[x*3] = row[x*4]
			out[x*3+1] = row[x*4+1]
			out[x*3+2] = row[x*4+2]
		}
	}
	return RGBData{Pix: pix, Width: uint32(w), Height: uint32(h)}
}

// Luma returns 0.299R + 0.587G + 0.114B truncated to an integer.
func Luma(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}

// Convert quantizes rgb into a monochrome image. A buffer whose length does not
// match its dimensions yields a *WrongSizeError and no image.
func Convert(rgb RGBData) (*Image, error) {
	if want := rgb.ExpectedLen(); len(rgb.Pix) != want {
		return nil, &WrongSizeError{
			Width:    rgb.Width,
			Height:   rgb.Height,
			Expected: want,
			Actual:   len(rgb.Pix),
		}
	}

	img := New(rgb.Width, rgb.Height)
	stride := RowBytes(rgb.Width)
	w := int(rgb.Width)

	for y := 0; y < int(rgb.Height); y++ {
		src := rgb.Pix[y*w*3 : (y+1)*w*3]
		dst := img.Data[y*stride : (y+1)*stride]
		for x := 0; x < w; x++ {
			if Luma(src[x*3], src[x*3+1], src[x*3+2]) > Threshold {
				dst[x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return img, nil
}
