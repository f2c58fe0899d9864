// Package bwimg implements 1-bit monochrome frames: quantization from RGB,
// the binary frame record, and scan-order iteration for rendering.
//
// Rows are packed independently. A row of width w occupies ceil(w/8) bytes,
// most significant bit first, and the unused low bits of the last byte are zero.
package bwimg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// Image is a packed monochrome frame. A set bit is a white pixel.
// Images are not modified after construction; share them freely for reading.
type Image struct {
	Width  uint32
	Height uint32
	Data   []byte
}

// RowBytes returns the number of bytes one packed row of the given width occupies.
func RowBytes(width uint32) int {
	return int((uint64(width) + 7) / 8)
}

// DataSize returns the packed data length of a width x height frame.
func DataSize(width, height uint32) uint64 {
	return uint64(height) * ((uint64(width) + 7) / 8)
}

// New allocates an all-black image.
func New(width, height uint32) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Data:   make([]byte, DataSize(width, height)),
	}
}

// Validate checks the packed size invariant.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	if want := DataSize(img.Width, img.Height); uint64(len(img.Data)) != want {
		return fmt.Errorf("%w: %dx%d needs %d data bytes, has %d",
			ErrInvalidImage, img.Width, img.Height, want, len(img.Data))
	}
	return nil
}

// White reports whether the pixel at (x, y) is white.
func (img *Image) White(x, y int) bool {
	idx := y*RowBytes(img.Width) + x/8
	return img.Data[idx]&(0x80>>uint(x%8)) != 0
}

// Equal reports whether both images have the same dimensions and data.
func (img *Image) Equal(other *Image) bool {
	if img == nil || other == nil {
		return img == other
	}
	return img.Width == other.Width &&
		img.Height == other.Height &&
		bytes.Equal(img.Data, other.Data)
}

// WhiteCount returns the number of white pixels, ignoring row padding.
func (img *Image) WhiteCount() int {
	n := 0
	for y := 0; y < int(img.Height); y++ {
		for x := 0; x < int(img.Width); x++ {
			if img.White(x, y) {
				n++
			}
		}
	}
	return n
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(img.Width), int(img.Height))
}

// At implements image.Image.
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.Gray{}
	}
	if img.White(x, y) {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{}
}

var _ image.Image = (*Image)(nil)
