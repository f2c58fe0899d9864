package ports

import (
	"image"
	"io"
	"iter"

	"github.com/user/bwvid/pkg/bwimg"
)

// Renderer draws a scan of a monochrome frame as text. Every pixel of a
// byte token becomes one cell; a NewLine token ends the current line.
type Renderer interface {
	Render(w io.Writer, tokens iter.Seq[bwimg.Token]) error
}

// Exporter turns monochrome frames into ordinary raster images.
type Exporter interface {
	// Rasterize draws img with every pixel enlarged to a scale x scale square.
	Rasterize(img *bwimg.Image, scale int) image.Image

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat) ([]byte, error)
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)
