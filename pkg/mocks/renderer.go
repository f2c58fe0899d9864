package mocks

import (
	"fmt"
	"image"
	"io"
	"iter"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

// Exporter is a mock implementation of ports.Exporter.
type Exporter struct {
	RasterizeCalls  []int // scale per call
	EncodeImageFunc func(img image.Image, format ports.ImageFormat) ([]byte, error)
}

func (m *Exporter) Rasterize(img *bwimg.Image, scale int) image.Image {
	m.RasterizeCalls = append(m.RasterizeCalls, scale)
	return image.NewGray(image.Rect(0, 0, int(img.Width)*scale, int(img.Height)*scale))
}

func (m *Exporter) EncodeImage(img image.Image, format ports.ImageFormat) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

var _ ports.Exporter = (*Exporter)(nil)

// Renderer is a mock implementation of ports.Renderer. It writes '#' for
// white pixels, '.' for black and '\n' for line breaks.
type Renderer struct {
	RenderCalls int
	Err         error
}

func (m *Renderer) Render(w io.Writer, tokens iter.Seq[bwimg.Token]) error {
	m.RenderCalls++
	if m.Err != nil {
		return m.Err
	}
	for tok := range tokens {
		if tok.Kind == bwimg.TokenNewLine {
			fmt.Fprint(w, "\n")
			continue
		}
		for i := 0; i < int(tok.ValidBits); i++ {
			if tok.Packed&(0x80>>uint(i)) != 0 {
				fmt.Fprint(w, "#")
			} else {
				fmt.Fprint(w, ".")
			}
		}
	}
	return nil
}

var _ ports.Renderer = (*Renderer)(nil)
