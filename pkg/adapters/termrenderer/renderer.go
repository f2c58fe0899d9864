// Package termrenderer prints monochrome frames as text, two characters per
// pixel so cells come out roughly square.
package termrenderer

import (
	"bufio"
	"io"
	"iter"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

// Cell sets used for white and black pixels.
const (
	BlockWhite = "██"
	ASCIIWhite = "##"
	Blank      = "  "
)

// Renderer implements ports.Renderer.
type Renderer struct {
	white string
	black string
}

// New creates a renderer using full block characters.
func New() *Renderer {
	return NewWithCells(BlockWhite, Blank)
}

// NewWithCells creates a renderer with custom cells.
func NewWithCells(white, black string) *Renderer {
	return &Renderer{white: white, black: black}
}

// ForFile picks block characters when f is a terminal and plain ASCII
// otherwise, so redirected output stays readable in any encoding.
func ForFile(f *os.File) *Renderer {
	fd := f.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return New()
	}
	return NewWithCells(ASCIIWhite, Blank)
}

// Render writes one cell per valid bit of each byte token and a line break
// per NewLine token.
func (r *Renderer) Render(w io.Writer, tokens iter.Seq[bwimg.Token]) error {
	bw := bufio.NewWriter(w)
	for tok := range tokens {
		if tok.Kind == bwimg.TokenNewLine {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
			continue
		}
		for i := uint8(0); i < tok.ValidBits; i++ {
			cell := r.black
			if tok.Packed&(0x80>>i) != 0 {
				cell = r.white
			}
			if _, err := bw.WriteString(cell); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

var _ ports.Renderer = (*Renderer)(nil)
