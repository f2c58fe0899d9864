package ports

import (
	"context"
	"iter"
	"time"

	"github.com/user/bwvid/pkg/bwimg"
)

// InputKind selects how an input file is read.
type InputKind string

const (
	InputImage InputKind = "image"
	InputVideo InputKind = "video"
)

// Size is a requested output resolution. A zero dimension keeps the source's
// natural value for that dimension.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether neither dimension is requested.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Resolve fills unset dimensions from the natural size.
func (s Size) Resolve(naturalWidth, naturalHeight int) Size {
	out := s
	if out.Width == 0 {
		out.Width = naturalWidth
	}
	if out.Height == 0 {
		out.Height = naturalHeight
	}
	return out
}

// SourceInfo describes an input before any frame is read. Unknown values are zero.
type SourceInfo struct {
	Path       string
	Kind       InputKind
	Format     string // container or image format, e.g. "mp4", "png"
	Codec      string // video codec when known, e.g. "h264"
	Width      int
	Height     int
	FrameCount int
	Duration   time.Duration
	FrameRate  float64
}

// RGBFrame is one frame delivered by a FrameSource. The pixel buffer is
// expected to hold Width*Height*3 bytes; a short final frame may hold fewer.
type RGBFrame struct {
	Index int
	RGB   bwimg.RGBData
}

// FrameSource produces RGB24 frames from an input file.
type FrameSource interface {
	// Probe inspects the input without decoding frames.
	Probe(ctx context.Context, path string) (SourceInfo, error)

	// Frames decodes the input at the requested size. Iteration stops at the
	// first error, which is yielded with a zero frame.
	Frames(ctx context.Context, path string, size Size) iter.Seq2[RGBFrame, error]
}
