// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new null sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool { return false }

func (s *Sink) SaveSourceInfo(data []byte) error                 { return nil }
func (s *Sink) SaveSourceFrame(index int, img image.Image) error { return nil }
func (s *Sink) SaveFrame(index int, img *bwimg.Image) error      { return nil }

var _ ports.DebugSink = (*Sink)(nil)
