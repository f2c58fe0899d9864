// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

// Sink saves debug output under a base directory:
//
//	source.json
//	frames/source/frame-0000.png
//	frames/mono/frame-0000.png
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	exporter ports.Exporter
}

// New creates a new file sink.
func New(baseDir string, fs ports.FileSystem, exporter ports.Exporter) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		exporter: exporter,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveSourceInfo saves the probe result as JSON.
func (s *Sink) SaveSourceInfo(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "source.json"), data)
}

// SaveSourceFrame saves a decoded frame as PNG.
func (s *Sink) SaveSourceFrame(index int, img image.Image) error {
	return s.savePNG("source", index, img)
}

// SaveFrame saves a quantized frame as PNG at its natural size.
func (s *Sink) SaveFrame(index int, img *bwimg.Image) error {
	return s.savePNG("mono", index, s.exporter.Rasterize(img, 1))
}

func (s *Sink) savePNG(kind string, index int, img image.Image) error {
	dir := filepath.Join(s.baseDir, "frames", kind)
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	data, err := s.exporter.EncodeImage(img, ports.FormatPNG)
	if err != nil {
		return fmt.Errorf("encode %s frame %d: %w", kind, index, err)
	}
	return s.fs.WriteFile(filepath.Join(dir, fmt.Sprintf("frame-%04d.png", index)), data)
}

var _ ports.DebugSink = (*Sink)(nil)
