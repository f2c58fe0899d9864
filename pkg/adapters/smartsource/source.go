// Package smartsource picks the frame source for an input: still images are
// decoded in-process, everything else goes through ffmpeg.
package smartsource

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/user/bwvid/pkg/adapters/ffmpegsource"
	"github.com/user/bwvid/pkg/adapters/imagesource"
	"github.com/user/bwvid/pkg/ports"
)

// imageExtensions lists the formats imagesource can decode.
var imageExtensions = mapset.NewSet(
	".png", ".jpg", ".jpeg", ".gif",
	".bmp", ".tif", ".tiff", ".webp",
)

// Options configures the smart source behavior.
type Options struct {
	// Kind forces the input kind. Empty selects by file extension.
	Kind ports.InputKind
	// FFmpegPath is an optional custom path to the ffmpeg binary.
	FFmpegPath string
}

// Source dispatches to an image or a video frame source.
type Source struct {
	image ports.FrameSource
	video ports.FrameSource
	kind  ports.InputKind
}

// New creates a source backed by imagesource and ffmpegsource.
func New(fs ports.FileSystem, opts Options, logger ports.Logger) *Source {
	return NewWith(
		imagesource.New(fs, logger),
		ffmpegsource.New(ffmpegsource.Options{FFmpegPath: opts.FFmpegPath}, logger),
		opts.Kind,
	)
}

// NewWith creates a source from explicit backends.
func NewWith(image, video ports.FrameSource, kind ports.InputKind) *Source {
	return &Source{image: image, video: video, kind: kind}
}

// ParseKind parses "auto", "image" or "video". "auto" and "" give the
// empty kind.
func ParseKind(s string) (ports.InputKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return "", nil
	case "image":
		return ports.InputImage, nil
	case "video":
		return ports.InputVideo, nil
	}
	return "", fmt.Errorf("unknown input kind %q (want auto, image or video)", s)
}

// DetectKind classifies path by extension.
func DetectKind(path string) ports.InputKind {
	if imageExtensions.Contains(strings.ToLower(filepath.Ext(path))) {
		return ports.InputImage
	}
	return ports.InputVideo
}

// Select returns the backend for path.
func (s *Source) Select(path string) ports.FrameSource {
	kind := s.kind
	if kind == "" {
		kind = DetectKind(path)
	}
	if kind == ports.InputImage {
		return s.image
	}
	return s.video
}

// Probe implements ports.FrameSource.
func (s *Source) Probe(ctx context.Context, path string) (ports.SourceInfo, error) {
	return s.Select(path).Probe(ctx, path)
}

// Frames implements ports.FrameSource.
func (s *Source) Frames(ctx context.Context, path string, size ports.Size) iter.Seq2[ports.RGBFrame, error] {
	return s.Select(path).Frames(ctx, path, size)
}

var _ ports.FrameSource = (*Source)(nil)

// ImageExtensions returns the recognised still-image extensions, sorted.
func ImageExtensions() []string {
	exts := imageExtensions.ToSlice()
	slices.Sort(exts)
	return exts
}
