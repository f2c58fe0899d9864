package ports

import (
	"image"

	"github.com/user/bwvid/pkg/bwimg"
)

// DebugSink receives intermediate results of a conversion for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveSourceInfo saves the probe result as JSON.
	SaveSourceInfo(data []byte) error

	// SaveSourceFrame saves a decoded RGB frame before quantization.
	SaveSourceFrame(index int, img image.Image) error

	// SaveFrame saves a quantized frame.
	SaveFrame(index int, img *bwimg.Image) error
}
