package pipeline

import (
	"io"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/compression"
	"github.com/user/bwvid/pkg/ports"
)

// =============================================================================
// Convert Stage Types
// =============================================================================

// FrameWriter receives converted frames in order.
type FrameWriter interface {
	WriteFrame(img *bwimg.Image) error
	Count() int
}

// ConvertInput contains parameters for converting a source into frames.
type ConvertInput struct {
	SourcePath string
	Info       *ports.SourceInfo // probe result; probed by the stage when nil
	Size       ports.Size        // zero dimensions keep the natural size
	Frames     FrameWriter       // destination, typically a container.Writer
}

// ConvertResult summarizes a conversion.
type ConvertResult struct {
	Info      ports.SourceInfo
	Output    ports.Size // resolution frames were requested at
	Processed int        // frames converted and written
	Skipped   int        // frames dropped for a wrong buffer size
}

// =============================================================================
// Show Stage Types
// =============================================================================

// AllFrames selects every frame of a container.
const AllFrames = -1

// ShowInput contains parameters for printing frames to a terminal.
type ShowInput struct {
	ContainerPath string
	Codec         compression.Codec
	Index         int // AllFrames or a zero-based frame index
	Direction     bwimg.Direction
	Out           io.Writer
}

// ShowResult reports what was rendered.
type ShowResult struct {
	Frames int
}

// =============================================================================
// Export Stage Types
// =============================================================================

// ExportInput contains parameters for writing one frame as a raster image.
type ExportInput struct {
	ContainerPath string
	Codec         compression.Codec
	Index         int
	Scale         int
	Format        ports.ImageFormat
	OutputPath    string
}

// DefaultExportInput returns ExportInput with default values.
func DefaultExportInput() ExportInput {
	return ExportInput{
		Scale:  1,
		Format: ports.FormatPNG,
	}
}

// ExportResult describes the written image.
type ExportResult struct {
	Width    int
	Height   int
	FileSize int64
}

// =============================================================================
// Inspect Stage Types
// =============================================================================

// InspectInput contains parameters for listing container frames.
type InspectInput struct {
	ContainerPath string
	Codec         compression.Codec
}

// FrameInfo describes one frame of a container.
type FrameInfo struct {
	Index       int    `json:"index" csv:"index"`
	Width       uint32 `json:"width" csv:"width"`
	Height      uint32 `json:"height" csv:"height"`
	DataBytes   int    `json:"dataBytes" csv:"data_bytes"`
	WhitePixels int    `json:"whitePixels" csv:"white_pixels"`
}

// InspectResult lists the frames of a container.
type InspectResult struct {
	Path        string           `json:"path"`
	Compression compression.Kind `json:"compression"`
	FileSize    int64            `json:"fileSize"`
	Frames      []FrameInfo      `json:"frames"`
}

// Pixels returns the total number of pixels over all frames.
func (r InspectResult) Pixels() int64 {
	var n int64
	for _, f := range r.Frames {
		n += int64(f.Width) * int64(f.Height)
	}
	return n
}
