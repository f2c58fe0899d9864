// Package export implements the stage that writes a container frame as a
// raster image file.
package export

import (
	"context"
	"fmt"

	"github.com/user/bwvid/pkg/container"
	"github.com/user/bwvid/pkg/pipeline"
	"github.com/user/bwvid/pkg/ports"
)

// Stage rasterizes one frame and writes it through the file system.
type Stage struct {
	fs       ports.FileSystem
	exporter ports.Exporter
	logger   ports.Logger
}

// NewStage creates a new export stage.
func NewStage(fs ports.FileSystem, exporter ports.Exporter, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		exporter: exporter,
		logger:   logger.WithComponent("export"),
	}
}

// Execute exports frame input.Index to input.OutputPath.
func (s *Stage) Execute(ctx context.Context, input pipeline.ExportInput) (pipeline.ExportResult, error) {
	result := pipeline.ExportResult{}

	if input.OutputPath == "" {
		return result, fmt.Errorf("no output path")
	}
	scale := input.Scale
	if scale < 1 {
		scale = 1
	}

	f, err := s.fs.Open(input.ContainerPath)
	if err != nil {
		return result, fmt.Errorf("open container: %w", err)
	}
	img, err := container.At(f, input.Codec, input.Index)
	f.Close()
	if err != nil {
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	raster := s.exporter.Rasterize(img, scale)
	data, err := s.exporter.EncodeImage(raster, input.Format)
	if err != nil {
		return result, fmt.Errorf("encode image: %w", err)
	}
	if err := s.fs.WriteFile(input.OutputPath, data); err != nil {
		return result, fmt.Errorf("write image: %w", err)
	}
	s.logger.Debug("Exported frame %d to %s (%d bytes)", input.Index, input.OutputPath, len(data))

	b := raster.Bounds()
	result.Width = b.Dx()
	result.Height = b.Dy()
	result.FileSize = int64(len(data))
	return result, nil
}

var _ pipeline.ExportStage = (*Stage)(nil)
