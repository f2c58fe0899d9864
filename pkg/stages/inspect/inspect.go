// Package inspect implements the stage that lists the frames of a container.
package inspect

import (
	"context"
	"fmt"

	"github.com/user/bwvid/pkg/container"
	"github.com/user/bwvid/pkg/pipeline"
	"github.com/user/bwvid/pkg/ports"
)

// Stage decodes a container frame by frame and records per-frame statistics.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new inspect stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("inspect"),
	}
}

// Execute lists every frame in input.ContainerPath.
func (s *Stage) Execute(ctx context.Context, input pipeline.InspectInput) (pipeline.InspectResult, error) {
	result := pipeline.InspectResult{
		Path:        input.ContainerPath,
		Compression: input.Codec.Kind(),
		Frames:      []pipeline.FrameInfo{},
	}

	size, err := s.fs.Size(input.ContainerPath)
	if err != nil {
		return result, fmt.Errorf("stat container: %w", err)
	}
	result.FileSize = size

	f, err := s.fs.Open(input.ContainerPath)
	if err != nil {
		return result, fmt.Errorf("open container: %w", err)
	}
	defer f.Close()

	index := 0
	for img, err := range container.Frames(f, input.Codec) {
		if err != nil {
			return result, err
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Frames = append(result.Frames, pipeline.FrameInfo{
			Index:       index,
			Width:       img.Width,
			Height:      img.Height,
			DataBytes:   len(img.Data),
			WhitePixels: img.WhiteCount(),
		})
		index++
	}

	s.logger.Debug("Inspected %d frames", len(result.Frames))
	return result, nil
}

var _ pipeline.InspectStage = (*Stage)(nil)
