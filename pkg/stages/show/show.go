// Package show implements the stage that prints container frames as text.
package show

import (
	"context"
	"fmt"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/container"
	"github.com/user/bwvid/pkg/pipeline"
	"github.com/user/bwvid/pkg/ports"
)

// Stage renders one or all frames of a container.
type Stage struct {
	fs       ports.FileSystem
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new show stage.
func NewStage(fs ports.FileSystem, renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		fs:       fs,
		renderer: renderer,
		logger:   logger.WithComponent("show"),
	}
}

// Execute renders the selected frames to input.Out. Frames are decoded one
// at a time; with a single index the earlier records are skipped unread.
func (s *Stage) Execute(ctx context.Context, input pipeline.ShowInput) (pipeline.ShowResult, error) {
	result := pipeline.ShowResult{}

	if input.Out == nil {
		return result, fmt.Errorf("no output writer")
	}

	f, err := s.fs.Open(input.ContainerPath)
	if err != nil {
		return result, fmt.Errorf("open container: %w", err)
	}
	defer f.Close()

	if input.Index != pipeline.AllFrames {
		img, err := container.At(f, input.Codec, input.Index)
		if err != nil {
			return result, err
		}
		if err := s.render(input, input.Index, img); err != nil {
			return result, err
		}
		result.Frames = 1
		return result, nil
	}

	index := 0
	for img, err := range container.Frames(f, input.Codec) {
		if err != nil {
			return result, err
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := s.render(input, index, img); err != nil {
			return result, err
		}
		index++
		result.Frames++
	}
	return result, nil
}

func (s *Stage) render(input pipeline.ShowInput, index int, img *bwimg.Image) error {
	s.logger.Debug("Rendering frame %d (%dx%d, %s)", index, img.Width, img.Height, input.Direction)
	if err := s.renderer.Render(input.Out, bwimg.Tokens(img, input.Direction)); err != nil {
		return fmt.Errorf("render frame %d: %w", index, err)
	}
	return nil
}

var _ pipeline.ShowStage = (*Stage)(nil)
