package bwvid

import (
	"context"
	"fmt"
	"iter"
	"os"

	"github.com/user/bwvid/pkg/adapters/logger"
	"github.com/user/bwvid/pkg/adapters/nullsink"
	"github.com/user/bwvid/pkg/adapters/osfilesystem"
	"github.com/user/bwvid/pkg/adapters/smartsource"
	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/compression"
	"github.com/user/bwvid/pkg/container"
	"github.com/user/bwvid/pkg/orchestrator"
	"github.com/user/bwvid/pkg/ports"
	"github.com/user/bwvid/pkg/stages/convert"
)

// ConvertFile converts inputPath into a container at outputPath. A nil log
// discards messages.
func ConvertFile(ctx context.Context, inputPath, outputPath string, cfg Config, log ports.Logger) (orchestrator.RunResult, error) {
	if log == nil {
		log = logger.NewNoop()
	}

	fs := osfilesystem.New()
	source := smartsource.New(fs, smartsource.Options{
		Kind:       cfg.InputKind,
		FFmpegPath: cfg.FFmpegPath,
	}, log)
	stage := convert.NewStage(source, nullsink.New(), ports.NoProgress, log)

	orch := orchestrator.New(source, stage, fs, log)
	return orch.Run(ctx, cfg.ToOrchestratorConfig(inputPath, outputPath))
}

// ReadFrames streams the frames of the container at path. The file is
// closed when iteration ends.
func ReadFrames(path string, kind compression.Kind) iter.Seq2[*bwimg.Image, error] {
	return func(yield func(*bwimg.Image, error) bool) {
		codec, err := compression.New(kind, compression.DefaultLevel)
		if err != nil {
			yield(nil, err)
			return
		}
		f, err := os.Open(path)
		if err != nil {
			yield(nil, fmt.Errorf("open container: %w", err))
			return
		}
		defer f.Close()

		for img, err := range container.Frames(f, codec) {
			if !yield(img, err) {
				return
			}
		}
	}
}

// ReadFrame returns frame index of the container at path.
func ReadFrame(path string, kind compression.Kind, index int) (*bwimg.Image, error) {
	codec, err := compression.New(kind, compression.DefaultLevel)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open container: %w", err)
	}
	defer f.Close()

	return container.At(f, codec, index)
}
