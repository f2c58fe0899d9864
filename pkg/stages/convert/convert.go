// Package convert implements the frame conversion stage.
package convert

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-json"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/pipeline"
	"github.com/user/bwvid/pkg/ports"
)

// Stage quantizes every frame of a source and hands it to a FrameWriter.
type Stage struct {
	source   ports.FrameSource
	sink     ports.DebugSink
	progress ports.ProgressObserver
	logger   ports.Logger
}

// NewStage creates a new convert stage.
func NewStage(source ports.FrameSource, sink ports.DebugSink, progress ports.ProgressObserver, logger ports.Logger) *Stage {
	if progress == nil {
		progress = ports.NoProgress
	}
	return &Stage{
		source:   source,
		sink:     sink,
		progress: progress,
		logger:   logger.WithComponent("convert"),
	}
}

// Execute converts all frames of input.SourcePath. Frames whose buffer does
// not match their dimensions are skipped and counted; any other failure stops
// the stage.
func (s *Stage) Execute(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error) {
	result := pipeline.ConvertResult{}

	if input.Frames == nil {
		return result, fmt.Errorf("no frame writer")
	}

	var info ports.SourceInfo
	if input.Info != nil {
		info = *input.Info
	} else {
		s.logger.Debug("Probing %s", input.SourcePath)
		probed, err := s.source.Probe(ctx, input.SourcePath)
		if err != nil {
			return result, fmt.Errorf("probe source: %w", err)
		}
		info = probed
	}
	result.Info = info
	result.Output = input.Size.Resolve(info.Width, info.Height)

	if s.sink.Enabled() {
		if data, err := json.MarshalIndent(info, "", "  "); err == nil {
			if err := s.sink.SaveSourceInfo(data); err != nil {
				s.logger.Warn("Failed to save debug info: %s", err)
			}
		}
	}

	ev := ports.ProgressEvent{Total: EstimateTotal(info)}
	if ev.Total == 0 {
		s.logger.Debug("Unknown frame count, progress total is an estimate")
	}
	defer func() { s.progress.Finish(ev) }()

	for frame, err := range s.source.Frames(ctx, input.SourcePath, result.Output) {
		if err != nil {
			return result, fmt.Errorf("read frame %d: %w", ev.Done(), err)
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		img, err := bwimg.Convert(frame.RGB)
		if errors.Is(err, bwimg.ErrWrongSize) {
			s.logger.Warn("Frame %d skipped: %s", frame.Index, err)
			result.Skipped++
			ev.Skipped++
			s.progress.Frame(ev)
			continue
		}
		if err != nil {
			return result, fmt.Errorf("convert frame %d: %w", frame.Index, err)
		}

		s.saveDebug(frame, img)

		if err := input.Frames.WriteFrame(img); err != nil {
			return result, fmt.Errorf("write frame %d: %w", frame.Index, err)
		}
		s.logger.Debug("Frame %d: converted %dx%d", frame.Index, img.Width, img.Height)

		result.Processed++
		ev.Processed++
		s.progress.Frame(ev)
	}

	return result, nil
}

func (s *Stage) saveDebug(frame ports.RGBFrame, img *bwimg.Image) {
	if !s.sink.Enabled() {
		return
	}
	if rgba := frame.RGB.ToRGBA(); rgba != nil {
		if err := s.sink.SaveSourceFrame(frame.Index, rgba); err != nil {
			s.logger.Warn("Failed to save debug frame %d: %s", frame.Index, err)
		}
	}
	if err := s.sink.SaveFrame(frame.Index, img); err != nil {
		s.logger.Warn("Failed to save debug frame %d: %s", frame.Index, err)
	}
}

// EstimateTotal returns the expected number of frames: the probed count when
// known, otherwise duration times frame rate rounded, otherwise zero.
func EstimateTotal(info ports.SourceInfo) int {
	if info.FrameCount > 0 {
		return info.FrameCount
	}
	if info.Duration > 0 && info.FrameRate > 0 {
		return int(math.Round(info.Duration.Seconds() * info.FrameRate))
	}
	return 0
}

var _ pipeline.ConvertStage = (*Stage)(nil)
