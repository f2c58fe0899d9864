// Package orchestrator coordinates a conversion from a source file to a
// frame container.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/user/bwvid/pkg/compression"
	"github.com/user/bwvid/pkg/container"
	"github.com/user/bwvid/pkg/pipeline"
	"github.com/user/bwvid/pkg/ports"
)

// ErrNoFrames is returned when the probe reports a video without frames.
var ErrNoFrames = errors.New("orchestrator: no frames")

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	InputPath  string
	OutputPath string

	// Output resolution; zero keeps the natural value
	Width  int
	Height int

	// Container
	Compression      compression.Kind
	CompressionLevel int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Compression:      compression.None,
		CompressionLevel: compression.DefaultLevel,
	}
}

// Orchestrator probes the source, then runs the convert stage into a
// container that is always finished, even when conversion fails.
type Orchestrator struct {
	source       ports.FrameSource
	convertStage pipeline.ConvertStage
	fs           ports.FileSystem
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	source ports.FrameSource,
	convertStage pipeline.ConvertStage,
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		source:       source,
		convertStage: convertStage,
		fs:           fs,
		logger:       logger,
	}
}

// Run executes the conversion.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	started := time.Now()

	codec, err := compression.New(config.Compression, config.CompressionLevel)
	if err != nil {
		return RunResult{}, err
	}

	// 1. Probe input
	info, err := o.source.Probe(ctx, config.InputPath)
	if err != nil {
		o.logger.Error("Failed to convert: %s", err)
		return RunResult{}, fmt.Errorf("probe source: %w", err)
	}
	o.logger.Info("Converting %s (%s)", config.InputPath, info.Kind)

	size := ports.Size{Width: config.Width, Height: config.Height}
	out := size.Resolve(info.Width, info.Height)
	o.logSourceInfo(info, out)

	if info.Kind == ports.InputVideo && info.Format == "mp4" && info.FrameCount == 0 {
		o.logger.Error("Failed to convert: %s", ErrNoFrames)
		return RunResult{}, ErrNoFrames
	}
	o.logger.Info("Compression: %s", codec.Kind())

	result := RunResult{
		InputPath:    config.InputPath,
		OutputPath:   config.OutputPath,
		Source:       info,
		OutputWidth:  out.Width,
		OutputHeight: out.Height,
		Compression:  codec.Kind(),
	}

	// 2. Open output container
	file, err := o.fs.Create(config.OutputPath)
	if err != nil {
		o.logger.Error("Failed to convert: %s", err)
		return result, fmt.Errorf("create output: %w", err)
	}
	writer, err := container.NewWriter(file, codec)
	if err != nil {
		file.Close()
		return result, fmt.Errorf("start container: %w", err)
	}

	// 3. Convert frames
	converted, runErr := o.convertStage.Execute(ctx, pipeline.ConvertInput{
		SourcePath: config.InputPath,
		Info:       &info,
		Size:       size,
		Frames:     writer,
	})
	result.Processed = converted.Processed
	result.Skipped = converted.Skipped

	// 4. Finish the container on every path
	var errs *multierror.Error
	if runErr != nil {
		errs = multierror.Append(errs, fmt.Errorf("convert stage: %w", runErr))
	}
	if err := writer.Close(); err != nil {
		o.logger.Error("Failed to close output: %s", err)
		errs = multierror.Append(errs, fmt.Errorf("finish container: %w", err))
	}
	if err := file.Close(); err != nil {
		o.logger.Error("Failed to close output: %s", err)
		errs = multierror.Append(errs, fmt.Errorf("close output: %w", err))
	}
	result.Elapsed = time.Since(started)

	if errs != nil {
		errs.ErrorFormat = listErrors
		o.logger.Error("Failed to convert: %s", errs)
		return result, errs.ErrorOrNil()
	}

	if n, err := o.fs.Size(config.OutputPath); err == nil {
		result.OutputSize = n
	}
	o.logger.Info("Wrote %d frames to %s (%d skipped)", result.Processed, config.OutputPath, result.Skipped)
	o.logger.Info("Conversion completed")

	return result, nil
}

func (o *Orchestrator) logSourceInfo(info ports.SourceInfo, out ports.Size) {
	o.logger.Info("Input resolution: %dx%d", info.Width, info.Height)
	o.logger.Info("Output resolution: %dx%d", out.Width, out.Height)
	if info.Duration > 0 {
		o.logger.Info("Duration: %.1fs", info.Duration.Seconds())
	}
	if info.FrameRate > 0 {
		o.logger.Info("Frame rate: %.2f", info.FrameRate)
	}
}

// listErrors joins errors on one line.
func listErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// RunResult contains the results of a conversion for summary generation.
type RunResult struct {
	InputPath  string
	OutputPath string

	// Source information
	Source ports.SourceInfo

	// Output information
	OutputWidth  int
	OutputHeight int
	Compression  compression.Kind
	OutputSize   int64

	// Frame counts
	Processed int
	Skipped   int

	Elapsed time.Duration
}
