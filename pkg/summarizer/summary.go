// Package summarizer provides summary generation for conversion results.
package summarizer

import (
	"time"

	"github.com/google/uuid"

	"github.com/user/bwvid/pkg/orchestrator"
)

// Summary contains all data collected during a conversion.
type Summary struct {
	// Metadata
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`

	// Source file
	Input InputInfo `json:"input"`

	// Container written
	Output OutputInfo `json:"output"`

	// Frame counts
	Frames FrameStats `json:"frames"`

	// Wall time of the conversion
	Elapsed time.Duration `json:"elapsed"`
}

// InputInfo describes the converted source.
type InputInfo struct {
	Path       string        `json:"path"`
	Kind       string        `json:"kind"`
	Format     string        `json:"format"`
	Codec      string        `json:"codec,omitempty"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	FrameCount int           `json:"frameCount"` // 0 when unknown
	Duration   time.Duration `json:"duration"`
	FrameRate  float64       `json:"frameRate"`
}

// OutputInfo describes the container.
type OutputInfo struct {
	Path        string `json:"path"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Compression string `json:"compression"`
	FileSize    int64  `json:"fileSize"`
}

// FrameStats contains frame counts.
type FrameStats struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
}

// NewSummary creates a new Summary with a fresh run ID and the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithInput sets source information.
func (b *Builder) WithInput(input InputInfo) *Builder {
	b.summary.Input = input
	return b
}

// WithOutput sets container information.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// WithFrames sets frame counts.
func (b *Builder) WithFrames(processed, skipped int) *Builder {
	b.summary.Frames = FrameStats{
		Processed: processed,
		Skipped:   skipped,
	}
	return b
}

// WithElapsed sets the conversion time.
func (b *Builder) WithElapsed(d time.Duration) *Builder {
	b.summary.Elapsed = d
	return b
}

// WithRunResult fills input, output, frames and elapsed time from an
// orchestrator run.
func (b *Builder) WithRunResult(r orchestrator.RunResult) *Builder {
	src := r.Source
	return b.
		WithInput(InputInfo{
			Path:       r.InputPath,
			Kind:       string(src.Kind),
			Format:     src.Format,
			Codec:      src.Codec,
			Width:      src.Width,
			Height:     src.Height,
			FrameCount: src.FrameCount,
			Duration:   src.Duration,
			FrameRate:  src.FrameRate,
		}).
		WithOutput(OutputInfo{
			Path:        r.OutputPath,
			Width:       r.OutputWidth,
			Height:      r.OutputHeight,
			Compression: string(r.Compression),
			FileSize:    r.OutputSize,
		}).
		WithFrames(r.Processed, r.Skipped).
		WithElapsed(r.Elapsed)
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
