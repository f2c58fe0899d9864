package summarizer

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/user/bwvid/pkg/compression"
	"github.com/user/bwvid/pkg/orchestrator"
	"github.com/user/bwvid/pkg/ports"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
	if _, err := uuid.Parse(summary.RunID); err != nil {
		t.Errorf("RunID should be a UUID, got %q: %v", summary.RunID, err)
	}
	if NewSummary().RunID == summary.RunID {
		t.Error("expected distinct run IDs")
	}
}

func TestBuilder_WithFrames(t *testing.T) {
	summary := NewBuilder().
		WithFrames(120, 3).
		WithElapsed(2 * time.Second).
		Build()

	if summary.Frames.Processed != 120 {
		t.Errorf("expected 120 processed, got %d", summary.Frames.Processed)
	}
	if summary.Frames.Skipped != 3 {
		t.Errorf("expected 3 skipped, got %d", summary.Frames.Skipped)
	}
	if summary.Elapsed != 2*time.Second {
		t.Errorf("expected elapsed 2s, got %v", summary.Elapsed)
	}
}

func TestBuilder_WithRunResult(t *testing.T) {
	result := orchestrator.RunResult{
		InputPath:  "clip.mp4",
		OutputPath: "clip.bw",
		Source: ports.SourceInfo{
			Kind:       ports.InputVideo,
			Format:     "mp4",
			Codec:      "h264",
			Width:      640,
			Height:     480,
			FrameCount: 250,
			Duration:   10 * time.Second,
			FrameRate:  25,
		},
		OutputWidth:  320,
		OutputHeight: 240,
		Compression:  compression.Zstd,
		OutputSize:   4096,
		Processed:    249,
		Skipped:      1,
		Elapsed:      1500 * time.Millisecond,
	}

	summary := NewBuilder().WithRunResult(result).Build()

	if summary.Input.Path != "clip.mp4" || summary.Input.Kind != "video" {
		t.Errorf("unexpected input %+v", summary.Input)
	}
	if summary.Input.Width != 640 || summary.Input.Height != 480 {
		t.Errorf("expected input 640x480, got %dx%d", summary.Input.Width, summary.Input.Height)
	}
	if summary.Input.FrameRate != 25 || summary.Input.Duration != 10*time.Second {
		t.Errorf("unexpected timing %+v", summary.Input)
	}
	if summary.Output.Width != 320 || summary.Output.Height != 240 {
		t.Errorf("expected output 320x240, got %dx%d", summary.Output.Width, summary.Output.Height)
	}
	if summary.Output.Compression != "zstd" {
		t.Errorf("expected zstd, got %q", summary.Output.Compression)
	}
	if summary.Output.FileSize != 4096 {
		t.Errorf("expected 4096 bytes, got %d", summary.Output.FileSize)
	}
	if summary.Frames.Processed != 249 || summary.Frames.Skipped != 1 {
		t.Errorf("unexpected frames %+v", summary.Frames)
	}
	if summary.Elapsed != 1500*time.Millisecond {
		t.Errorf("unexpected elapsed %v", summary.Elapsed)
	}
}
