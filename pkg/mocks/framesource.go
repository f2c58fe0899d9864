package mocks

import (
	"context"
	"iter"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

// FrameSource is a mock implementation of ports.FrameSource that replays
// fixed frames.
type FrameSource struct {
	Info     ports.SourceInfo
	ProbeErr error

	// Frames are yielded in order; Err, when set, is yielded after them.
	RGB []bwimg.RGBData
	Err error

	ProbeCalls  []string
	FramesCalls []ports.Size
}

func (m *FrameSource) Probe(ctx context.Context, path string) (ports.SourceInfo, error) {
	m.ProbeCalls = append(m.ProbeCalls, path)
	if m.ProbeErr != nil {
		return ports.SourceInfo{}, m.ProbeErr
	}
	info := m.Info
	info.Path = path
	return info, nil
}

func (m *FrameSource) Frames(ctx context.Context, path string, size ports.Size) iter.Seq2[ports.RGBFrame, error] {
	m.FramesCalls = append(m.FramesCalls, size)
	return func(yield func(ports.RGBFrame, error) bool) {
		for i, rgb := range m.RGB {
			if !yield(ports.RGBFrame{Index: i, RGB: rgb}, nil) {
				return
			}
		}
		if m.Err != nil {
			yield(ports.RGBFrame{}, m.Err)
		}
	}
}

var _ ports.FrameSource = (*FrameSource)(nil)

// Progress records every progress event.
type Progress struct {
	Events   []ports.ProgressEvent
	Finished []ports.ProgressEvent
}

func (m *Progress) Frame(event ports.ProgressEvent)  { m.Events = append(m.Events, event) }
func (m *Progress) Finish(event ports.ProgressEvent) { m.Finished = append(m.Finished, event) }

var _ ports.ProgressObserver = (*Progress)(nil)
