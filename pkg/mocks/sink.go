package mocks

import (
	"image"
	"sync"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	SourceInfo   []byte
	SourceFrames map[int]image.Image
	Frames       map[int]*bwimg.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:      enabled,
		SourceFrames: make(map[int]image.Image),
		Frames:       make(map[int]*bwimg.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveSourceInfo(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourceInfo = data
	return nil
}

func (m *DebugSink) SaveSourceFrame(index int, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourceFrames[index] = img
	return nil
}

func (m *DebugSink) SaveFrame(index int, img *bwimg.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Frames[index] = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
