package logger

import "github.com/user/bwvid/pkg/ports"

// NoopLogger discards all messages. Used for --quiet and in tests.
type NoopLogger struct{}

// NewNoop creates a new no-op logger.
func NewNoop() *NoopLogger {
	return &NoopLogger{}
}

func (l *NoopLogger) Debug(msg string, args ...any) {}
func (l *NoopLogger) Info(msg string, args ...any)  {}
func (l *NoopLogger) Warn(msg string, args ...any)  {}
func (l *NoopLogger) Error(msg string, args ...any) {}

// WithComponent returns the same no-op logger.
func (l *NoopLogger) WithComponent(component string) ports.Logger {
	return l
}

var _ ports.Logger = (*NoopLogger)(nil)
