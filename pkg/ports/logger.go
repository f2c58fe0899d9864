// Package ports defines the boundaries between the frame pipeline and the
// outside world: logging, files, frame sources, renderers, progress and
// debug output.
package ports

import "fmt"

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	// LevelDebug is for per-frame and per-stage details.
	LevelDebug LogLevel = iota
	// LevelInfo is for run-level progress such as resolutions and totals.
	LevelInfo
	// LevelWarn is for skipped frames and other recoverable problems.
	LevelWarn
	// LevelError is for problems that abort the run.
	LevelError
	// LevelQuiet suppresses all log output.
	LevelQuiet
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a level name. An empty string is info.
func ParseLogLevel(s string) (LogLevel, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "quiet":
		return LevelQuiet, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger abstracts logging operations with multi-language support.
// The msg parameter is a lexicon key; args are applied printf-style after
// translation.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// WithComponent returns a Logger that prefixes messages with the component name.
	WithComponent(component string) Logger
}
