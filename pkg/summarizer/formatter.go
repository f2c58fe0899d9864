package summarizer

import (
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// Formatter converts a Summary to the text written to the summary file.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// JSONFormatter writes the summary as indented JSON. Durations are in
// nanoseconds.
var JSONFormatter = FormatFunc(func(s *Summary) string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return ""
	}
	return string(data) + "\n"
})

// FormatterFor picks JSON for a .json path and Markdown otherwise.
func FormatterFor(path string) Formatter {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSONFormatter
	}
	return NewMarkdownFormatter()
}
