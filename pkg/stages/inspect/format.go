package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/goccy/go-json"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/user/bwvid/pkg/pipeline"
)

// Format selects how an InspectResult is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ParseFormat parses "text", "json" or "csv".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown inspect format %q (want text, json or csv)", s)
}

// Write renders result to w in the given format.
func Write(w io.Writer, result pipeline.InspectResult, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatCSV:
		return gocsv.Marshal(result.Frames, w)
	case FormatText, "":
		return writeText(w, result)
	}
	return fmt.Errorf("unknown inspect format %q", format)
}

func writeText(w io.Writer, result pipeline.InspectResult) error {
	p := message.NewPrinter(language.English)

	var white int64
	for _, f := range result.Frames {
		white += int64(f.WhitePixels)
	}

	p.Fprintf(w, "%s: %d frames, %s, %d bytes\n",
		result.Path, len(result.Frames), result.Compression, result.FileSize)
	for _, f := range result.Frames {
		dims := fmt.Sprintf("%dx%d", f.Width, f.Height)
		p.Fprintf(w, "  #%d  %s  %d bytes  %d white\n",
			f.Index, dims, f.DataBytes, f.WhitePixels)
	}
	_, err := p.Fprintf(w, "total: %d pixels, %d white\n", result.Pixels(), white)
	return err
}
