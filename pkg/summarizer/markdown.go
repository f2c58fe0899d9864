package summarizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"
)

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Conversion Summary": "変換サマリー",
		"Input":              "入力",
		"Output":             "出力",
		"Frames":             "フレーム",
		"Path":               "パス",
		"Type":               "種類",
		"Format":             "形式",
		"Codec":              "コーデック",
		"Resolution":         "解像度",
		"Duration":           "再生時間",
		"Frame Rate":         "フレームレート",
		"Compression":        "圧縮方式",
		"File Size":          "ファイルサイズ",
		"Compression Ratio":  "圧縮率",
		"Processed":          "変換済み",
		"Skipped":            "スキップ",
		"Elapsed":            "処理時間",
		"Generated":          "生成日時",
		"Run ID":             "実行 ID",
		"Unknown":            "不明",
	})
}

// MarkdownFormatter renders a Summary as a Markdown document with
// translated labels.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", l10n.T("Conversion Summary"))

	fmt.Fprintf(&sb, "## %s\n\n", l10n.T("Input"))
	row(&sb, "Path", "`"+s.Input.Path+"`")
	row(&sb, "Type", orUnknown(s.Input.Kind))
	row(&sb, "Format", orUnknown(s.Input.Format))
	if s.Input.Codec != "" {
		row(&sb, "Codec", s.Input.Codec)
	}
	row(&sb, "Resolution", resolution(s.Input.Width, s.Input.Height))
	if s.Input.Duration > 0 {
		row(&sb, "Duration", fmt.Sprintf("%.1f s", s.Input.Duration.Seconds()))
	}
	if s.Input.FrameRate > 0 {
		row(&sb, "Frame Rate", fmt.Sprintf("%.2f fps", s.Input.FrameRate))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", l10n.T("Output"))
	row(&sb, "Path", "`"+s.Output.Path+"`")
	row(&sb, "Resolution", resolution(s.Output.Width, s.Output.Height))
	row(&sb, "Compression", s.Output.Compression)
	row(&sb, "File Size", FormatBytes(s.Output.FileSize))
	if ratio, ok := compressionRatio(s); ok {
		row(&sb, "Compression Ratio", fmt.Sprintf("%.1f%%", ratio*100))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "## %s\n\n", l10n.T("Frames"))
	row(&sb, "Processed", fmt.Sprintf("%d", s.Frames.Processed))
	row(&sb, "Skipped", fmt.Sprintf("%d", s.Frames.Skipped))
	row(&sb, "Elapsed", s.Elapsed.Round(10*time.Millisecond).String())
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "---\n\n%s: %s  \n%s: `%s`\n",
		l10n.T("Generated"), s.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		l10n.T("Run ID"), s.RunID)

	return sb.String()
}

func row(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "- **%s**: %s\n", l10n.T(label), value)
}

func orUnknown(s string) string {
	if s == "" {
		return l10n.T("Unknown")
	}
	return s
}

func resolution(w, h int) string {
	if w == 0 || h == 0 {
		return l10n.T("Unknown")
	}
	return fmt.Sprintf("%dx%d", w, h)
}

// compressionRatio compares the file size with the uncompressed frame records.
func compressionRatio(s *Summary) (float64, bool) {
	if s.Output.FileSize == 0 || s.Frames.Processed == 0 {
		return 0, false
	}
	stride := int64((s.Output.Width + 7) / 8)
	raw := int64(s.Frames.Processed) * (8 + stride*int64(s.Output.Height))
	if raw == 0 {
		return 0, false
	}
	return float64(s.Output.FileSize) / float64(raw), true
}

// FormatBytes renders n with a binary unit, e.g. "1.00 MB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
