package progressbar

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/bwvid/pkg/ports"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name    string
		ev      ports.ProgressEvent
		elapsed time.Duration
		want    string
	}{
		{
			name:    "half done",
			ev:      ports.ProgressEvent{Processed: 9, Skipped: 1, Total: 20},
			elapsed: 10 * time.Second,
			want:    strings.Repeat("█", 20) + strings.Repeat("░", 20) + " 10/20 | 0:10, eta: 0:10",
		},
		{
			name:    "unknown total",
			ev:      ports.ProgressEvent{Processed: 42},
			elapsed: 75 * time.Second,
			want:    "42 frames | 1:15",
		},
		{
			name:    "estimate exceeded",
			ev:      ports.ProgressEvent{Processed: 12, Total: 10},
			elapsed: 3723 * time.Second,
			want:    strings.Repeat("█", 40) + " 12/12 | 1:02:03, eta: 0:00",
		},
		{
			name: "nothing yet",
			ev:   ports.ProgressEvent{Total: 4},
			want: strings.Repeat("░", 40) + " 0/4 | 0:00, eta: 0:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Line(tt.ev, tt.elapsed); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBar_ThrottlesRedraws(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf)
	now := time.Unix(1000, 0)
	b.now = func() time.Time { return now }

	b.Frame(ports.ProgressEvent{Processed: 1, Total: 3})
	b.Frame(ports.ProgressEvent{Processed: 2, Total: 3})
	if n := strings.Count(buf.String(), "\r"); n != 1 {
		t.Errorf("expected 1 draw within the redraw interval, got %d", n)
	}

	now = now.Add(time.Second)
	b.Finish(ports.ProgressEvent{Processed: 3, Total: 3})
	out := buf.String()
	if n := strings.Count(out, "\r"); n != 2 {
		t.Errorf("expected final draw, got %d draws", n)
	}
	if !strings.HasSuffix(out, " 3/3 | 0:01, eta: 0:00\n") {
		t.Errorf("unexpected final line %q", out)
	}
}

func TestForFile_NotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "progress.log"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if ForFile(f) != ports.NoProgress {
		t.Error("expected progress to be disabled for a regular file")
	}
}
