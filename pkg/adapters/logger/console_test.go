package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/bwvid/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriters(ports.LevelWarn, &out, &errOut)

	log.Debug("debug %d", 1)
	log.Info("info %d", 2)
	log.Warn("warn %d", 3)
	log.Error("error %d", 4)

	if out.Len() != 0 {
		t.Errorf("expected no stdout output, got %q", out.String())
	}
	got := errOut.String()
	if !strings.Contains(got, "warn 3") || !strings.Contains(got, "error 4") {
		t.Errorf("expected warn and error on stderr, got %q", got)
	}
}

func TestConsoleLogger_StreamsByLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriters(ports.LevelDebug, &out, &errOut)

	log.Info("hello")
	log.Warn("careful")

	if strings.TrimSpace(out.String()) != "hello" {
		t.Errorf("expected info on stdout, got %q", out.String())
	}
	if strings.TrimSpace(errOut.String()) != "careful" {
		t.Errorf("expected warn on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriters(ports.LevelDebug, &out, &errOut)

	log.WithComponent("convert").Debug("frame %d", 7)
	log.Info("root")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out.String())
	}
	if lines[0] != "[convert] frame 7" {
		t.Errorf("unexpected component line %q", lines[0])
	}
	if lines[1] != "root" {
		t.Errorf("parent logger must not carry the component, got %q", lines[1])
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriters(ports.LevelQuiet, &out, &errOut)

	log.Error("nothing")
	if out.Len()+errOut.Len() != 0 {
		t.Error("quiet level must suppress everything")
	}
}
