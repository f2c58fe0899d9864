package smartsource

import (
	"context"
	"testing"

	"github.com/user/bwvid/pkg/mocks"
	"github.com/user/bwvid/pkg/ports"
)

func TestDetectKind(t *testing.T) {
	tests := map[string]ports.InputKind{
		"a.png":        ports.InputImage,
		"b.JPG":        ports.InputImage,
		"c.webp":       ports.InputImage,
		"dir/d.TIFF":   ports.InputImage,
		"e.mp4":        ports.InputVideo,
		"f.mkv":        ports.InputVideo,
		"no-extension": ports.InputVideo,
	}
	for path, want := range tests {
		if got := DetectKind(path); got != want {
			t.Errorf("DetectKind(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ports.InputKind
		wantErr bool
	}{
		{"", "", false},
		{"auto", "", false},
		{"Image", ports.InputImage, false},
		{" video ", ports.InputVideo, false},
		{"audio", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSource_Dispatch(t *testing.T) {
	image := &mocks.FrameSource{Info: ports.SourceInfo{Kind: ports.InputImage}}
	video := &mocks.FrameSource{Info: ports.SourceInfo{Kind: ports.InputVideo}}
	src := NewWith(image, video, "")

	info, err := src.Probe(context.Background(), "frame.png")
	if err != nil || info.Kind != ports.InputImage {
		t.Errorf("expected image backend, got %+v (err=%v)", info, err)
	}

	for range src.Frames(context.Background(), "clip.mp4", ports.Size{Width: 8}) {
	}
	if len(video.FramesCalls) != 1 || len(image.FramesCalls) != 0 {
		t.Errorf("expected video backend for mp4, got image=%d video=%d",
			len(image.FramesCalls), len(video.FramesCalls))
	}
}

func TestSource_ForcedKind(t *testing.T) {
	image := &mocks.FrameSource{}
	video := &mocks.FrameSource{}
	src := NewWith(image, video, ports.InputVideo)

	if src.Select("still.png") != ports.FrameSource(video) {
		t.Error("expected forced video backend")
	}
}

func TestImageExtensions(t *testing.T) {
	exts := ImageExtensions()
	if len(exts) != 8 {
		t.Fatalf("expected 8 extensions, got %v", exts)
	}
	if exts[0] != ".bmp" || exts[len(exts)-1] != ".webp" {
		t.Errorf("expected sorted extensions, got %v", exts)
	}
}
