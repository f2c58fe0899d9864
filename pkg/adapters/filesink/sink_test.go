package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/mocks"
	"github.com/user/bwvid/pkg/ports"
)

var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Exporter{})
	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveSourceInfo(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Exporter{})

	data := []byte(`{"width": 640}`)
	if err := sink.SaveSourceInfo(data); err != nil {
		t.Fatalf("SaveSourceInfo failed: %v", err)
	}

	saved, ok := fs.GetFile(filepath.Join(testBaseDir, "source.json"))
	if !ok {
		t.Fatal("expected source.json to be saved")
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveFrames(t *testing.T) {
	fs := mocks.NewFileSystem()
	exporter := &mocks.Exporter{}
	sink := New(testBaseDir, fs, exporter)

	if err := sink.SaveSourceFrame(3, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("SaveSourceFrame failed: %v", err)
	}
	if err := sink.SaveFrame(12, bwimg.New(4, 4)); err != nil {
		t.Fatalf("SaveFrame failed: %v", err)
	}

	for _, p := range []string{
		filepath.Join(testBaseDir, "frames", "source", "frame-0003.png"),
		filepath.Join(testBaseDir, "frames", "mono", "frame-0012.png"),
	} {
		if _, ok := fs.GetFile(p); !ok {
			t.Errorf("expected file at %s", p)
		}
	}

	if len(exporter.RasterizeCalls) != 1 || exporter.RasterizeCalls[0] != 1 {
		t.Errorf("expected one rasterize call at scale 1, got %v", exporter.RasterizeCalls)
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	boom := errors.New("encoder broke")
	exporter := &mocks.Exporter{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat) ([]byte, error) {
			return nil, boom
		},
	}
	sink := New(testBaseDir, fs, exporter)

	err := sink.SaveFrame(0, bwimg.New(1, 1))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped encoder error, got %v", err)
	}
	if len(fs.GetAllFiles()) != 0 {
		t.Error("nothing should be written when encoding fails")
	}
}
