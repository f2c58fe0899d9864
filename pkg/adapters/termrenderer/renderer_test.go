package termrenderer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/bwvid/pkg/bwimg"
)

func diagonal() *bwimg.Image {
	img := bwimg.New(2, 2)
	img.Data[0] = 0x80
	img.Data[1] = 0x40
	return img
}

func TestRender_Horizontal(t *testing.T) {
	r := NewWithCells("#", ".")
	var buf bytes.Buffer

	if err := r.Render(&buf, bwimg.Tokens(diagonal(), bwimg.Horizontal)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got, want := buf.String(), "#.\n.#\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_VerticalTopRowWhite(t *testing.T) {
	img := bwimg.New(2, 2)
	img.Data[0] = 0xC0

	r := NewWithCells("#", ".")
	var buf bytes.Buffer
	if err := r.Render(&buf, bwimg.Tokens(img, bwimg.Vertical)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	// each column becomes a line
	if got, want := buf.String(), "#.\n#.\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRender_PaddingIgnored(t *testing.T) {
	img := bwimg.New(9, 1)
	img.Data[0] = 0xFF
	img.Data[1] = 0x80

	var buf bytes.Buffer
	if err := New().Render(&buf, bwimg.Tokens(img, bwimg.Horizontal)); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := ""
	for range 9 {
		want += BlockWhite
	}
	want += "\n"
	if buf.String() != want {
		t.Errorf("expected 9 white cells, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRender_WriteError(t *testing.T) {
	img := bwimg.New(4096, 8)
	if err := New().Render(failingWriter{}, bwimg.Tokens(img, bwimg.Horizontal)); err == nil {
		t.Error("expected write error")
	}
}

func TestForFile_NotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := ForFile(f)
	if r.white != ASCIIWhite {
		t.Errorf("expected ASCII cells for a regular file, got %q", r.white)
	}
}
