package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"testing"

	"github.com/user/bwvid/pkg/adapters/logger"
	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/compression"
	"github.com/user/bwvid/pkg/container"
	"github.com/user/bwvid/pkg/mocks"
	"github.com/user/bwvid/pkg/pipeline"
	"github.com/user/bwvid/pkg/ports"
)

func setup(t *testing.T) (*mocks.FileSystem, compression.Codec) {
	t.Helper()
	fs := mocks.NewFileSystem()
	codec := compression.MustNew(compression.Zlib, compression.DefaultLevel)

	var buf bytes.Buffer
	frames := []*bwimg.Image{bwimg.New(3, 2), bwimg.New(10, 5)}
	if err := container.Encode(&buf, codec, frames); err != nil {
		t.Fatalf("encode container: %v", err)
	}
	fs.SetFile("frames.bw", buf.Bytes())
	return fs, codec
}

func TestStage_Execute(t *testing.T) {
	fs, codec := setup(t)
	exporter := &mocks.Exporter{}

	input := pipeline.DefaultExportInput()
	input.ContainerPath = "frames.bw"
	input.Codec = codec
	input.Index = 1
	input.Scale = 4
	input.OutputPath = "out/frame.png"

	stage := NewStage(fs, exporter, logger.NewNoop())
	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Width != 40 || result.Height != 20 {
		t.Errorf("expected 40x20 raster, got %dx%d", result.Width, result.Height)
	}
	if len(exporter.RasterizeCalls) != 1 || exporter.RasterizeCalls[0] != 4 {
		t.Errorf("expected one rasterize at scale 4, got %v", exporter.RasterizeCalls)
	}
	data, ok := fs.GetFile("out/frame.png")
	if !ok {
		t.Fatal("expected output file to be written")
	}
	if result.FileSize != int64(len(data)) {
		t.Errorf("expected file size %d, got %d", len(data), result.FileSize)
	}
}

func TestStage_Execute_ScaleFloor(t *testing.T) {
	fs, codec := setup(t)
	exporter := &mocks.Exporter{}

	stage := NewStage(fs, exporter, logger.NewNoop())
	_, err := stage.Execute(context.Background(), pipeline.ExportInput{
		ContainerPath: "frames.bw",
		Codec:         codec,
		OutputPath:    "a.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exporter.RasterizeCalls[0] != 1 {
		t.Errorf("expected scale 1, got %d", exporter.RasterizeCalls[0])
	}
}

func TestStage_Execute_IndexOutOfRange(t *testing.T) {
	fs, codec := setup(t)

	stage := NewStage(fs, &mocks.Exporter{}, logger.NewNoop())
	_, err := stage.Execute(context.Background(), pipeline.ExportInput{
		ContainerPath: "frames.bw",
		Codec:         codec,
		Index:         5,
		OutputPath:    "a.png",
	})
	if !errors.Is(err, container.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, ok := fs.GetFile("a.png"); ok {
		t.Error("expected no output file")
	}
}

func TestStage_Execute_EncodeError(t *testing.T) {
	fs, codec := setup(t)
	boom := errors.New("encoder failed")
	exporter := &mocks.Exporter{
		EncodeImageFunc: func(image.Image, ports.ImageFormat) ([]byte, error) { return nil, boom },
	}

	stage := NewStage(fs, exporter, logger.NewNoop())
	_, err := stage.Execute(context.Background(), pipeline.ExportInput{
		ContainerPath: "frames.bw",
		Codec:         codec,
		OutputPath:    "a.png",
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected encode error, got %v", err)
	}
}

func TestStage_Execute_NoOutputPath(t *testing.T) {
	fs, codec := setup(t)
	stage := NewStage(fs, &mocks.Exporter{}, logger.NewNoop())
	if _, err := stage.Execute(context.Background(), pipeline.ExportInput{ContainerPath: "frames.bw", Codec: codec}); err == nil {
		t.Error("expected error without output path")
	}
}
