// Package imagesource reads still images as single-frame sources. PNG, JPEG
// and GIF come from the standard library; BMP, TIFF and WebP from x/image.
package imagesource

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"iter"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/ports"
)

// Source implements ports.FrameSource for still images.
type Source struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates an image source reading through fs.
func New(fs ports.FileSystem, logger ports.Logger) *Source {
	return &Source{fs: fs, logger: logger.WithComponent("image")}
}

// Probe reads the image header.
func (s *Source) Probe(ctx context.Context, path string) (ports.SourceInfo, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return ports.SourceInfo{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return ports.SourceInfo{}, decodeError(path, err)
	}

	return ports.SourceInfo{
		Path:       path,
		Kind:       ports.InputImage,
		Format:     format,
		Width:      cfg.Width,
		Height:     cfg.Height,
		FrameCount: 1,
	}, nil
}

// Frames yields the image as one RGB frame, scaled with bilinear
// interpolation when size differs from the natural resolution.
func (s *Source) Frames(ctx context.Context, path string, size ports.Size) iter.Seq2[ports.RGBFrame, error] {
	return func(yield func(ports.RGBFrame, error) bool) {
		img, err := s.decode(path)
		if err != nil {
			yield(ports.RGBFrame{}, err)
			return
		}
		if err := ctx.Err(); err != nil {
			yield(ports.RGBFrame{}, err)
			return
		}

		b := img.Bounds()
		out := size.Resolve(b.Dx(), b.Dy())
		if out.Width != b.Dx() || out.Height != b.Dy() {
			s.logger.Debug("Scaling %dx%d to %dx%d", b.Dx(), b.Dy(), out.Width, out.Height)
			img = Scale(img, out.Width, out.Height)
		}

		yield(ports.RGBFrame{Index: 0, RGB: bwimg.RGBFromImage(img)}, nil)
	}
}

func (s *Source) decode(path string) (image.Image, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, decodeError(path, err)
	}
	b := img.Bounds()
	s.logger.Debug("Decoded image %s (%s, %dx%d)", path, format, b.Dx(), b.Dy())
	return img, nil
}

// Scale resizes img with bilinear interpolation.
func Scale(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

func decodeError(path string, err error) error {
	if err == image.ErrFormat {
		return fmt.Errorf("%w: %s: %w", bwimg.ErrUnsupported, path, err)
	}
	return fmt.Errorf("decode image %s: %w", path, err)
}

var _ ports.FrameSource = (*Source)(nil)
