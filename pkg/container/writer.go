package container

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/compression"
)

// ErrClosed is returned by WriteFrame after Close.
var ErrClosed = errors.New("container: writer closed")

// Writer appends frames to a container one at a time.
type Writer struct {
	zw     *compression.Writer
	bw     *bufio.Writer
	count  int
	closed bool
}

// NewWriter starts a container on sink. Close must be called to flush the
// compressor; the sink is not closed.
func NewWriter(sink io.Writer, codec compression.Codec) (*Writer, error) {
	zw, err := compression.WrapWriter(sink, codec)
	if err != nil {
		return nil, err
	}
	return &Writer{
		zw: zw,
		bw: bufio.NewWriterSize(zw, bufferSize),
	}, nil
}

// WriteFrame appends img.
func (w *Writer) WriteFrame(img *bwimg.Image) error {
	if w.closed {
		return ErrClosed
	}
	if err := bwimg.Encode(w.bw, img); err != nil {
		return fmt.Errorf("frame %d: %w", w.count, err)
	}
	w.count++
	return nil
}

// Count returns the number of frames written.
func (w *Writer) Count() int {
	return w.count
}

// Close flushes buffered records and finishes the compressed stream. It is
// safe to call more than once; only the first call does work.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	var result *multierror.Error
	if err := w.bw.Flush(); err != nil {
		result = multierror.Append(result, fmt.Errorf("flush: %w", err))
	}
	if err := w.zw.Finish(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Encode writes imgs as a complete container. The compressed stream is
// finished even when a frame fails to encode.
func Encode(sink io.Writer, codec compression.Codec, imgs []*bwimg.Image) error {
	return compression.WithWriter(sink, codec, func(zw io.Writer) error {
		bw := bufio.NewWriterSize(zw, bufferSize)
		for i, img := range imgs {
			if err := bwimg.Encode(bw, img); err != nil {
				// keep the frames that made it
				_ = bw.Flush()
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		return bw.Flush()
	})
}
