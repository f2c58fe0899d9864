// Package container stores ordered collections of monochrome frames as
// concatenated frame records, optionally compressed as a whole.
//
// There is no record count or index: the end of the (decompressed) stream ends
// the collection. Eager and streaming access share the same decode path.
package container

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/user/bwvid/pkg/bwimg"
	"github.com/user/bwvid/pkg/compression"
)

// ErrIndexOutOfRange is returned by At when the container has fewer frames.
var ErrIndexOutOfRange = errors.New("container: frame index out of range")

// bufferSize is the read buffer placed in front of the decompressor.
const bufferSize = 64 * 1024

// Reader pulls one frame at a time from a container. A Reader is not safe
// for concurrent use.
type Reader struct {
	zr    *compression.Reader
	br    *bufio.Reader
	index int
	err   error
}

// NewReader opens a container on source.
func NewReader(source io.Reader, codec compression.Codec) (*Reader, error) {
	zr, err := openStream(source, codec)
	if err != nil {
		return nil, err
	}
	return &Reader{
		zr: zr,
		br: bufio.NewReaderSize(zr, bufferSize),
	}, nil
}

// openStream starts decompressing source. A stream too short for the
// compressor header is a truncated container.
func openStream(source io.Reader, codec compression.Codec) (*compression.Reader, error) {
	zr, err := compression.WrapReader(source, codec)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: %s header: %v", bwimg.ErrTruncated, codec.Kind(), err)
	}
	return zr, err
}

// Next decodes the next frame. It returns io.EOF when the container ends at a
// record boundary. After any error, further calls return the same error.
func (r *Reader) Next() (*bwimg.Image, error) {
	if r.err != nil {
		return nil, r.err
	}
	img, err := bwimg.Decode(r.br)
	if err != nil {
		r.err = r.wrap(err)
		return nil, r.err
	}
	r.index++
	return img, nil
}

// Skip discards the next frame without materializing it.
func (r *Reader) Skip() error {
	if r.err != nil {
		return r.err
	}
	if _, err := bwimg.Skip(r.br); err != nil {
		r.err = r.wrap(err)
		return r.err
	}
	r.index++
	return nil
}

// Index returns the number of frames consumed so far.
func (r *Reader) Index() int {
	return r.index
}

// Close releases the decompressor. The source is not closed.
func (r *Reader) Close() error {
	return r.zr.Close()
}

func (r *Reader) wrap(err error) error {
	if err == io.EOF {
		return io.EOF
	}
	return fmt.Errorf("frame %d: %w", r.index, err)
}

// Frames returns the frames of a container as a sequence. A malformed or
// truncated record yields one final error after all good frames.
func Frames(source io.Reader, codec compression.Codec) iter.Seq2[*bwimg.Image, error] {
	return func(yield func(*bwimg.Image, error) bool) {
		r, err := NewReader(source, codec)
		if err != nil {
			yield(nil, err)
			return
		}
		defer r.Close()

		for {
			img, err := r.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(img, nil) {
				return
			}
		}
	}
}

// At returns the frame at index, skipping earlier frames without decoding
// them into memory.
func At(source io.Reader, codec compression.Codec, index int) (*bwimg.Image, error) {
	if index < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	r, err := NewReader(source, codec)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for i := 0; i < index; i++ {
		if err := r.Skip(); err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("%w: %d (container has %d frames)", ErrIndexOutOfRange, index, i)
			}
			return nil, err
		}
	}

	img, err := r.Next()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %d (container has %d frames)", ErrIndexOutOfRange, index, index)
	}
	return img, err
}

// Decode reads every frame of a container. A truncated record fails the
// whole call and no frames are returned.
func Decode(source io.Reader, codec compression.Codec) ([]*bwimg.Image, error) {
	var frames []*bwimg.Image
	for img, err := range Frames(source, codec) {
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// Headers walks a container and returns the dimensions of each frame
// without keeping any frame data.
func Headers(source io.Reader, codec compression.Codec) ([]bwimg.Header, error) {
	zr, err := openStream(source, codec)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	br := bufio.NewReaderSize(zr, bufferSize)
	var headers []bwimg.Header
	for {
		hdr, err := bwimg.Skip(br)
		if err == io.EOF {
			return headers, nil
		}
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", len(headers), err)
		}
		headers = append(headers, hdr)
	}
}
