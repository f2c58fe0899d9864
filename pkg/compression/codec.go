// Package compression provides the stream compressors a container may be
// wrapped in. The compressor is chosen out of band; nothing in the stream
// identifies it.
package compression

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Kind names a compression backend.
type Kind string

const (
	None Kind = "none"
	Gzip Kind = "deflate-gzip"
	Zlib Kind = "deflate-zlib"
	Zstd Kind = "zstd"
)

// DefaultLevel asks the backend for its default compression level.
const DefaultLevel = 0

// ErrUnknownKind is returned for an unrecognized compression name.
var ErrUnknownKind = errors.New("compression: unknown kind")

// Kinds lists every supported backend.
func Kinds() []Kind {
	return []Kind{None, Gzip, Zlib, Zstd}
}

// ParseKind maps a user supplied name to a Kind. Short aliases are accepted.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "raw":
		return None, nil
	case "gzip", "deflate-gzip":
		return Gzip, nil
	case "zlib", "deflate-zlib":
		return Zlib, nil
	case "zstd", "zstandard":
		return Zstd, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Codec creates compressing writers and decompressing readers for one backend.
type Codec interface {
	Kind() Kind
	NewWriter(w io.Writer) (io.WriteCloser, error)
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// New returns the codec for kind. A level of DefaultLevel selects the
// backend default; other values are interpreted on the backend's own scale.
func New(kind Kind, level int) (Codec, error) {
	switch kind {
	case None, "":
		return noneCodec{}, nil
	case Gzip:
		if level != DefaultLevel && (level < gzip.HuffmanOnly || level > gzip.BestCompression) {
			return nil, fmt.Errorf("compression: gzip level %d out of range", level)
		}
		return gzipCodec{level: level}, nil
	case Zlib:
		if level != DefaultLevel && (level < zlib.HuffmanOnly || level > zlib.BestCompression) {
			return nil, fmt.Errorf("compression: zlib level %d out of range", level)
		}
		return zlibCodec{level: level}, nil
	case Zstd:
		if level < 0 || level > 22 {
			return nil, fmt.Errorf("compression: zstd level %d out of range", level)
		}
		return zstdCodec{level: level}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// MustNew is like New but panics on error. For tests and static tables.
func MustNew(kind Kind, level int) Codec {
	c, err := New(kind, level)
	if err != nil {
		panic(err)
	}
	return c
}

type noneCodec struct{}

func (noneCodec) Kind() Kind { return None }

func (noneCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

func (noneCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

type gzipCodec struct{ level int }

func (gzipCodec) Kind() Kind { return Gzip }

func (c gzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if c.level == DefaultLevel {
		return gzip.NewWriter(w), nil
	}
	return gzip.NewWriterLevel(w, c.level)
}

func (gzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

type zlibCodec struct{ level int }

func (zlibCodec) Kind() Kind { return Zlib }

func (c zlibCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	if c.level == DefaultLevel {
		return zlib.NewWriter(w), nil
	}
	return zlib.NewWriterLevel(w, c.level)
}

func (zlibCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

type zstdCodec struct{ level int }

func (zstdCodec) Kind() Kind { return Zstd }

func (c zstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	opts := []zstd.EOption{zstd.WithEncoderConcurrency(1), zstd.WithZeroFrames(true)}
	if c.level != DefaultLevel {
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(c.level)))
	}
	return zstd.NewWriter(w, opts...)
}

func (zstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}
