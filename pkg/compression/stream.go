package compression

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
)

// ErrFinished is returned by Write after the stream has been finished.
var ErrFinished = errors.New("compression: write after finish")

// Writer compresses into an underlying sink. Finish must be called once all
// data is written; the sink itself is never closed.
type Writer struct {
	kind     Kind
	zw       io.WriteCloser
	finished bool
	err      error
}

// WrapWriter starts a compressed stream on sink.
func WrapWriter(sink io.Writer, codec Codec) (*Writer, error) {
	zw, err := codec.NewWriter(sink)
	if err != nil {
		return nil, fmt.Errorf("open %s writer: %w", codec.Kind(), err)
	}
	return &Writer{kind: codec.Kind(), zw: zw}, nil
}

// Write compresses p.
func (w *Writer) Write(p []byte) (int, error) {
	if w.finished {
		return 0, ErrFinished
	}
	return w.zw.Write(p)
}

// Finish flushes the compressor and writes any trailer. Only the first call
// does work; later calls return the first call's result.
func (w *Writer) Finish() error {
	if w.finished {
		return w.err
	}
	w.finished = true
	if err := w.zw.Close(); err != nil {
		w.err = fmt.Errorf("finish %s stream: %w", w.kind, err)
	}
	return w.err
}

// Close is Finish, so a Writer can be used as an io.WriteCloser.
func (w *Writer) Close() error {
	return w.Finish()
}

// Kind returns the backend in use.
func (w *Writer) Kind() Kind {
	return w.kind
}

// Reader decompresses from an underlying source. Close releases decoder
// state; the source itself is never closed.
type Reader struct {
	kind   Kind
	zr     io.ReadCloser
	closed bool
}

// WrapReader starts decompressing source.
func WrapReader(source io.Reader, codec Codec) (*Reader, error) {
	zr, err := codec.NewReader(source)
	if err != nil {
		return nil, fmt.Errorf("open %s reader: %w", codec.Kind(), err)
	}
	return &Reader{kind: codec.Kind(), zr: zr}, nil
}

// Read decompresses into p.
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, io.ErrClosedPipe
	}
	return r.zr.Read(p)
}

// Close releases the decompressor. It is safe to call more than once.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.zr.Close()
}

// Finish finalizes w if it is a compressing Writer, or closes it if it is
// any other io.Closer. Plain writers are left alone.
func Finish(w io.Writer) error {
	switch v := w.(type) {
	case *Writer:
		return v.Finish()
	case io.Closer:
		return v.Close()
	default:
		return nil
	}
}

// WithWriter runs fn against a compressed stream on sink and always finishes
// the stream afterwards, whether fn succeeded or not. Errors from fn and from
// finishing are combined.
func WithWriter(sink io.Writer, codec Codec, fn func(w io.Writer) error) error {
	w, err := WrapWriter(sink, codec)
	if err != nil {
		return err
	}

	var result *multierror.Error
	if err := fn(w); err != nil {
		result = multierror.Append(result, err)
	}
	if err := w.Finish(); err != nil {
		result = multierror.Append(result, err)
	}
	return unwrapSingle(result)
}

// unwrapSingle returns the lone error of a one-element multierror as is, so
// callers see the original error text.
func unwrapSingle(m *multierror.Error) error {
	if m == nil {
		return nil
	}
	if len(m.Errors) == 1 {
		return m.Errors[0]
	}
	return m
}
