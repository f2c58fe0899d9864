package bwimg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HeaderSize is the length of the width/height prefix of a frame record.
const HeaderSize = 8

// readChunk caps the up-front allocation when decoding frame data.
const readChunk = 1 << 20

// Header is the dimension prefix of a frame record.
type Header struct {
	Width  uint32
	Height uint32
}

// DataSize returns the length of the packed data following the header.
func (h Header) DataSize() uint64 {
	return DataSize(h.Width, h.Height)
}

// Encode writes img as a frame record: width and height as little-endian
// uint32, followed by the packed rows.
func Encode(w io.Writer, img *Image) error {
	if err := img.Validate(); err != nil {
		return err
	}

	var hdr [HeaderSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], img.Width)
	binary.LittleEndian.PutUint32(hdr[4:8], img.Height)

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write frame header: %w", err)
	}
	if _, err := w.Write(img.Data); err != nil {
		return fmt.Errorf("write frame data: %w", err)
	}
	return nil
}

// ReadHeader reads a record header. It returns io.EOF unwrapped when r is
// exhausted before the first byte, and ErrTruncated for a partial header.
func ReadHeader(r io.Reader) (Header, error) {
	var hdr [HeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		switch {
		case err == io.EOF:
			return Header{}, io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return Header{}, fmt.Errorf("%w: partial header", ErrTruncated)
		default:
			return Header{}, fmt.Errorf("read frame header: %w", err)
		}
	}
	return Header{
		Width:  binary.LittleEndian.Uint32(hdr[0:4]),
		Height: binary.LittleEndian.Uint32(hdr[4:8]),
	}, nil
}

// Decode reads one frame record. A reader exhausted at a record boundary
// yields io.EOF; a record cut short yields ErrTruncated.
func Decode(r io.Reader) (*Image, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	size := hdr.DataSize()
	var buf bytes.Buffer
	buf.Grow(int(min(size, readChunk)))

	if err := copyData(&buf, r, hdr, size); err != nil {
		return nil, err
	}

	return &Image{Width: hdr.Width, Height: hdr.Height, Data: buf.Bytes()}, nil
}

// Skip discards one frame record and returns its header.
func Skip(r io.Reader) (Header, error) {
	hdr, err := ReadHeader(r)
	if err != nil {
		return Header{}, err
	}
	if err := copyData(io.Discard, r, hdr, hdr.DataSize()); err != nil {
		return Header{}, err
	}
	return hdr, nil
}

func copyData(dst io.Writer, r io.Reader, hdr Header, size uint64) error {
	n, err := io.CopyN(dst, r, int64(size))
	if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %dx%d frame has %d of %d data bytes",
			ErrTruncated, hdr.Width, hdr.Height, n, size)
	}
	if err != nil {
		return fmt.Errorf("read frame data: %w", err)
	}
	return nil
}
