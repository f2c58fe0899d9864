package bwimg

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongSize is matched by every *WrongSizeError. The frame can be skipped.
	ErrWrongSize = errors.New("bwimg: pixel buffer does not match dimensions")

	// ErrTruncated is returned when a record ends before its declared length.
	ErrTruncated = errors.New("bwimg: truncated frame record")

	// ErrUnsupported marks a conversion path that is not implemented.
	ErrUnsupported = errors.New("bwimg: unsupported operation")

	// ErrInvalidImage is returned when an Image violates the packed size invariant.
	ErrInvalidImage = errors.New("bwimg: invalid image")
)

// WrongSizeError reports an RGB buffer whose length disagrees with its dimensions.
type WrongSizeError struct {
	Width    uint32
	Height   uint32
	Expected int
	Actual   int
}

func (e *WrongSizeError) Error() string {
	return fmt.Sprintf("bwimg: wrong buffer size for %dx%d frame: expected %d bytes, got %d",
		e.Width, e.Height, e.Expected, e.Actual)
}

// Is lets errors.Is(err, ErrWrongSize) match.
func (e *WrongSizeError) Is(target error) bool {
	return target == ErrWrongSize
}
