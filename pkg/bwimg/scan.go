package bwimg

import (
	"fmt"
	"iter"
)

// Direction selects the traversal order of a Scanner.
type Direction int

const (
	// Horizontal walks rows top to bottom, each row left to right.
	Horizontal Direction = iota
	// Vertical walks columns left to right, each column top to bottom.
	Vertical
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseDirection parses "horizontal" or "vertical" (or "h"/"v").
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "horizontal", "h", "":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("%w: scan direction %q", ErrUnsupported, s)
	}
}

// TokenKind distinguishes pixel groups from line breaks.
type TokenKind int

const (
	TokenByte TokenKind = iota
	TokenNewLine
)

// Token is one element of a scan. For TokenByte, Packed holds up to eight
// pixels MSB first and ValidBits says how many of them are real.
type Token struct {
	Kind      TokenKind
	Packed    byte
	ValidBits uint8
}

// NewLine is the token emitted after every row or column.
var NewLine = Token{Kind: TokenNewLine}

// ByteToken builds a pixel group token.
func ByteToken(packed byte, valid uint8) Token {
	return Token{Kind: TokenByte, Packed: packed, ValidBits: valid}
}

// Scanner walks an image in a fixed direction, one token per Next call.
// Once exhausted it keeps returning false.
type Scanner struct {
	img    *Image
	dir    Direction
	stride int

	line    int // row (horizontal) or column (vertical)
	pos     int // byte index within the row, or first row of the group
	pending bool
	done    bool
}

// NewScanner creates a scanner over img.
func NewScanner(img *Image, dir Direction) *Scanner {
	s := &Scanner{
		img:    img,
		dir:    dir,
		stride: RowBytes(img.Width),
	}
	if img.Width == 0 || img.Height == 0 {
		s.done = true
	}
	return s
}

// Next returns the next token, or false when the scan is complete.
func (s *Scanner) Next() (Token, bool) {
	if s.done {
		return Token{}, false
	}
	if s.pending {
		s.pending = false
		s.line++
		s.pos = 0
		if s.line >= s.lines() {
			s.done = true
		}
		return NewLine, true
	}

	var tok Token
	var end bool
	if s.dir == Vertical {
		tok, end = s.nextColumnGroup()
	} else {
		tok, end = s.nextRowByte()
	}
	if end {
		s.pending = true
	}
	return tok, true
}

func (s *Scanner) lines() int {
	if s.dir == Vertical {
		return int(s.img.Width)
	}
	return int(s.img.Height)
}

func (s *Scanner) nextRowByte() (Token, bool) {
	b := s.img.Data[s.line*s.stride+s.pos]
	valid := int(s.img.Width) - s.pos*8
	if valid > 8 {
		valid = 8
	}
	s.pos++
	return ByteToken(b, uint8(valid)), s.pos >= s.stride
}

func (s *Scanner) nextColumnGroup() (Token, bool) {
	col := s.line
	height := int(s.img.Height)
	mask := byte(0x80) >> uint(col%8)

	var packed byte
	valid := 0
	for y := s.pos; y < height && valid < 8; y++ {
		if s.img.Data[y*s.stride+col/8]&mask != 0 {
			packed |= 0x80 >> uint(valid)
		}
		valid++
	}
	s.pos += valid
	return ByteToken(packed, uint8(valid)), s.pos >= height
}

// Tokens returns the scan of img as a sequence. Each range loop starts a new scan.
func Tokens(img *Image, dir Direction) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := NewScanner(img, dir)
		for {
			tok, ok := s.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
