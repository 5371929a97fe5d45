package charscan

import (
	"fmt"
	"io"
)

// defaultBlockSize is the number of bytes read from the source at a time.
const defaultBlockSize = 4096

// Scanner decodes characters from an io.Reader one at a time, refilling its
// block buffer as needed. The Incomplete/Invalid distinction drives the read
// loop: a character truncated at the end of the buffer waits for more input,
// a malformed byte fails permanently.
//
// Scanner tracks the first error and every later Scan becomes a no-op.
type Scanner struct {
	r  io.Reader
	e  Encoding
	bb []byte // block buffer, len(bb) == block size + e.Max()
	b  []byte // window of bb holding bytes read but not yet decoded

	off  int64 // stream offset of b[0]
	span Span  // span of the current character, in stream offsets
	char []byte
	val  rune

	err  error // first terminal error
	rerr error // pending I/O error, delivered once the window drains
}

// NewScanner creates a Scanner with the default block size.
func NewScanner(r io.Reader, e Encoding) (*Scanner, error) {
	return NewScannerSize(r, e, defaultBlockSize)
}

// NewScannerSize creates a Scanner reading size bytes at a time. size must be
// at least e.Max(), or no character could ever fit in the buffer.
func NewScannerSize(r io.Reader, e Encoding, size int) (*Scanner, error) {
	if r == nil {
		return nil, ErrNilIO
	}
	if e == nil {
		return nil, ErrNilEncoding
	}
	if size < e.Max() {
		return nil, ErrBlockTooSmall
	}
	return &Scanner{
		r:  r,
		e:  e,
		bb: make([]byte, size+e.Max()),
	}, nil
}

// Scan advances to the next character, returning false at the end of the
// stream or on the first error. After Scan returns false, Err distinguishes a
// clean end (nil) from a failure.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for {
		if len(s.b) > 0 {
			head := min(len(s.b), s.e.Max())
			res := s.e.ValidateRange(s.b, 0, head)
			switch {
			case res.LastValid > 0:
				// The first character in the window is complete.
				c, next, _ := s.e.DecodeChar(s.b, 0)
				v, _, _ := s.e.DecodeInt(s.b, 0)
				s.char, s.val = c, v
				s.span = Span{Start: int(s.off), End: int(s.off) + next}
				s.off += int64(next)
				s.b = s.b[next:]
				return true

			case res.Status == StatusInvalid:
				s.err = fmt.Errorf("%w: byte 0x%02X at offset %d", ErrMalformed, s.b[0], s.off)
				return false

			case s.rerr != nil:
				// Truncated character and the source is exhausted.
				if s.rerr == io.EOF {
					s.err = fmt.Errorf("%w: %d byte(s) at offset %d", ErrTruncated, len(s.b), s.off)
				} else {
					s.err = s.rerr
				}
				return false
			}
		} else if s.rerr != nil {
			if s.rerr != io.EOF {
				s.err = s.rerr
			}
			return false
		}
		s.fill()
	}
}

// fill compacts the unconsumed window to the front of the block buffer and
// reads one block from the source.
func (s *Scanner) fill() {
	n := copy(s.bb, s.b)
	m, err := s.r.Read(s.bb[n:])
	s.b = s.bb[: n+m : len(s.bb)]
	if err != nil && s.rerr == nil {
		s.rerr = err
	}
}

// Rune returns the codepoint of the current character.
func (s *Scanner) Rune() rune { return s.val }

// Bytes returns the bytes of the current character. The slice is only valid
// until the next call to Scan.
func (s *Scanner) Bytes() []byte { return s.char }

// Span returns the byte range the current character occupies in the stream.
func (s *Scanner) Span() Span { return s.span }

// Count returns the total number of bytes consumed from the stream.
func (s *Scanner) Count() int64 { return s.off }

// Err returns the first terminal error. A clean end of stream is not an
// error; io.EOF is never returned.
func (s *Scanner) Err() error { return s.err }
