package charscan

import "errors"

var (
	// ErrNilIO indicates that NewScanner was called with a nil io.Reader.
	ErrNilIO = errors.New("charscan: NewScanner called with a nil io.Reader")

	// ErrNilEncoding indicates that a nil Encoding was passed where a
	// concrete one is required.
	ErrNilEncoding = errors.New("charscan: nil Encoding")

	// ErrBlockTooSmall indicates a scanner block size smaller than the
	// encoding's maximum character width, which could never hold one
	// complete character.
	ErrBlockTooSmall = errors.New("charscan: block size smaller than the encoding's maximum character width")

	// ErrDuplicateEncoding indicates that Register was called with an
	// encoding whose name is already taken.
	ErrDuplicateEncoding = errors.New("charscan: encoding already registered")

	// ErrMalformed indicates a byte sequence that can never become valid in
	// the scanner's encoding, no matter how much further input arrives.
	ErrMalformed = errors.New("charscan: malformed byte sequence")

	// ErrTruncated indicates that the input stream ended in the middle of a
	// multi-byte character.
	ErrTruncated = errors.New("charscan: truncated character at end of input")
)
