// Package charscan is a minimal multi-encoding byte-string inspector.
//
// Given a byte sequence declared to be raw bytes, ASCII, printable ASCII, or
// UTF-8, it validates conformance and walks the sequence one character at a
// time, yielding either decoded codepoints or borrowed sub-slices. The
// package never copies or mutates the input; every returned slice aliases the
// caller's buffer and is only valid for as long as that buffer is.
//
// All offsets are 0-based byte indices into the input sequence.
package charscan

// Encoding is the operation bundle for one character encoding.
//
// Validate and ValidateRange report well-formedness as data, never as an
// error. The decode and step methods are defined only over previously
// validated input: on malformed bytes they return ok=false rather than
// panicking, but a false return is not a validation verdict and callers must
// not use it as one.
type Encoding interface {
	// Name returns the registry name of the encoding.
	Name() string

	// Max returns the maximum number of bytes one character can occupy.
	Max() int

	// Validate scans p and reports whether it is well-formed.
	Validate(p []byte) Result

	// ValidateRange is Validate restricted to p[start:end), without copying.
	// Bounds are clamped to [0, len(p)]; offsets in the Result are relative
	// to p, not to start.
	ValidateRange(p []byte, start, end int) Result

	// DecodeInt decodes the character starting at byte offset off, returning
	// its codepoint and the offset of the next character. ok is false when
	// off is at or past the end of p, or when no character starts there.
	DecodeInt(p []byte, off int) (r rune, next int, ok bool)

	// DecodeChar is DecodeInt returning the character's bytes instead of its
	// codepoint. The returned slice aliases p.
	DecodeChar(p []byte, off int) (c []byte, next int, ok bool)

	// NextInt decodes the character following prev, which is the Span of the
	// previously decoded character (the zero Span before the first call).
	// ok is false once prev ends at or past the end of p.
	NextInt(p []byte, prev Span) (s Span, r rune, ok bool)

	// NextChar is NextInt returning the character's bytes instead of its
	// codepoint. The returned slice aliases p.
	NextChar(p []byte, prev Span) (s Span, c []byte, ok bool)
}

// Span is the half-open byte range [Start, End) occupied by one character.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Tag selects one of the built-in encodings.
type Tag uint8

const (
	// Raw accepts any byte sequence; every byte is one character.
	Raw Tag = iota
	// ASCII accepts bytes in [0x00, 0x7F].
	ASCII
	// PrintableASCII accepts bytes in [0x20, 0x7F].
	PrintableASCII
	// UTF8 accepts multi-byte characters in the extended (up to 6-byte)
	// historical UTF-8 form.
	UTF8
)

// builtins is the static tag dispatch table, built once and never mutated.
var builtins = [...]Encoding{
	Raw:            rawEncoding,
	ASCII:          asciiEncoding,
	PrintableASCII: printableEncoding,
	UTF8:           utf8Encoding{},
}

// Encoding returns the operation bundle for the tag.
// It panics on a Tag value outside the defined constants.
func (t Tag) Encoding() Encoding {
	if int(t) >= len(builtins) {
		panic("charscan: invalid encoding Tag")
	}
	return builtins[t]
}

// String returns the registry name of the tag's encoding.
func (t Tag) String() string { return t.Encoding().Name() }
