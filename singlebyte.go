package charscan

// byteEncoding implements Encoding for encodings where a character is always
// exactly one byte and validity is a value-range check. Raw bytes, ASCII and
// printable ASCII are the three instances; they differ only in [lo, hi].
type byteEncoding struct {
	name string
	lo   byte
	hi   byte
}

var _ Encoding = (*byteEncoding)(nil)

var (
	rawEncoding       = &byteEncoding{name: "raw", lo: 0x00, hi: 0xFF}
	asciiEncoding     = &byteEncoding{name: "ascii", lo: 0x00, hi: 0x7F}
	printableEncoding = &byteEncoding{name: "printable-ascii", lo: 0x20, hi: 0x7F}
)

// Name fulfills the Encoding interface.
func (e *byteEncoding) Name() string { return e.name }

// Max fulfills the Encoding interface.
func (e *byteEncoding) Max() int { return 1 }

// Validate fulfills the Encoding interface.
func (e *byteEncoding) Validate(p []byte) Result {
	return e.ValidateRange(p, 0, len(p))
}

// ValidateRange checks every byte of p[start:end) against [lo, hi].
// A single-byte character can never be truncated, so the result is never
// StatusIncomplete.
func (e *byteEncoding) ValidateRange(p []byte, start, end int) Result {
	start, end = clampRange(start, end, len(p))
	if e.lo == 0x00 && e.hi == 0xFF {
		// Raw accepts everything; skip the scan.
		return Result{Status: StatusValid, LastValid: end}
	}
	for i := start; i < end; i++ {
		if p[i] < e.lo || p[i] > e.hi {
			return Result{Status: StatusInvalid, LastValid: i}
		}
	}
	return Result{Status: StatusValid, LastValid: end}
}

// DecodeInt fulfills the Encoding interface. A character is the byte itself.
func (e *byteEncoding) DecodeInt(p []byte, off int) (rune, int, bool) {
	if off < 0 || off >= len(p) {
		return 0, 0, false
	}
	return rune(p[off]), off + 1, true
}

// DecodeChar fulfills the Encoding interface. The returned slice aliases p.
func (e *byteEncoding) DecodeChar(p []byte, off int) ([]byte, int, bool) {
	if off < 0 || off >= len(p) {
		return nil, 0, false
	}
	return p[off : off+1], off + 1, true
}

// NextInt fulfills the Encoding interface.
func (e *byteEncoding) NextInt(p []byte, prev Span) (Span, rune, bool) {
	r, next, ok := e.DecodeInt(p, prev.End)
	if !ok {
		return Span{}, 0, false
	}
	return Span{Start: prev.End, End: next}, r, true
}

// NextChar fulfills the Encoding interface.
func (e *byteEncoding) NextChar(p []byte, prev Span) (Span, []byte, bool) {
	c, next, ok := e.DecodeChar(p, prev.End)
	if !ok {
		return Span{}, nil, false
	}
	return Span{Start: prev.End, End: next}, c, true
}
