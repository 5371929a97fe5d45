package charscan

// This file implements the extended (historical, up to 6-byte) UTF-8 form.
// Lead bytes through 0xFD are accepted, so codepoints up to 0x7FFFFFFF can be
// represented; strict RFC 3629 UTF-8 stops at 4-byte sequences and 0x10FFFF.
// Codepoints above 0x10FFFF are passed through rather than rejected, for
// compatibility with non-standard producers.

const (
	// UTFMax is the maximum number of bytes per character in the extended
	// UTF-8 form. The modern 4-byte limit does not apply here.
	UTFMax = 6

	// MaxCodepoint is the largest codepoint the 6-byte form can carry.
	MaxCodepoint = 0x7FFFFFFF

	contMin = 0x80 // low bound of the continuation byte range
	contMax = 0xBF // high bound of the continuation byte range
)

// leadByte classifies b as the first byte of a character. It returns the
// number of continuation bytes that follow and the codepoint bits carried by
// the lead itself (the byte with its length-marker bits stripped). ok is
// false for bytes that cannot start a character: stray continuation bytes
// (0x80-0xBF) and the reserved 0xFE/0xFF.
func leadByte(b byte) (trailing int, bits rune, ok bool) {
	switch {
	case b < 0x80:
		return 0, rune(b), true
	case b < 0xC0:
		return 0, 0, false // continuation byte in lead position
	case b < 0xE0:
		return 1, rune(b - 0xC0), true
	case b < 0xF0:
		return 2, rune(b - 0xE0), true
	case b < 0xF8:
		return 3, rune(b - 0xF0), true
	case b < 0xFC:
		return 4, rune(b - 0xF8), true
	case b < 0xFE:
		return 5, rune(b - 0xFC), true
	default:
		return 0, 0, false // 0xFE and 0xFF are reserved
	}
}

// utf8Encoding implements Encoding for the extended UTF-8 form.
type utf8Encoding struct{}

var _ Encoding = utf8Encoding{}

// Name fulfills the Encoding interface.
func (utf8Encoding) Name() string { return "utf-8" }

// Max fulfills the Encoding interface.
func (utf8Encoding) Max() int { return UTFMax }

// Validate fulfills the Encoding interface.
func (e utf8Encoding) Validate(p []byte) Result {
	return e.ValidateRange(p, 0, len(p))
}

// ValidateRange walks p[start:end) one character at a time. Each character
// must open with a legal lead byte and be followed by exactly the number of
// continuation bytes the lead announces, every one in [0x80, 0xBF].
func (utf8Encoding) ValidateRange(p []byte, start, end int) Result {
	start, end = clampRange(start, end, len(p))
	i := start
	for i < end {
		trailing, _, ok := leadByte(p[i])
		if !ok {
			return Result{Status: StatusInvalid, LastValid: i}
		}
		for k := 1; k <= trailing; k++ {
			if i+k >= end {
				return Result{Status: StatusIncomplete, LastValid: i}
			}
			if c := p[i+k]; c < contMin || c > contMax {
				return Result{Status: StatusInvalid, LastValid: i}
			}
		}
		i += 1 + trailing
	}
	return Result{Status: StatusValid, LastValid: end}
}

// DecodeInt accumulates the codepoint from the lead's stripped bits plus the
// low 6 bits of each continuation byte. Input is assumed validated; on
// malformed or truncated bytes it returns ok=false without deciding which.
func (utf8Encoding) DecodeInt(p []byte, off int) (rune, int, bool) {
	if off < 0 || off >= len(p) {
		return 0, 0, false
	}
	trailing, v, ok := leadByte(p[off])
	if !ok || off+trailing >= len(p) {
		return 0, 0, false
	}
	for k := 1; k <= trailing; k++ {
		v = v<<6 | rune(p[off+k]&0x3F)
	}
	return v, off + trailing + 1, true
}

// DecodeChar fulfills the Encoding interface. The returned slice aliases p.
func (utf8Encoding) DecodeChar(p []byte, off int) ([]byte, int, bool) {
	if off < 0 || off >= len(p) {
		return nil, 0, false
	}
	trailing, _, ok := leadByte(p[off])
	if !ok || off+trailing >= len(p) {
		return nil, 0, false
	}
	next := off + trailing + 1
	return p[off:next], next, true
}

// NextInt fulfills the Encoding interface.
func (e utf8Encoding) NextInt(p []byte, prev Span) (Span, rune, bool) {
	r, next, ok := e.DecodeInt(p, prev.End)
	if !ok {
		return Span{}, 0, false
	}
	return Span{Start: prev.End, End: next}, r, true
}

// NextChar fulfills the Encoding interface.
func (e utf8Encoding) NextChar(p []byte, prev Span) (Span, []byte, bool) {
	c, next, ok := e.DecodeChar(p, prev.End)
	if !ok {
		return Span{}, nil, false
	}
	return Span{Start: prev.End, End: next}, c, true
}
