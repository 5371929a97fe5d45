package charscan

// Bulk operations, defined purely as repeated application of the single-step
// decode primitives. They carry no semantics of their own: splitting stops at
// the first position where the step primitive cannot make progress, so on
// validated input they consume the whole sequence.

// Valid reports whether p is well-formed under e.
func Valid(e Encoding, p []byte) bool {
	return e.Validate(p).Valid()
}

// SplitInt decodes p into its full ordered sequence of codepoints.
func SplitInt(e Encoding, p []byte) []rune {
	var out []rune
	for off := 0; ; {
		r, next, ok := e.DecodeInt(p, off)
		if !ok {
			break
		}
		out = append(out, r)
		off = next
	}
	return out
}

// SplitChar decodes p into its full ordered sequence of character slices.
// Every returned slice aliases p.
func SplitChar(e Encoding, p []byte) [][]byte {
	var out [][]byte
	for off := 0; ; {
		c, next, ok := e.DecodeChar(p, off)
		if !ok {
			break
		}
		out = append(out, c)
		off = next
	}
	return out
}

// Count returns the number of characters in p under e.
func Count(e Encoding, p []byte) int {
	n := 0
	for s, _, ok := e.NextChar(p, Span{}); ok; s, _, ok = e.NextChar(p, s) {
		n++
	}
	return n
}
