package charscan

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCharUTF8(t *testing.T) {
	enc := UTF8.Encoding()
	chars := SplitChar(enc, []byte("é€𝍈"))

	require.Len(t, chars, 3)
	assert.Len(t, chars[0], 2)
	assert.Len(t, chars[1], 3)
	assert.Len(t, chars[2], 4)
}

func TestSplitIntUTF8(t *testing.T) {
	enc := UTF8.Encoding()
	assert.Equal(t, []rune("héllo"), SplitInt(enc, []byte("héllo")))
	assert.Nil(t, SplitInt(enc, nil))
}

func TestSplitIntASCII(t *testing.T) {
	enc := ASCII.Encoding()
	assert.Equal(t, []rune{'a', 'b', 'c'}, SplitInt(enc, []byte("abc")))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, Count(UTF8.Encoding(), []byte("é€𝍈")))
	assert.Equal(t, 9, Count(Raw.Encoding(), []byte("é€𝍈")))
	assert.Equal(t, 0, Count(UTF8.Encoding(), nil))
}

func TestValidShorthand(t *testing.T) {
	assert.True(t, Valid(UTF8.Encoding(), []byte("héllo")))
	assert.False(t, Valid(ASCII.Encoding(), []byte("héllo")))
	assert.True(t, Valid(Raw.Encoding(), []byte{0xFF, 0xFE}))
}

// TestSplitReassembles checks the core invariant: under every encoding,
// splitting a valid sequence and concatenating the character spans in order
// reproduces the original sequence exactly, with no bytes skipped or
// duplicated.
func TestSplitReassembles(t *testing.T) {
	corpora := map[string][]byte{
		"ASCII":    []byte("the quick brown fox"),
		"Mixed":    []byte("naïve café — 10€, ¥500, 𝍈"),
		"Emoji":    []byte("a\U0001F600b\U0001F680"),
		"Extended": {0xFD, 0xBF, 0xBF, 0xBF, 0xBF, 0xBF, 'x', 0xFB, 0x80, 0x80, 0x80, 0x80},
		"Binary":   {0x00, 0xFF, 0x80, 0xC0, 0x20},
	}
	encodings := map[string]Encoding{
		"raw":   Raw.Encoding(),
		"utf-8": UTF8.Encoding(),
	}

	for encName, enc := range encodings {
		for corpusName, p := range corpora {
			t.Run(encName+"/"+corpusName, func(t *testing.T) {
				if !Valid(enc, p) {
					t.Skip("corpus not valid under this encoding")
				}

				chars := SplitChar(enc, p)
				assert.Equal(t, p, bytes.Join(chars, nil))
				assert.Equal(t, len(chars), len(SplitInt(enc, p)))
				assert.Equal(t, len(chars), Count(enc, p))

				// Continuation steps cover the sequence with contiguous spans.
				var prev Span
				for {
					span, _, ok := enc.NextChar(p, prev)
					if !ok {
						break
					}
					require.Equal(t, prev.End, span.Start)
					prev = span
				}
				assert.Equal(t, len(p), prev.End, "no leftover bytes")
			})
		}
	}
}
