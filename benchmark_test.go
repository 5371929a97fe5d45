package charscan

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

var (
	benchASCII = []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 32))
	benchMixed = []byte(strings.Repeat("naïve café 10€ ¥500 𝍈 ", 64))
)

func BenchmarkUTF8ValidateASCII(b *testing.B) {
	enc := UTF8.Encoding()
	b.SetBytes(int64(len(benchASCII)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enc.Validate(benchASCII)
	}
}

func BenchmarkUTF8ValidateMixed(b *testing.B) {
	enc := UTF8.Encoding()
	b.SetBytes(int64(len(benchMixed)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enc.Validate(benchMixed)
	}
}

// Baseline comparison using the stdlib validator, to see the cost of the
// extended-form rules and offset reporting.
func BenchmarkStdlibUTF8Valid(b *testing.B) {
	b.SetBytes(int64(len(benchMixed)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = utf8.Valid(benchMixed)
	}
}

func BenchmarkUTF8SplitInt(b *testing.B) {
	enc := UTF8.Encoding()
	b.SetBytes(int64(len(benchMixed)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SplitInt(enc, benchMixed)
	}
}

func BenchmarkASCIIValidate(b *testing.B) {
	enc := ASCII.Encoding()
	b.SetBytes(int64(len(benchASCII)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enc.Validate(benchASCII)
	}
}

func BenchmarkScanner(b *testing.B) {
	enc := UTF8.Encoding()
	b.SetBytes(int64(len(benchMixed)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc, _ := NewScanner(bytes.NewReader(benchMixed), enc)
		for sc.Scan() {
		}
	}
}
