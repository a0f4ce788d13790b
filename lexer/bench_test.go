package lexer

import (
	"strings"
	"testing"
)

var benchNumbers = []string{
	"0",
	"123",
	"0.123",
	".123",
	"1e9",
	"1.87E-18",
	strings.Repeat("0123456789", 9) + "." + strings.Repeat("0123456789", 9),
}

var benchWhitespace = []string{
	"",
	"  1",
	strings.Repeat(" ", 128) + "123",
}

func BenchmarkScanNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, src := range benchNumbers {
			scanNumber(src, 0)
		}
	}
}

func BenchmarkSkipSpace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, src := range benchWhitespace {
			skipSpace(src)
		}
	}
}

func BenchmarkTokens(b *testing.B) {
	input := strings.Repeat(" 2 * (1 + 3 * (1 - -3e-2)) /", 32) + " 1"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l, err := New(input)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := l.Tokens(); err != nil {
			b.Fatal(err)
		}
	}
}
