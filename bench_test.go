package parsnip

import (
	"strings"
	"testing"
)

// BenchmarkRepetition runs the repetition loop over inputs large
// enough that a recursive rendition would be felt.  The cursor is
// built outside the loop: decoding the input is paid once per parse
// in real use, and this isolates the matching itself.
func BenchmarkRepetition(b *testing.B) {
	digit := Satisfy("expected digit", isDigit)
	p := ZeroOrMore(digit)

	for _, size := range []struct {
		name  string
		runes int
	}{
		{"1kb", 1 << 10},
		{"64kb", 1 << 16},
		{"1mb", 1 << 20},
	} {
		input := strings.Repeat("7", size.runes)
		in := NewCursor(input, 0)
		b.Run(size.name, func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			for i := 0; i < b.N; i++ {
				out := p(in)
				if !out.IsMatched() {
					b.Fatal("repetition should always match")
				}
			}
		})
	}
}

// BenchmarkChoice measures the worst case for ordered choice: the
// match sits behind a pile of alternatives that all have to be tried
// and rejected first.
func BenchmarkChoice(b *testing.B) {
	alternatives := make([]Parser[string], 0, 32)
	for _, w := range []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliett", "kilo", "lima",
		"mike", "november", "oscar", "papa", "quebec", "romeo",
		"sierra", "tango", "uniform", "victor", "whiskey", "xray",
		"yankee", "zulu",
	} {
		alternatives = append(alternatives, Literal(w))
	}
	p := Choice("expected call sign", alternatives)
	in := NewCursor("zulu", 0)

	for i := 0; i < b.N; i++ {
		out := p(in)
		if !out.IsMatched() {
			b.Fatal("the last alternative should match")
		}
	}
}
