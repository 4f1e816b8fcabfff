package parsnip

// Parser is a pure function from a read position to an outcome.
// Given equal cursors it returns equal outcomes, which is what lets
// the operators in this package compose freely without shared state.
// A parser value is typically assembled once, when the grammar is
// defined, and invoked many times.
//
// It unfortunately can't be a method set because of Go's generics
// limitations, but closures over Cursor fit in just right: by being
// generic on its output, parsers of different value types compose
// through the same small set of operators.
type Parser[T any] func(Cursor) Outcome[T]

// Run applies p to text from offset 0 and converts a NotMatched
// outcome into a *ParseError.  It does not require p to consume the
// whole input; sequence with EndOfInput for that.
func Run[T any](p Parser[T], text string) (T, error) {
	out := p(NewCursor(text, 0))
	if !out.IsMatched() {
		var zero T
		return zero, &ParseError{Expectation: out.Expectation(), Offset: out.Cursor().Offset()}
	}
	return out.Value(), nil
}
