package parsnip

import "fmt"

// EndOfInput matches only when the whole input has been consumed, and
// produces nothing.  Anywhere else it fails with "not eof" at the
// input cursor.  Sequencing a grammar with EndOfInput is how Run is
// made to reject trailing garbage.
func EndOfInput() Parser[struct{}] {
	return func(in Cursor) Outcome[struct{}] {
		if in.AtEnd() {
			return Matched(struct{}{}, in)
		}
		return NotMatched[struct{}]("not eof", in)
	}
}

// Any consumes the unit under the cursor, whatever it is.  It only
// fails at end of input, where there is nothing left to consume.
func Any() Parser[rune] {
	return func(in Cursor) Outcome[rune] {
		r, ok := in.peek()
		if !ok {
			return NotMatched[rune]("expected unit; end of input", in)
		}
		return Matched(r, in.Advance(1))
	}
}

// Satisfy consumes one unit if pred accepts it.  A rejected unit
// produces a failure that names the expectation, the unit that was
// actually read and the offset it was read at, but the failure cursor
// is the input cursor: the parser behaves as if nothing was consumed.
func Satisfy(expectation string, pred func(rune) bool) Parser[rune] {
	return SatisfyOver(expectation, Any(), pred)
}

// SatisfyOver is Satisfy generalized over the output of an arbitrary
// parser: it runs p, then gates the produced value through pred.
// Both a failure of p and a rejected value surface at the input
// cursor, so a SatisfyOver can sit inside choice alternatives without
// committing progress.
func SatisfyOver[A any](expectation string, p Parser[A], pred func(A) bool) Parser[A] {
	return func(in Cursor) Outcome[A] {
		out := p(in)
		if !out.IsMatched() {
			return NotMatched[A](out.Expectation(), in)
		}
		if !pred(out.Value()) {
			return NotMatched[A](expectFailure(expectation, out.Value(), in.Offset()), in)
		}
		return out
	}
}

// expectFailure renders the one failure message shape shared by every
// predicate mismatch: the expectation, the offending value, and the
// offset it was read at.
func expectFailure(expectation string, actual any, offset int) string {
	return fmt.Sprintf("%s; actual: %q; index=%d", expectation, describe(actual), offset)
}

// describe renders a produced value for a failure message.  Runes
// render as the character that was read, not as a code point.
func describe(v any) string {
	switch t := v.(type) {
	case rune:
		return string(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
