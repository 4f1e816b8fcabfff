package parsnip

import "fmt"

// Outcome is the result of running a parser at a cursor: either
// Matched, carrying the produced value and the cursor just past the
// consumed span, or NotMatched, carrying an expectation message and
// the cursor the mismatch is reported at.  There is no third state.
type Outcome[T any] struct {
	value       T
	expectation string
	at          Cursor
	matched     bool
}

// Matched builds the success variant.
func Matched[T any](value T, at Cursor) Outcome[T] {
	return Outcome[T]{value: value, at: at, matched: true}
}

// NotMatched builds the failure variant.
func NotMatched[T any](expectation string, at Cursor) Outcome[T] {
	return Outcome[T]{expectation: expectation, at: at}
}

// IsMatched reports whether the parser matched.
func (o Outcome[T]) IsMatched() bool { return o.matched }

// Value returns the produced value, or the zero value when the parser
// did not match.
func (o Outcome[T]) Value() T { return o.value }

// Expectation returns the failure message, empty when matched.
func (o Outcome[T]) Expectation() string { return o.expectation }

// Cursor returns the resulting position: just past the consumed span
// on a match, the reported mismatch position otherwise.
func (o Outcome[T]) Cursor() Cursor { return o.at }

func (o Outcome[T]) String() string {
	if o.matched {
		return fmt.Sprintf("Matched(%v) @ %d", o.value, o.at.Offset())
	}
	return fmt.Sprintf("NotMatched(%q) @ %d", o.expectation, o.at.Offset())
}

// failed converts a failure to a different value type, keeping the
// expectation and the cursor.  This is how failures bubble unchanged
// through the composition operators.
func failed[B, A any](o Outcome[A]) Outcome[B] {
	return NotMatched[B](o.expectation, o.at)
}
