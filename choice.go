package parsnip

// OrderedAlternative tries p1 and falls back to p2 only when p1 fails
// without consuming any input.  A failure whose cursor sits past the
// input offset means p1 matched a prefix and then mismatched; that
// failure is the final answer and p2 never runs.  Refusing to
// backtrack past consumed input keeps composite grammars linear and
// keeps error messages pointing at the deepest relevant position
// instead of the shallowest.  Wrap an alternative in RewindOnFailure
// when it should be tried atomically.
func OrderedAlternative[T any](p1, p2 Parser[T]) Parser[T] {
	return func(in Cursor) Outcome[T] {
		out := p1(in)
		if out.IsMatched() || out.Cursor().Offset() > in.Offset() {
			return out
		}
		return p2(in)
	}
}

// Choice tries each parser in the order given and returns the first
// match.  Alternatives are attempted first to last, exactly as
// declared; an alternative that fails after consuming input
// propagates its failure immediately, as in OrderedAlternative.  When
// every alternative fails without progress the individual messages
// are discarded and the result carries defaultExpectation at the
// input cursor, which reads far better than a pile-up of rejected
// branches.
func Choice[T any](defaultExpectation string, parsers []Parser[T]) Parser[T] {
	return func(in Cursor) Outcome[T] {
		for _, p := range parsers {
			out := p(in)
			if out.IsMatched() || out.Cursor().Offset() > in.Offset() {
				return out
			}
		}
		return NotMatched[T](defaultExpectation, in)
	}
}

// RewindOnFailure makes a composite atomic: a failure anywhere inside
// p is re-reported at the cursor p started from, so the composite
// drops cleanly out of an ordered choice even when it dies halfway
// through.  The expectation message is kept; only the position moves.
func RewindOnFailure[T any](p Parser[T]) Parser[T] {
	return func(in Cursor) Outcome[T] {
		out := p(in)
		if out.IsMatched() {
			return out
		}
		return NotMatched[T](out.Expectation(), in)
	}
}

// Optional is syntax sugar for an ordered choice in which the second
// alternative matches nothing: a no-progress failure of p becomes a
// match of the zero value at the input cursor.  A failure with
// progress still propagates.
func Optional[T any](p Parser[T]) Parser[T] {
	var zero T
	return OrderedAlternative(p, Pure(zero))
}

// And is the positive lookahead: it matches p's value but never
// consumes, and a failure inside p is reported back at the input
// cursor.  The predicate leaves no trace either way.
func And[T any](p Parser[T]) Parser[T] {
	return func(in Cursor) Outcome[T] {
		out := p(in)
		if !out.IsMatched() {
			return NotMatched[T](out.Expectation(), in)
		}
		return Matched(out.Value(), in)
	}
}

// Not is the negative lookahead: it matches the zero value without
// consuming when p fails, and fails with expectation at the input
// cursor when p matches.
func Not[T any](expectation string, p Parser[T]) Parser[T] {
	return func(in Cursor) Outcome[T] {
		out := p(in)
		if out.IsMatched() {
			return NotMatched[T](expectation, in)
		}
		var zero T
		return Matched(zero, in)
	}
}
