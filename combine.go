package parsnip

// Map transforms the value produced by p through f.  Failures pass
// through untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Cursor) Outcome[B] {
		out := p(in)
		if !out.IsMatched() {
			return failed[B](out)
		}
		return Matched(f(out.Value()), out.Cursor())
	}
}

// MapFailure rewrites the expectation of a failing p through f,
// keeping the failure cursor.  Matched outcomes pass through, so this
// is the tool for replacing a low-level message with one phrased in
// the caller's vocabulary.
func MapFailure[A any](p Parser[A], f func(string) string) Parser[A] {
	return func(in Cursor) Outcome[A] {
		out := p(in)
		if out.IsMatched() {
			return out
		}
		return NotMatched[A](f(out.Expectation()), out.Cursor())
	}
}

// Pure always matches with value and consumes nothing.  It is the
// identity of sequencing, and the usual way to lift a computed value
// back into a Bind chain.
func Pure[T any](value T) Parser[T] {
	return func(in Cursor) Outcome[T] {
		return Matched(value, in)
	}
}

// Fail always fails with expectation at the input cursor, consuming
// nothing.  It is how a Bind continuation rejects a value it has
// already inspected.
func Fail[T any](expectation string) Parser[T] {
	return func(in Cursor) Outcome[T] {
		return NotMatched[T](expectation, in)
	}
}

// Apply runs a parser producing a function and then a parser
// producing its argument, left to right, and matches with the result
// of the application.  The first failure short-circuits and is
// returned as is.
func Apply[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return func(in Cursor) Outcome[B] {
		f := pf(in)
		if !f.IsMatched() {
			return failed[B](f)
		}
		a := pa(f.Cursor())
		if !a.IsMatched() {
			return failed[B](a)
		}
		return Matched(f.Value()(a.Value()), a.Cursor())
	}
}

// Bind runs p and then the parser f picks based on p's value,
// threading the cursor through both.  This is the one dependent
// sequencing primitive; every fixed-shape sequencing operator in this
// package reduces to it.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in Cursor) Outcome[B] {
		out := p(in)
		if !out.IsMatched() {
			return failed[B](out)
		}
		return f(out.Value())(out.Cursor())
	}
}
