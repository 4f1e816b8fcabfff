package parsnip

// ZeroOrMore runs p repeatedly, collecting every value until the
// first failure, and never fails itself.  The collected values and
// the cursor from just before the failed attempt make up the match.
// The loop is explicit so the repetition count is bounded by the
// input length, not by the call stack.  A body that matches without
// consuming would loop forever, so an empty match ends the collection
// instead and its value is dropped; repetition bodies are expected to
// consume.
func ZeroOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(in Cursor) Outcome[[]T] {
		var values []T
		cur := in
		for {
			out := p(cur)
			if !out.IsMatched() || out.Cursor().Offset() == cur.Offset() {
				return Matched(values, cur)
			}
			values = append(values, out.Value())
			cur = out.Cursor()
		}
	}
}

// OneOrMore matches p once, propagating p's failure verbatim when
// even that is not possible, and then collects the rest exactly like
// ZeroOrMore.
func OneOrMore[T any](p Parser[T]) Parser[[]T] {
	return func(in Cursor) Outcome[[]T] {
		head := p(in)
		if !head.IsMatched() {
			return failed[[]T](head)
		}
		rest := ZeroOrMore(p)(head.Cursor())
		return Matched(append([]T{head.Value()}, rest.Value()...), rest.Cursor())
	}
}
