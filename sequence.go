package parsnip

// Tuple2 through Tuple5 hold the ordered results of the fixed-arity
// sequencing operators.  Fields are named positionally; destructure
// with a Map when the grammar wants real names.

type Tuple2[A, B any] struct {
	A A
	B B
}

type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// Sequence2 runs pa then pb, producing both values.  All the
// fixed-arity sequences are layered on Bind and Map so there is
// exactly one failure propagation rule in the package: the first
// failure is the whole outcome, partial progress and all.
func Sequence2[A, B any](pa Parser[A], pb Parser[B]) Parser[Tuple2[A, B]] {
	return Bind(pa, func(a A) Parser[Tuple2[A, B]] {
		return Map(pb, func(b B) Tuple2[A, B] {
			return Tuple2[A, B]{A: a, B: b}
		})
	})
}

// Sequence3 runs pa, pb, pc in order, producing all three values.
func Sequence3[A, B, C any](pa Parser[A], pb Parser[B], pc Parser[C]) Parser[Tuple3[A, B, C]] {
	return Bind(Sequence2(pa, pb), func(ab Tuple2[A, B]) Parser[Tuple3[A, B, C]] {
		return Map(pc, func(c C) Tuple3[A, B, C] {
			return Tuple3[A, B, C]{A: ab.A, B: ab.B, C: c}
		})
	})
}

// Sequence4 runs pa, pb, pc, pd in order, producing all four values.
func Sequence4[A, B, C, D any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D]) Parser[Tuple4[A, B, C, D]] {
	return Bind(Sequence3(pa, pb, pc), func(abc Tuple3[A, B, C]) Parser[Tuple4[A, B, C, D]] {
		return Map(pd, func(d D) Tuple4[A, B, C, D] {
			return Tuple4[A, B, C, D]{A: abc.A, B: abc.B, C: abc.C, D: d}
		})
	})
}

// Sequence5 runs pa, pb, pc, pd, pe in order, producing all five
// values.  Grammars needing more than five fields in one production
// are better served by Bind directly.
func Sequence5[A, B, C, D, E any](pa Parser[A], pb Parser[B], pc Parser[C], pd Parser[D], pe Parser[E]) Parser[Tuple5[A, B, C, D, E]] {
	return Bind(Sequence4(pa, pb, pc, pd), func(abcd Tuple4[A, B, C, D]) Parser[Tuple5[A, B, C, D, E]] {
		return Map(pe, func(e E) Tuple5[A, B, C, D, E] {
			return Tuple5[A, B, C, D, E]{A: abcd.A, B: abcd.B, C: abcd.C, D: abcd.D, E: e}
		})
	})
}

// SequenceAll runs every parser in order, producing one value per
// parser.  The loop is iterative rather than layered on Bind so the
// depth of a long homogeneous sequence is bounded by the slice, not
// the call stack.  All or nothing: the first failure is returned as
// is, and no partial results escape.
func SequenceAll[T any](parsers []Parser[T]) Parser[[]T] {
	return func(in Cursor) Outcome[[]T] {
		values := make([]T, 0, len(parsers))
		cur := in
		for _, p := range parsers {
			out := p(cur)
			if !out.IsMatched() {
				return failed[[]T](out)
			}
			values = append(values, out.Value())
			cur = out.Cursor()
		}
		return Matched(values, cur)
	}
}
