package parsnip

import "fmt"

// Rune matches exactly r and produces it.
func Rune(r rune) Parser[rune] {
	return Satisfy(fmt.Sprintf("expected `%c`", r), func(c rune) bool { return c == r })
}

// RuneRange matches any unit between lo and hi inclusive.
func RuneRange(lo, hi rune) Parser[rune] {
	return Satisfy(fmt.Sprintf("expected `%c-%c`", lo, hi), func(c rune) bool { return c >= lo && c <= hi })
}

// Literal matches the units of lit in order and produces lit.  It is
// atomic: a mismatch anywhere in the word is reported as one failure,
// "expected `<lit>`", back at the starting cursor, so literals drop
// cleanly out of choice alternatives instead of committing progress
// on a shared prefix.
func Literal(lit string) Parser[string] {
	units := make([]Parser[rune], 0, len(lit))
	for _, r := range lit {
		units = append(units, Rune(r))
	}
	expectation := fmt.Sprintf("expected `%s`", lit)
	all := MapFailure(SequenceAll(units), func(string) string { return expectation })
	return RewindOnFailure(Map(all, func([]rune) string { return lit }))
}
