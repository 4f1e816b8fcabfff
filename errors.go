package parsnip

import "fmt"

// ParseError is the error Run returns when the parser doesn't match.
// It carries the same two facts as the NotMatched outcome it came
// from: the expectation message and the rune offset it applies to.
type ParseError struct {
	Expectation string
	Offset      int
}

// Error returns the human readable representation of a parse error
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s @ %d", e.Expectation, e.Offset)
}
