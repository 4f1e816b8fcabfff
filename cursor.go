package parsnip

import "fmt"

// Cursor is an immutable read position within an input text.  The
// input is decoded into runes once, at construction time, and shared
// by every cursor derived from the same parse; offsets count runes.
// Advancing never mutates a cursor, it returns a fresh value.
type Cursor struct {
	input []rune
	pos   int
}

// NewCursor creates a cursor over text at the given offset, normally
// 0.  An offset outside [0, len] is a programming error and panics
// rather than producing a half-valid cursor.
func NewCursor(text string, offset int) Cursor {
	input := []rune(text)
	if offset < 0 || offset > len(input) {
		panic(fmt.Sprintf("parsnip: cursor offset %d outside input of length %d", offset, len(input)))
	}
	return Cursor{input: input, pos: offset}
}

// Advance returns a new cursor n units past c.  Parsers only move
// forward; a negative n, or advancing past the end of the input,
// panics.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 || c.pos+n > len(c.input) {
		panic(fmt.Sprintf("parsnip: advance by %d from offset %d outside input of length %d", n, c.pos, len(c.input)))
	}
	return Cursor{input: c.input, pos: c.pos + n}
}

// Offset returns the rune offset of the next unit to read.
func (c Cursor) Offset() int { return c.pos }

// AtEnd reports whether the entire input has been consumed.
func (c Cursor) AtEnd() bool { return c.pos >= len(c.input) }

// Equal reports whether two cursors sit at the same offset.  The
// cursors compared by the choice operators always come from the same
// parse, so the offset alone identifies a position.
func (c Cursor) Equal(other Cursor) bool { return c.pos == other.pos }

func (c Cursor) String() string { return fmt.Sprintf("%d", c.pos) }

// peek returns the rune under the cursor, or false at end of input.
func (c Cursor) peek() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}
