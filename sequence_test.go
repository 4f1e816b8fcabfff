package parsnip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence2(t *testing.T) {
	digit := Satisfy("expected digit", isDigit)
	space := Rune(' ')

	t.Run("both values, in order", func(t *testing.T) {
		out := Sequence2(digit, space)(NewCursor("7 cups", 0))
		require.True(t, out.IsMatched())
		assert.Equal(t, Tuple2[rune, rune]{A: '7', B: ' '}, out.Value())
		assert.Equal(t, 2, out.Cursor().Offset())
	})

	t.Run("the first failure is the whole outcome", func(t *testing.T) {
		out := Sequence2(digit, space)(NewCursor("x cups", 0))
		require.False(t, out.IsMatched())
		assert.Equal(t, `expected digit; actual: "x"; index=0`, out.Expectation())
		assert.Equal(t, 0, out.Cursor().Offset())
	})

	t.Run("a failure in the second exposes the partial progress", func(t *testing.T) {
		out := Sequence2(digit, space)(NewCursor("7x", 0))
		require.False(t, out.IsMatched())
		assert.Equal(t, "expected ` `; actual: \"x\"; index=1", out.Expectation())
		assert.Equal(t, 1, out.Cursor().Offset())
	})
}

func TestSequence5(t *testing.T) {
	digit := Satisfy("expected digit", isDigit)

	t.Run("five in a row", func(t *testing.T) {
		out := Sequence5(digit, digit, digit, digit, digit)(NewCursor("12345x", 0))
		require.True(t, out.IsMatched())
		assert.Equal(t, Tuple5[rune, rune, rune, rune, rune]{A: '1', B: '2', C: '3', D: '4', E: '5'}, out.Value())
		assert.Equal(t, 5, out.Cursor().Offset())
	})

	t.Run("dies wherever the first mismatch is", func(t *testing.T) {
		out := Sequence5(digit, digit, digit, digit, digit)(NewCursor("123x5", 0))
		require.False(t, out.IsMatched())
		assert.Equal(t, `expected digit; actual: "x"; index=3`, out.Expectation())
		assert.Equal(t, 3, out.Cursor().Offset())
	})
}

func TestSequenceAll(t *testing.T) {
	digit := Satisfy("expected digit", isDigit)

	t.Run("one value per parser", func(t *testing.T) {
		out := SequenceAll([]Parser[rune]{digit, digit, digit})(NewCursor("123", 0))
		require.True(t, out.IsMatched())
		assert.Equal(t, []rune{'1', '2', '3'}, out.Value())
		assert.Equal(t, 3, out.Cursor().Offset())
	})

	t.Run("no parsers matches the empty sequence", func(t *testing.T) {
		out := SequenceAll(nil)(NewCursor("123", 0))
		require.True(t, out.IsMatched())
		assert.Empty(t, out.Value())
		assert.Equal(t, 0, out.Cursor().Offset())
	})

	t.Run("all or nothing", func(t *testing.T) {
		out := SequenceAll([]Parser[rune]{digit, digit, digit})(NewCursor("12x", 0))
		require.False(t, out.IsMatched())
		assert.Equal(t, `expected digit; actual: "x"; index=2`, out.Expectation())
		assert.Equal(t, 2, out.Cursor().Offset())
	})
}
