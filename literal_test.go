package parsnip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRune(t *testing.T) {
	t.Run("exactly that unit", func(t *testing.T) {
		out := Rune('a')(NewCursor("ab", 0))
		require.True(t, out.IsMatched())
		assert.Equal(t, 'a', out.Value())
		assert.Equal(t, 1, out.Cursor().Offset())
	})

	t.Run("anything else is named in the failure", func(t *testing.T) {
		out := Rune('a')(NewCursor("ba", 0))
		require.False(t, out.IsMatched())
		assert.Equal(t, "expected `a`; actual: \"b\"; index=0", out.Expectation())
		assert.Equal(t, 0, out.Cursor().Offset())
	})
}

func TestRuneRange(t *testing.T) {
	lower := RuneRange('a', 'z')

	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, input := range []string{"a", "m", "z"} {
			out := lower(NewCursor(input, 0))
			require.True(t, out.IsMatched(), input)
			assert.Equal(t, 1, out.Cursor().Offset())
		}
	})

	t.Run("outside the range", func(t *testing.T) {
		out := lower(NewCursor("A", 0))
		require.False(t, out.IsMatched())
		assert.Equal(t, "expected `a-z`; actual: \"A\"; index=0", out.Expectation())
		assert.Equal(t, 0, out.Cursor().Offset())
	})
}

func TestLiteral(t *testing.T) {
	t.Run("matches the word and produces it", func(t *testing.T) {
		out := Literal("cups")(NewCursor("cups of tea", 0))
		require.True(t, out.IsMatched())
		assert.Equal(t, "cups", out.Value())
		assert.Equal(t, 4, out.Cursor().Offset())
	})

	t.Run("a mismatch midway rewinds to the start", func(t *testing.T) {
		out := Literal("cups")(NewCursor("cures", 0))
		require.False(t, out.IsMatched())
		assert.Equal(t, "expected `cups`", out.Expectation())
		assert.Equal(t, 0, out.Cursor().Offset())
	})

	t.Run("running out of input rewinds too", func(t *testing.T) {
		out := Literal("cups")(NewCursor("cu", 0))
		require.False(t, out.IsMatched())
		assert.Equal(t, "expected `cups`", out.Expectation())
		assert.Equal(t, 0, out.Cursor().Offset())
	})

	t.Run("the empty literal matches without consuming", func(t *testing.T) {
		out := Literal("")(NewCursor("abc", 0))
		require.True(t, out.IsMatched())
		assert.Equal(t, "", out.Value())
		assert.Equal(t, 0, out.Cursor().Offset())
	})
}
