package parsnip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	digit := Satisfy("expected digit", isDigit)

	t.Run("returns the value on a match", func(t *testing.T) {
		v, err := Run(digit, "7bc")
		require.NoError(t, err)
		assert.Equal(t, '7', v)
	})

	t.Run("a failure becomes a parse error", func(t *testing.T) {
		_, err := Run(digit, "bc")
		require.Error(t, err)
		assert.Equal(t, `expected digit; actual: "b"; index=0 @ 0`, err.Error())

		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, `expected digit; actual: "b"; index=0`, perr.Expectation)
		assert.Equal(t, 0, perr.Offset)
	})

	t.Run("trailing input is fine unless the grammar says otherwise", func(t *testing.T) {
		v, err := Run(OneOrMore(digit), "123bc")
		require.NoError(t, err)
		assert.Equal(t, []rune{'1', '2', '3'}, v)

		whole := Sequence2(OneOrMore(digit), EndOfInput())
		_, err = Run(whole, "123bc")
		require.Error(t, err)
		assert.Equal(t, "not eof @ 3", err.Error())
	})
}
