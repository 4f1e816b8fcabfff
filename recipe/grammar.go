package recipe

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/parsnipdev/parsnip"
)

// Measurement is one parsed recipe line: an amount, the canonical
// unit it was given in, and the ingredient it applies to.
type Measurement struct {
	Amount     float64 `json:"amount"`
	Unit       Unit    `json:"unit"`
	Ingredient string  `json:"ingredient"`
}

func (m Measurement) String() string {
	return fmt.Sprintf("%g %s %s", m.Amount, m.Unit, m.Ingredient)
}

// Word matches a run of one or more letters and produces it as a
// string.
func Word() parsnip.Parser[string] {
	letter := parsnip.Satisfy("expected letter", unicode.IsLetter)
	return parsnip.Map(parsnip.OneOrMore(letter), func(rs []rune) string { return string(rs) })
}

// WordEquals matches a whole word equal to want.  A different word is
// rejected with the word itself in the message, and the cursor stays
// put, so WordEquals alternatives stack cleanly inside a Choice.
func WordEquals(want string) parsnip.Parser[string] {
	expectation := fmt.Sprintf("expected `%s`", want)
	return parsnip.SatisfyOver(expectation, Word(), func(w string) bool { return w == want })
}

// Number matches an amount written as a decimal ("2.5"), a fraction
// ("1/2"), or a plain integer ("10"), tried in that order.  The
// decimal and fraction forms share their leading digits with the
// integer form, so their structure is wrapped in RewindOnFailure; a
// recognized fraction with a zero denominator is still an error, and
// that one is allowed to stand.
func Number() parsnip.Parser[float64] {
	digit := parsnip.Satisfy("expected digit", func(r rune) bool { return r >= '0' && r <= '9' })
	digits := parsnip.Map(parsnip.OneOrMore(digit), func(rs []rune) string { return string(rs) })

	decimal := parsnip.RewindOnFailure(parsnip.Map(
		parsnip.Sequence3(digits, parsnip.Rune('.'), digits),
		func(t parsnip.Tuple3[string, rune, string]) float64 {
			v, _ := strconv.ParseFloat(t.A+"."+t.C, 64)
			return v
		}))

	fraction := parsnip.Bind(
		parsnip.RewindOnFailure(parsnip.Sequence3(digits, parsnip.Rune('/'), digits)),
		func(t parsnip.Tuple3[string, rune, string]) parsnip.Parser[float64] {
			num, _ := strconv.ParseFloat(t.A, 64)
			den, _ := strconv.ParseFloat(t.C, 64)
			if den == 0 {
				return parsnip.Fail[float64]("expected nonzero denominator")
			}
			return parsnip.Pure(num / den)
		})

	integer := parsnip.Map(digits, func(ds string) float64 {
		v, _ := strconv.ParseFloat(ds, 64)
		return v
	})

	return parsnip.Choice("expected number", []parsnip.Parser[float64]{decimal, fraction, integer})
}

// Grammar holds the parsers for one lexicon.  They are assembled once
// here and reused for every line; a Grammar is safe for concurrent
// use.
type Grammar struct {
	lexicon     *Lexicon
	unit        parsnip.Parser[Unit]
	measurement parsnip.Parser[Measurement]
	line        parsnip.Parser[Measurement]
}

// NewGrammar builds the measurement grammar for a lexicon.
func NewGrammar(lexicon *Lexicon) *Grammar {
	g := &Grammar{lexicon: lexicon}
	g.unit = buildUnit(lexicon)
	g.measurement = buildMeasurement(g.unit)
	g.line = parsnip.Map(
		parsnip.Sequence3(g.measurement, trailingSpacing(), parsnip.EndOfInput()),
		func(t parsnip.Tuple3[Measurement, string, struct{}]) Measurement { return t.A })
	return g
}

// Lexicon returns the lexicon the grammar was built from.
func (g *Grammar) Lexicon() *Lexicon { return g.lexicon }

// Unit matches any spelling the lexicon knows and produces its
// canonical tag.  Spellings are tried tag by tag in sorted tag order,
// each tag's spellings in declaration order; when none of them is the
// word under the cursor the failure is simply "expected measurement
// unit".
func (g *Grammar) Unit() parsnip.Parser[Unit] { return g.unit }

// Measurement matches an amount, a unit, an optional "of", and the
// ingredient words.
func (g *Grammar) Measurement() parsnip.Parser[Measurement] { return g.measurement }

// Line matches a Measurement followed by optional spacing and the end
// of the input.
func (g *Grammar) Line() parsnip.Parser[Measurement] { return g.line }

// ParseLine parses one full line of recipe text.
func (g *Grammar) ParseLine(text string) (Measurement, error) {
	return parsnip.Run(g.line, text)
}

func buildUnit(lexicon *Lexicon) parsnip.Parser[Unit] {
	var alternatives []parsnip.Parser[Unit]
	for _, tag := range lexicon.Units() {
		tag := tag // per-iteration copy: the closure below must capture this tag, not the loop variable (pre-1.22 semantics)
		for _, spelling := range lexicon.Spellings(tag) {
			alternatives = append(alternatives,
				parsnip.Map(WordEquals(spelling), func(string) Unit { return tag }))
		}
	}
	return parsnip.Choice("expected measurement unit", alternatives)
}

func buildMeasurement(unit parsnip.Parser[Unit]) parsnip.Parser[Measurement] {
	spacedUnit := parsnip.Map(
		parsnip.Sequence2(spacing(), unit),
		func(t parsnip.Tuple2[string, Unit]) Unit { return t.B })

	// "of" is dressing between the unit and the ingredient; absent is
	// fine, but a different word must be left for the ingredient
	of := parsnip.Optional(parsnip.RewindOnFailure(parsnip.Map(
		parsnip.Sequence2(spacing(), WordEquals("of")),
		func(t parsnip.Tuple2[string, string]) string { return t.B })))

	ingredientWord := parsnip.RewindOnFailure(parsnip.Map(
		parsnip.Sequence2(spacing(), Word()),
		func(t parsnip.Tuple2[string, string]) string { return t.B }))
	ingredient := parsnip.MapFailure(
		parsnip.Map(parsnip.OneOrMore(ingredientWord), func(ws []string) string {
			return strings.Join(ws, " ")
		}),
		func(string) string { return "expected ingredient" })

	return parsnip.Map(
		parsnip.Sequence4(Number(), spacedUnit, of, ingredient),
		func(t parsnip.Tuple4[float64, Unit, string, string]) Measurement {
			return Measurement{Amount: t.A, Unit: t.B, Ingredient: t.D}
		})
}

func spacing() parsnip.Parser[string] {
	space := parsnip.Satisfy("expected space", func(r rune) bool { return r == ' ' || r == '\t' })
	return parsnip.Map(parsnip.OneOrMore(space), func(rs []rune) string { return string(rs) })
}

func trailingSpacing() parsnip.Parser[string] {
	space := parsnip.Satisfy("expected space", func(r rune) bool { return r == ' ' || r == '\t' })
	return parsnip.Map(parsnip.ZeroOrMore(space), func(rs []rune) string { return string(rs) })
}
