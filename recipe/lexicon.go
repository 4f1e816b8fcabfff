package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Unit is the canonical tag of a measurement unit, e.g. "cup".  Every
// spelling in a lexicon resolves to one of these.
type Unit string

// Format represents the encoding of a lexicon file
type Format int

const (
	// FormatAuto detects the format from the file extension
	FormatAuto Format = iota

	// FormatTOML represents TOML
	FormatTOML

	// FormatYAML represents YAML
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Lexicon is the table of measurement units a Grammar recognizes: for
// each canonical tag, the spellings that denote it in recipe text.
// Lexicons are immutable once constructed and safe to share between
// grammars.
type Lexicon struct {
	spellings map[Unit][]string
	tags      []Unit
	byWord    map[string]Unit
}

// NewLexicon builds a lexicon from a tag to spellings table and
// validates it: there must be at least one unit, spellings must be
// nonempty words made of letters only, and no spelling may appear
// under two tags.
func NewLexicon(units map[Unit][]string) (*Lexicon, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("lexicon has no units")
	}
	l := &Lexicon{
		spellings: make(map[Unit][]string, len(units)),
		tags:      make([]Unit, 0, len(units)),
		byWord:    make(map[string]Unit),
	}
	for tag := range units {
		if tag == "" {
			return nil, fmt.Errorf("lexicon has a unit with an empty tag")
		}
		l.tags = append(l.tags, tag)
	}
	sort.Slice(l.tags, func(i, j int) bool { return l.tags[i] < l.tags[j] })
	for _, tag := range l.tags {
		words := units[tag]
		if len(words) == 0 {
			return nil, fmt.Errorf("unit %q has no spellings", tag)
		}
		for _, w := range words {
			if w == "" {
				return nil, fmt.Errorf("unit %q has an empty spelling", tag)
			}
			for _, r := range w {
				if !unicode.IsLetter(r) {
					return nil, fmt.Errorf("unit %q spelling %q isn't a word: %q is not a letter", tag, w, string(r))
				}
			}
			if owner, dup := l.byWord[w]; dup {
				return nil, fmt.Errorf("spelling %q appears under both %q and %q", w, owner, tag)
			}
			l.byWord[w] = tag
		}
		l.spellings[tag] = append([]string(nil), words...)
	}
	return l, nil
}

// DefaultLexicon returns the built-in unit table: the common kitchen
// units with their plurals and usual abbreviations.
func DefaultLexicon() *Lexicon {
	l, err := NewLexicon(map[Unit][]string{
		"cup":        {"cup", "cups"},
		"gram":       {"gram", "grams", "g"},
		"tablespoon": {"tablespoon", "tablespoons", "tbsp"},
		"teaspoon":   {"teaspoon", "teaspoons", "tsp"},
		"ounce":      {"ounce", "ounces", "oz"},
		"pound":      {"pound", "pounds", "lb", "lbs"},
		"liter":      {"liter", "liters", "litre", "litres", "l"},
		"milliliter": {"milliliter", "milliliters", "millilitre", "millilitres", "ml"},
		"kilogram":   {"kilogram", "kilograms", "kg"},
		"pinch":      {"pinch", "pinches"},
	})
	if err != nil {
		panic(err)
	}
	return l
}

// lexiconFile is the on-disk schema, shared by both encodings.
type lexiconFile struct {
	Units map[string][]string `toml:"units" yaml:"units"`
}

// LoadLexicon reads a lexicon file, detecting the format from the
// extension (.toml, .yaml or .yml).
func LoadLexicon(path string) (*Lexicon, error) {
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon: %w", err)
	}
	l, err := DecodeLexicon(data, format)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return l, nil
}

// DecodeLexicon parses lexicon data in the given format and validates
// it.  FormatAuto is only meaningful with a file name, so it is
// rejected here.
func DecodeLexicon(data []byte, format Format) (*Lexicon, error) {
	var file lexiconFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported lexicon format %q", format)
	}
	units := make(map[Unit][]string, len(file.Units))
	for tag, words := range file.Units {
		units[Unit(tag)] = words
	}
	return NewLexicon(units)
}

// detectFormat determines the lexicon format from the file extension
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("lexicon %s: unrecognized extension, want .toml, .yaml or .yml", path)
	}
}

// Units returns the canonical tags in sorted order.
func (l *Lexicon) Units() []Unit {
	return append([]Unit(nil), l.tags...)
}

// Spellings returns the spellings registered for tag, in the order
// they were declared.
func (l *Lexicon) Spellings(tag Unit) []string {
	return append([]string(nil), l.spellings[tag]...)
}

// Resolve returns the canonical tag a spelling belongs to.
func (l *Lexicon) Resolve(spelling string) (Unit, bool) {
	tag, ok := l.byWord[spelling]
	return tag, ok
}
