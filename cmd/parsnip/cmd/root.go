package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/parsnipdev/parsnip/recipe"
)

var (
	lexiconPath string
	output      = outputText
)

// Color palette shared by all subcommands
var (
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	amountStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	unitStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	ingredientStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

var rootCmd = &cobra.Command{
	Use:   "parsnip",
	Short: "Parse recipe measurements from the command line",
	Long: `parsnip turns recipe measurement lines like "2 cups of flour" into
structured amounts, units and ingredients.

The unit table is configurable: point --lexicon at a TOML or YAML
file to teach it your own units.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "Lexicon file, .toml or .yaml (default: built-in units)")
	rootCmd.PersistentFlags().Var(&output, "output", "Output format: text or json")
}

// activeLexicon loads the --lexicon file, or falls back to the
// built-in units.
func activeLexicon() (*recipe.Lexicon, error) {
	if lexiconPath == "" {
		return recipe.DefaultLexicon(), nil
	}
	return recipe.LoadLexicon(lexiconPath)
}

// outputFormat is a pflag.Value with exactly two states, so cobra can
// reject anything else at flag-parsing time.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(v string) error {
	switch outputFormat(v) {
	case outputText, outputJSON:
		*f = outputFormat(v)
		return nil
	}
	return fmt.Errorf("must be one of: text, json")
}

func (f *outputFormat) Type() string { return "format" }
