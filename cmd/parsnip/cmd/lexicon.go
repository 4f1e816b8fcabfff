package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parsnipdev/parsnip/recipe"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Show the active unit lexicon",
	Long: `Loads and validates the lexicon (--lexicon, or the built-in units)
and prints each canonical unit with the spellings that resolve to it.`,
	RunE: runLexicon,
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}

func runLexicon(cmd *cobra.Command, args []string) error {
	lexicon, err := activeLexicon()
	if err != nil {
		return err
	}

	tags := lexicon.Units()

	if output == outputJSON {
		table := make(map[recipe.Unit][]string, len(tags))
		for _, tag := range tags {
			table[tag] = lexicon.Spellings(tag)
		}
		data, err := json.MarshalIndent(table, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	tagColumn := unitStyle.Width(14)
	fmt.Printf("%-14s %s\n", "UNIT", "SPELLINGS")
	fmt.Println(strings.Repeat("-", 60))
	for _, tag := range tags {
		fmt.Printf("%s %s\n", tagColumn.Render(string(tag)), strings.Join(lexicon.Spellings(tag), ", "))
	}
	fmt.Println()
	fmt.Printf("%d unit(s)\n", len(tags))

	return nil
}
