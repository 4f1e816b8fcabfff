package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/parsnipdev/parsnip"
	"github.com/parsnipdev/parsnip/recipe"
)

var parseCmd = &cobra.Command{
	Use:   "parse [line...]",
	Short: "Parse measurement lines",
	Long: `Parses each argument as one measurement line.  With no arguments it
reads lines from stdin in a small prompt loop.

Examples:
  parsnip parse "2 cups of flour"
  parsnip parse "1/2 tsp salt" "3 tbsp of butter"
  parsnip parse --output json "250 ml of milk"
  parsnip parse`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	lexicon, err := activeLexicon()
	if err != nil {
		return err
	}
	grammar := recipe.NewGrammar(lexicon)

	if len(args) == 0 {
		repl(grammar)
		return nil
	}

	failed := 0
	for _, line := range args {
		m, err := grammar.ParseLine(line)
		if err != nil {
			failed++
			printParseError(line, err)
			continue
		}
		printMeasurement(m)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d line(s) did not parse", failed, len(args))
	}
	return nil
}

// repl reads lines from stdin until EOF, one measurement per line.
// Parse failures are reported and the loop keeps going.
func repl(grammar *recipe.Grammar) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		text, _ := reader.ReadString('\n')

		if text == "" {
			fmt.Println()
			return
		}
		if text == "\n" {
			continue
		}

		line := strings.TrimRight(text, "\n")
		m, err := grammar.ParseLine(line)
		if err != nil {
			printParseError(line, err)
		} else {
			printMeasurement(m)
		}
	}
}

func printMeasurement(m recipe.Measurement) {
	switch output {
	case outputJSON:
		data, err := json.Marshal(m)
		if err != nil {
			printParseError("", err)
			return
		}
		fmt.Println(string(data))
	default:
		fmt.Printf("%s %s %s\n",
			amountStyle.Render(fmt.Sprintf("%g", m.Amount)),
			unitStyle.Render(string(m.Unit)),
			ingredientStyle.Render(m.Ingredient))
	}
}

// printParseError points at the offset the parser gave up at.  The
// caret lines up for single-width runes, which recipe lines are.
func printParseError(line string, err error) {
	var perr *parsnip.ParseError
	if !errors.As(err, &perr) {
		fmt.Printf("%s %s\n", errorStyle.Render("error:"), err)
		return
	}
	fmt.Printf("%s %s\n", errorStyle.Render("error:"), perr.Expectation)
	if line != "" {
		fmt.Printf("  %s\n", line)
		fmt.Printf("  %s%s\n",
			strings.Repeat(" ", perr.Offset),
			mutedStyle.Render(fmt.Sprintf("^ offset %d", perr.Offset)))
	}
}
