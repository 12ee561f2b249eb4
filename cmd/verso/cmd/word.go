package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/verso/internal/analyzer"
	"github.com/spf13/cobra"
)

var wordCmd = &cobra.Command{
	Use:   "word <word...>",
	Short: "Break down single words",
	Long: `Show, for each word:
  - Syllable count
  - Index of the stressed vowel
  - Rhyme ending (from the stressed vowel on)
  - Vowel pairs counted as diphthongs or hiatus

Example:
  verso word canción
  verso word poeta murciélago`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWord,
}

func init() {
	rootCmd.AddCommand(wordCmd)
	wordCmd.Flags().Bool("json", false, "output as JSON")
}

func runWord(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	a := buildAnalyzer(cfg, logger)

	words := make([]analyzer.Word, 0, len(args))
	for _, arg := range args {
		for _, w := range strings.Fields(arg) {
			words = append(words, a.InspectWord(w))
		}
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), words)
	}
	for i, w := range words {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		writeWord(cmd.OutOrStdout(), w)
	}
	return nil
}

func writeWord(w io.Writer, word analyzer.Word) {
	fmt.Fprintf(w, "%-10s %s\n", "Word:", word.Word)
	fmt.Fprintf(w, "%-10s %d\n", "Syllables:", word.Syllables)
	if word.Stressed >= 0 {
		fmt.Fprintf(w, "%-10s %d (%c)\n", "Stress:", word.Stressed, []rune(word.Word)[word.Stressed])
	} else {
		fmt.Fprintf(w, "%-10s none\n", "Stress:")
	}
	fmt.Fprintf(w, "%-10s %s\n", "Ending:", word.Ending)

	for _, c := range word.Clusters {
		fmt.Fprintf(w, "%-10s %s at %d, %s\n", "Pair:", c.Pair, c.Index, c.Kind)
	}
}
