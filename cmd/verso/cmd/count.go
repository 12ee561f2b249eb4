package cmd

import (
	"fmt"
	"io"

	"github.com/f3rmion/verso/internal/verse"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count [text...]",
	Short: "Count syllables per line",
	Long: `Count the syllables of every line of a text, plus the total.

The text is taken from the arguments, or from stdin when there are none.

Example:
  verso count "Tengo el corazón"
  cat poema.txt | verso count`,
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().Bool("json", false, "output as JSON")
}

type countResult struct {
	Lines []verse.LineMetrics `json:"lines"`
	Total int                 `json:"total"`
}

func runCount(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	text, err := readText(cmd, args, false)
	if err != nil {
		return err
	}

	lines := buildAnalyzer(cfg, logger).Counter().CountLines(text)
	result := countResult{Lines: lines}
	for _, l := range lines {
		result.Total += l.Syllables
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	writeCount(cmd.OutOrStdout(), result)
	return nil
}

func writeCount(w io.Writer, r countResult) {
	for _, l := range r.Lines {
		fmt.Fprintf(w, "%4d  %3d  %s\n", l.Number, l.Syllables, l.Text)
	}
	fmt.Fprintf(w, "Total: %d syllables\n", r.Total)
}
