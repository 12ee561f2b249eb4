package cmd

import (
	"fmt"

	"github.com/f3rmion/verso/internal/analyzer"
	"github.com/spf13/cobra"
)

var schemeCmd = &cobra.Command{
	Use:   "scheme [file]",
	Short: "Show the rhyme scheme of a text",
	Long: `Label every line with its rhyme group (A, B, C...). Lines ending in
words that rhyme share a label; lines with no words are marked "-".

The text is read from the file, or from stdin when no file or "-" is given.

Example:
  verso scheme poema.txt
  verso scheme --mode assonant poema.txt
  printf 'casa\nmesa\nflor\npastor' | verso scheme --stress orthographic`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScheme,
}

func init() {
	rootCmd.AddCommand(schemeCmd)
	schemeCmd.Flags().Bool("json", false, "output the full report as JSON")
	schemeCmd.Flags().Bool("short", false, "print only the scheme letters, e.g. ABAB")
}

func runScheme(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	short, _ := cmd.Flags().GetBool("short")

	text, err := readText(cmd, args, true)
	if err != nil {
		return err
	}

	report := buildAnalyzer(cfg, logger).Analyze(text)

	switch {
	case asJSON:
		return writeJSON(cmd.OutOrStdout(), report)
	case short:
		fmt.Fprintln(cmd.OutOrStdout(), analyzer.SchemeString(report))
	default:
		fmt.Fprint(cmd.OutOrStdout(), analyzer.FormatTable(report, 0))
	}
	return nil
}
