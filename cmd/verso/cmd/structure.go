package cmd

import (
	"fmt"

	"github.com/f3rmion/verso/internal/tui"
	"github.com/spf13/cobra"
)

var structureCmd = &cobra.Command{
	Use:   "structure [file]",
	Short: "Chart the syllables of every line",
	Long: `Draw one bar per line with syllables, as long as its count, to see the
meter of a poem at a glance. Empty lines are left out.

Example:
  verso structure soneto.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStructure,
}

func init() {
	rootCmd.AddCommand(structureCmd)
	structureCmd.Flags().Int("width", 80, "maximum chart width in columns")
}

func runStructure(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")

	text, err := readText(cmd, args, true)
	if err != nil {
		return err
	}

	metrics := buildAnalyzer(cfg, logger).Structure(text)
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStructure(metrics, width))
	return nil
}
