package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/verso/internal/config"
	"github.com/f3rmion/verso/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var editCmd = &cobra.Command{
	Use:     "edit [file]",
	Aliases: []string{"interactive", "i"},
	Short:   "Write verse with live syllable and rhyme analysis",
	Long: `Open the interactive editor. Every line shows its syllable count and
rhyme label as you type, and the count of the current line is drawn large.

Keys:
  ctrl+s  save the current line as a snapshot
  ctrl+y  copy the analysis to the clipboard
  ctrl+r  switch between consonant and assonant rhyme
  esc     quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEditor,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// runEditor launches the interactive editor, optionally loading a file.
func runEditor(cmd *cobra.Command, args []string) error {
	if err := config.EnsureConfigDir(getConfigDir()); err != nil {
		logger.Warn("could not set up config dir", zap.Error(err))
	}

	var text string
	if len(args) == 1 {
		t, err := readText(cmd, args, true)
		if err != nil {
			return err
		}
		text = t
	}

	a := buildAnalyzer(cfg, logger)

	// The editor owns the terminal; nothing may log to stderr while it runs.
	quiet := zap.NewNop()

	var store tui.SnapshotStore
	s, err := openStore(cmd.Context(), quiet)
	if err != nil {
		logger.Warn("snapshots disabled", zap.Error(err))
	} else {
		defer s.Close()
		store = s
	}

	p := tea.NewProgram(
		tui.New(a, store, quiet).WithText(text),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	return nil
}
