package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/verso/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize verso configuration",
	Long: `Create the config directory with a default config.yaml:

  rhyme_mode:  consonant or assonant
  stress_rule: literal or orthographic
  lemma_file:  optional JSONL file of {"form", "lemma"} entries
  exceptions:  words with a fixed syllable count
  database:    snapshot database path
  log:         level and format (console or json)`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	dir := getConfigDir()
	path := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
