// Package cmd contains all CLI commands for verso.
package cmd

import (
	"fmt"
	"os"

	"github.com/f3rmion/verso/internal/config"
	"github.com/f3rmion/verso/internal/logging"
	"github.com/f3rmion/verso/internal/verse"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string

	// Set by the root command before any subcommand runs.
	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "verso",
	Short: "Count syllables and find rhymes in Spanish verse",
	Long: `verso analyzes Spanish verse line by line:
  - Syllables per line (hiatus, diphthongs and common exceptions)
  - Rhyme scheme (A, B, C... by the ending from the stressed vowel)
  - Poem structure as a bar chart
  - Saved verse snapshots

Running 'verso' without arguments launches the interactive editor.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
	RunE: runEditor,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/verso)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("mode", "", "rhyme mode: consonant or assonant (default from config)")
	rootCmd.PersistentFlags().String("stress", "", "default stress rule: literal or orthographic (default from config)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("rhyme_mode", rootCmd.PersistentFlags().Lookup("mode"))
	viper.BindPFlag("stress_rule", rootCmd.PersistentFlags().Lookup("stress"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("VERSO")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// setup loads the config file, applies flag and env overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.LoadConfig(getConfigDir())
	if err != nil {
		return err
	}

	if mode := viper.GetString("rhyme_mode"); mode != "" {
		c.RhymeMode = verse.RhymeMode(mode)
	}
	if rule := viper.GetString("stress_rule"); rule != "" {
		c.StressRule = verse.StressRule(rule)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	l, err := logging.New(c.Log, viper.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	cfg = c
	logger = l
	logger.Debug("configuration loaded",
		zap.String("dir", getConfigDir()),
		zap.String("rhyme_mode", string(cfg.RhymeMode)),
		zap.String("stress_rule", string(cfg.StressRule)),
	)
	return nil
}
