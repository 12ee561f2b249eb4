package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/f3rmion/verso/internal/analyzer"
	"github.com/f3rmion/verso/internal/config"
	"github.com/f3rmion/verso/internal/lemma"
	"github.com/f3rmion/verso/internal/rhyme"
	"github.com/f3rmion/verso/internal/snapshot"
	"github.com/f3rmion/verso/internal/syllable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildAnalyzer wires the lemma dictionary, counter and classifier from c.
// A lemma file that cannot be read is logged and skipped.
func buildAnalyzer(c *config.Config, log *zap.Logger) *analyzer.Analyzer {
	dict := lemma.NewDictionary()
	if c.LemmaFile != "" {
		if err := dict.LoadFromFile(c.LemmaFile); err != nil {
			log.Warn("could not load lemma file", zap.String("path", c.LemmaFile), zap.Error(err))
		} else {
			log.Debug("lemma file loaded", zap.String("path", c.LemmaFile), zap.Int("entries", dict.Size()))
		}
	}

	return analyzer.New(
		syllable.NewCounter(dict, c.Exceptions),
		rhyme.NewClassifier(c.RhymeMode, c.StressRule),
	)
}

// readText returns the joined args, the contents of the file named by a
// single path arg, or stdin. asFile selects how a single arg is read.
func readText(cmd *cobra.Command, args []string, asFile bool) (string, error) {
	switch {
	case len(args) == 0 || (asFile && args[0] == "-"):
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	case asFile:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		return strings.Join(args, " "), nil
	}
}

// openStore opens the snapshot database of the current config.
func openStore(ctx context.Context, log *zap.Logger) (*snapshot.Store, error) {
	path := cfg.DatabasePath(getConfigDir())
	store, err := snapshot.Open(ctx, path, log)
	if err != nil {
		return nil, err
	}
	log.Debug("snapshot store opened", zap.String("path", path))
	return store, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
