package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/verso/internal/clipboard"
	"github.com/f3rmion/verso/internal/snapshot"
	"github.com/f3rmion/verso/internal/verse"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var snapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Aliases: []string{"snap"},
	Short:   "Manage saved verses",
	Long: `Save verses you want to keep, with their syllable count and rhyme
ending, and list, copy or remove them later.

Snapshots live in snapshots.db inside the config directory.`,
}

var snapshotAddCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Save a verse",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSnapshotAdd,
}

var snapshotListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved verses, newest first",
	Args:    cobra.NoArgs,
	RunE:    runSnapshotList,
}

var snapshotRmCmd = &cobra.Command{
	Use:     "rm <id...>",
	Aliases: []string{"remove"},
	Short:   "Remove saved verses",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSnapshotRm,
}

var snapshotCopyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a saved verse to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotCopy,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotAddCmd, snapshotListCmd, snapshotRmCmd, snapshotCopyCmd)
	snapshotListCmd.Flags().Bool("json", false, "output as JSON")
}

func runSnapshotAdd(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	a := buildAnalyzer(cfg, logger)

	store, err := openStore(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	ending := a.Classifier().Ending(verse.LastWord(text))
	snap, err := store.Add(cmd.Context(), text, a.Counter().Count(text), ending)
	switch {
	case errors.Is(err, snapshot.ErrExists):
		fmt.Fprintf(cmd.OutOrStdout(), "Already saved as %s\n", snap.ID)
		return nil
	case err != nil:
		return err
	}

	logger.Debug("snapshot added", zap.String("id", snap.ID))
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d syllables)\n", snap.ID, snap.Syllables)
	return nil
}

func runSnapshotList(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := openStore(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	if asJSON {
		if snaps == nil {
			snaps = []snapshot.Snapshot{}
		}
		return writeJSON(cmd.OutOrStdout(), snaps)
	}
	writeSnapshots(cmd.OutOrStdout(), snaps)
	return nil
}

func writeSnapshots(w io.Writer, snaps []snapshot.Snapshot) {
	if len(snaps) == 0 {
		fmt.Fprintln(w, "No snapshots saved.")
		return
	}
	for _, s := range snaps {
		fmt.Fprintf(w, "%s  %s  %3d  %s  %s\n",
			s.ID,
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Syllables,
			runewidth.FillRight(s.Rhyme, 6),
			runewidth.Truncate(s.Text, 60, "…"),
		)
	}
}

func runSnapshotRm(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	var errs []error
	for _, id := range args {
		if err := store.Remove(cmd.Context(), id); err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
	}
	return errors.Join(errs...)
}

func runSnapshotCopy(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	snap, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := clipboard.Write(snap.Text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Copied:", snap.Text)
	return nil
}
