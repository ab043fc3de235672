package cmd

import (
	"fmt"
	"log/slog"

	"github.com/mirelk/srsexport/internal/snapshot"
	"github.com/mirelk/srsexport/internal/srs"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <profile-store>",
	Short: "Inspect an SRS profile store",
	Long: `Inspect opens the database image inside a profile store and prints the
languages it contains with per-status word counts, without writing any
files.

Example:
  srsexport inspect profile.db`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	sess, err := snapshot.Open(path)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer sess.Close()

	langs, err := srs.Languages(sess.DB())
	if err != nil {
		return err
	}

	fmt.Printf("Profile store: %s\n", path)
	fmt.Printf("  Languages: %d\n", len(langs))

	for _, lang := range langs {
		words, err := srs.WordsForLanguage(sess.DB(), lang)
		if err != nil {
			return err
		}
		b := srs.Classify(words, slog.Default())
		fmt.Printf("    - %s: %d unknown, %d ignored, %d learning, %d known, %d tracked\n",
			lang, len(b.Unknown), len(b.Ignored), len(b.Learning), len(b.Known), len(b.Tracked))
	}

	return nil
}
