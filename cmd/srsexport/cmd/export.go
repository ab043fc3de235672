package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mirelk/srsexport/internal/export"
	"github.com/mirelk/srsexport/internal/snapshot"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one language's word list to a zip of CSV files",
	Long: `Export reads the SRS database image from the profile store, groups the
word list for one language by learning status and writes a zip archive
containing unknown.csv, ignored.csv, learning.csv, known.csv and
tracked.csv.

Words flagged as deleted are left out entirely. Words with a status the
tool does not recognise are logged and skipped, but still land in
tracked.csv when their tracked flag is set.

Examples:
  srsexport export --profile profile.db --lang ja
  srsexport export --profile profile.db --lang de -o german-words.zip`,
	RunE: runExport,
}

var (
	exportProfile string
	exportLang    string
	exportOutput  string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportProfile, "profile", "p", "", "Path to the host app's profile store")
	exportCmd.Flags().StringVarP(&exportLang, "lang", "l", "", "Language code to export")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output archive path (default words.zip)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadUserConfig()

	profile := firstNonEmpty(exportProfile, cfg.Profile)
	if profile == "" {
		return fmt.Errorf("no profile store given (use --profile or set it in config.yaml)")
	}
	lang := firstNonEmpty(exportLang, cfg.Language)
	if lang == "" {
		return fmt.Errorf("no language given (use --lang or set it in config.yaml)")
	}
	output := firstNonEmpty(exportOutput, cfg.Output, "words.zip")

	sess, err := snapshot.Open(profile)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer sess.Close()

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	stats, err := export.Run(sess, lang, out, slog.Default())
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}

	fmt.Printf("Exported %s word list to %s\n", lang, output)
	fmt.Printf("  unknown:  %d\n", stats.Unknown)
	fmt.Printf("  ignored:  %d\n", stats.Ignored)
	fmt.Printf("  learning: %d\n", stats.Learning)
	fmt.Printf("  known:    %d\n", stats.Known)
	fmt.Printf("  tracked:  %d\n", stats.Tracked)

	return nil
}
