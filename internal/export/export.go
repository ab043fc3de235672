// Package export runs the snapshot-to-archive pipeline for one language.
package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mirelk/srsexport/internal/snapshot"
	"github.com/mirelk/srsexport/internal/srs"
	"github.com/mirelk/srsexport/internal/wordlist"
)

// Stats holds per-group record counts of a finished export.
type Stats struct {
	Unknown  int
	Ignored  int
	Learning int
	Known    int
	Tracked  int
}

// Run queries the session's word list for language, classifies the records
// and writes the zip archive to w. The logger receives the
// unrecognised-status warnings; nil means slog.Default.
func Run(sess *snapshot.Session, language string, w io.Writer, logger *slog.Logger) (Stats, error) {
	words, err := srs.WordsForLanguage(sess.DB(), language)
	if err != nil {
		return Stats{}, err
	}

	buckets := srs.Classify(words, logger)

	if err := wordlist.WriteArchive(w, buckets); err != nil {
		return Stats{}, fmt.Errorf("writing archive: %w", err)
	}

	return Stats{
		Unknown:  len(buckets.Unknown),
		Ignored:  len(buckets.Ignored),
		Learning: len(buckets.Learning),
		Known:    len(buckets.Known),
		Tracked:  len(buckets.Tracked),
	}, nil
}
