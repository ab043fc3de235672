package wordlist

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/mirelk/srsexport/internal/srs"
)

// WriteArchive packages the five group files into a zip written to w.
// Entry names and order are fixed.
func WriteArchive(w io.Writer, b srs.Buckets) error {
	groups := []struct {
		name  string
		words []srs.Word
	}{
		{"unknown.csv", b.Unknown},
		{"ignored.csv", b.Ignored},
		{"learning.csv", b.Learning},
		{"known.csv", b.Known},
		{"tracked.csv", b.Tracked},
	}

	zw := zip.NewWriter(w)
	for _, g := range groups {
		f, err := zw.Create(g.name)
		if err != nil {
			return fmt.Errorf("creating %s: %w", g.name, err)
		}
		if err := WriteCSV(f, g.words); err != nil {
			return fmt.Errorf("rendering %s: %w", g.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalising archive: %w", err)
	}
	return nil
}
