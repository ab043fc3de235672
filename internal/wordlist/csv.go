// Package wordlist renders word groups as delimited text and bundles the
// group files into a zip archive.
package wordlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/mirelk/srsexport/internal/srs"
)

// Header is the fixed three-column header of every group file.
const Header = "dictForm,secondary,hasCard"

// quote wraps a field in double quotes, doubling any embedded quotes.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteCSV renders a word group. Text fields are always quoted, the
// hasCard flag is an unquoted 0/1, and lines are joined with \n without a
// trailing newline, matching the format the host app's importers expect.
func WriteCSV(w io.Writer, words []srs.Word) error {
	lines := make([]string, 0, len(words)+1)
	lines = append(lines, Header)
	for _, wd := range words {
		card := 0
		if wd.HasCard {
			card = 1
		}
		lines = append(lines, fmt.Sprintf("%s,%s,%d", quote(wd.DictForm), quote(wd.Secondary), card))
	}

	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("writing word list: %w", err)
	}
	return nil
}
