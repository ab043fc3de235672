package wordlist

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirelk/srsexport/internal/srs"
)

func readEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	entries := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		entries[f.Name] = string(content)
	}
	return entries
}

func TestWriteArchiveEntryNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, srs.Buckets{}))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"unknown.csv", "ignored.csv", "learning.csv", "known.csv", "tracked.csv"}, names)
}

func TestWriteArchiveKnownWord(t *testing.T) {
	b := srs.Buckets{
		Known: []srs.Word{{DictForm: "foo", Secondary: "bar", HasCard: true}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, b))

	entries := readEntries(t, buf.Bytes())
	assert.Equal(t, "dictForm,secondary,hasCard\n\"foo\",\"bar\",1", entries["known.csv"])
	for _, name := range []string{"unknown.csv", "ignored.csv", "learning.csv", "tracked.csv"} {
		assert.Equal(t, Header, entries[name], "%s should contain only the header", name)
	}
}

func TestWriteArchiveTrackedDuplicatesStatusGroup(t *testing.T) {
	w := srs.Word{DictForm: "見る", Secondary: "みる", HasCard: false}
	b := srs.Buckets{
		Learning: []srs.Word{w},
		Tracked:  []srs.Word{w},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteArchive(&buf, b))

	entries := readEntries(t, buf.Bytes())
	want := "dictForm,secondary,hasCard\n\"見る\",\"みる\",0"
	assert.Equal(t, want, entries["learning.csv"])
	assert.Equal(t, want, entries["tracked.csv"])
}
