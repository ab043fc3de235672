package snapshot

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/ulikunitz/xz"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func zlibBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	return buf.Bytes()
}

func xzBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := xw.Write(data); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	return buf.Bytes()
}

func TestDetect(t *testing.T) {
	payload := []byte("sqlite format 3")

	tests := []struct {
		name string
		blob []byte
		want Codec
	}{
		{"gzip", gzipBytes(t, payload), CodecGzip},
		{"zlib", zlibBytes(t, payload), CodecZlib},
		{"xz", xzBytes(t, payload), CodecXZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.blob)
			if err != nil {
				t.Fatalf("detect: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDetectUnknownMagic(t *testing.T) {
	if _, err := Detect([]byte{0x00, 0x01, 0x02, 0x03}); err == nil {
		t.Fatal("expected error for unknown magic")
	}
}

func TestDetectTooSmall(t *testing.T) {
	if _, err := Detect([]byte{0x1f}); err == nil {
		t.Fatal("expected error for 1-byte blob")
	}
}

func TestDecompressRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("word record "), 1024)

	for _, blob := range [][]byte{
		gzipBytes(t, payload),
		zlibBytes(t, payload),
		xzBytes(t, payload),
	} {
		got, err := Decompress(blob)
		if err != nil {
			t.Fatalf("decompress: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Fatalf("payload mismatch: got %d bytes, want %d", len(got), len(payload))
		}
	}
}

func TestDecompressTruncatedStream(t *testing.T) {
	blob := gzipBytes(t, bytes.Repeat([]byte("abcdefgh"), 512))
	if _, err := Decompress(blob[:len(blob)/2]); err == nil {
		t.Fatal("expected error for truncated stream")
	}
}
