package snapshot

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// Codec identifies the compression format of a stored database image.
type Codec string

const (
	CodecGzip Codec = "gzip"
	CodecZlib Codec = "zlib"
	CodecXZ   Codec = "xz"
)

var xzMagic = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}

// Detect inspects the leading magic bytes of a blob and reports which
// compression format it carries.
func Detect(data []byte) (Codec, error) {
	if len(data) < 2 {
		return "", fmt.Errorf("blob too small to detect compression (%d bytes)", len(data))
	}

	// gzip magic (1f 8b)
	if data[0] == 0x1f && data[1] == 0x8b {
		return CodecGzip, nil
	}

	// xz magic (fd 37 7a 58 5a 00)
	if len(data) >= len(xzMagic) && bytes.Equal(data[:len(xzMagic)], xzMagic) {
		return CodecXZ, nil
	}

	// zlib: CMF 0x78 and CMF*256+FLG divisible by 31 (the FCHECK rule)
	if data[0] == 0x78 && (uint(data[0])<<8|uint(data[1]))%31 == 0 {
		return CodecZlib, nil
	}

	return "", fmt.Errorf("unrecognised compression magic %02x %02x", data[0], data[1])
}

// Decompress detects the codec of data and consumes the stream to
// completion, returning the decompressed bytes. A corrupt or truncated
// stream propagates the reader's error.
func Decompress(data []byte) ([]byte, error) {
	codec, err := Detect(data)
	if err != nil {
		return nil, err
	}

	br := bytes.NewReader(data)
	var r io.Reader

	switch codec {
	case CodecGzip:
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer gr.Close()
		r = gr
	case CodecZlib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening zlib stream: %w", err)
		}
		defer zr.Close()
		r = zr
	case CodecXZ:
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening xz stream: %w", err)
		}
		r = xr
	}

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s stream: %w", codec, err)
	}
	return out, nil
}
