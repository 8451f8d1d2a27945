package decode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// NewReader wraps r with a decompressor. Closing the returned reader
// releases decompressor state but does not close r.
func NewReader(r io.Reader, compression Compression) (io.ReadCloser, error) {
	switch compression {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("decode gzip: %w", err)
		}
		return zr, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("decode zstd: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, compression)
	}
}

// ReadAll reads r to the end, transparently decompressing it. When
// compression is CompressionNone the leading bytes are sniffed for gzip or
// zstd magic numbers.
func ReadAll(r io.Reader, compression Compression) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if compression == CompressionNone {
		compression = SniffCompression(data)
		if compression == CompressionNone {
			return data, nil
		}
	}

	zr, err := NewReader(bytes.NewReader(data), compression)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", compression, err)
	}
	return out, nil
}
