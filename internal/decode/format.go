package decode

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an input encoding.
type Format uint8

const (
	FormatAuto Format = iota
	FormatJSON
	FormatJSONC
	FormatYAML
	FormatCBOR
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatJSON:
		return "json"
	case FormatJSONC:
		return "jsonc"
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// ParseFormat parses a format name as accepted by the --format flag.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "jsonc":
		return FormatJSONC, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Compression names a stream compression wrapped around an input.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Detect derives format and compression from a file name such as
// "users.json.zst". Unknown extensions yield FormatAuto.
func Detect(name string) (Format, Compression) {
	compression := CompressionNone
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".gz":
		compression = CompressionGzip
	case ".zst", ".zstd":
		compression = CompressionZstd
	}
	if compression != CompressionNone {
		name = strings.TrimSuffix(name, filepath.Ext(name))
		ext = strings.ToLower(filepath.Ext(name))
	}

	switch ext {
	case ".json":
		return FormatJSON, compression
	case ".jsonc":
		return FormatJSONC, compression
	case ".yaml", ".yml":
		return FormatYAML, compression
	case ".cbor":
		return FormatCBOR, compression
	}
	return FormatAuto, compression
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// SniffCompression inspects the leading bytes of a stream.
func SniffCompression(prefix []byte) Compression {
	switch {
	case bytes.HasPrefix(prefix, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(prefix, zstdMagic):
		return CompressionZstd
	}
	return CompressionNone
}

// Sniff guesses the format of uncompressed data. Text starting with '{' or
// '[' is JSON, a leading CBOR array or map header is CBOR, anything else is
// treated as YAML.
func Sniff(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return FormatJSON
	}

	switch first := trimmed[0]; {
	case first == '{' || first == '[':
		return FormatJSON
	case first == '/' && len(trimmed) > 1 && (trimmed[1] == '/' || trimmed[1] == '*'):
		return FormatJSONC
	}

	switch major := data[0] >> 5; major {
	case 4, 5:
		return FormatCBOR
	}
	return FormatYAML
}
