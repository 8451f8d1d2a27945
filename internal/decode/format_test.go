package decode

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatAuto},
		{input: "auto", want: FormatAuto},
		{input: "JSON", want: FormatJSON},
		{input: " jsonc ", want: FormatJSONC},
		{input: "yml", want: FormatYAML},
		{input: "yaml", want: FormatYAML},
		{input: "cbor", want: FormatCBOR},
		{input: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrUnknownFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatStringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{FormatAuto, FormatJSON, FormatJSONC, FormatYAML, FormatCBOR} {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Fatalf("ParseFormat(%q) = %v, %v, want %v", f.String(), got, err, f)
		}
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		wantFormat      Format
		wantCompression Compression
	}{
		{name: "users.json", wantFormat: FormatJSON, wantCompression: CompressionNone},
		{name: "settings.jsonc", wantFormat: FormatJSONC, wantCompression: CompressionNone},
		{name: "deploy.YML", wantFormat: FormatYAML, wantCompression: CompressionNone},
		{name: "dump.cbor", wantFormat: FormatCBOR, wantCompression: CompressionNone},
		{name: "logs/users.json.gz", wantFormat: FormatJSON, wantCompression: CompressionGzip},
		{name: "users.yaml.zst", wantFormat: FormatYAML, wantCompression: CompressionZstd},
		{name: "archive.zstd", wantFormat: FormatAuto, wantCompression: CompressionZstd},
		{name: "-", wantFormat: FormatAuto, wantCompression: CompressionNone},
		{name: "README", wantFormat: FormatAuto, wantCompression: CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			format, compression := Detect(tt.name)
			if format != tt.wantFormat || compression != tt.wantCompression {
				t.Fatalf("Detect(%q) = %v, %v, want %v, %v", tt.name, format, compression, tt.wantFormat, tt.wantCompression)
			}
		})
	}
}

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  Format
	}{
		{name: "object", input: []byte(`  {"a":1}`), want: FormatJSON},
		{name: "array", input: []byte("\n[1,2]"), want: FormatJSON},
		{name: "line comment", input: []byte("// settings\n{}"), want: FormatJSONC},
		{name: "block comment", input: []byte("/* x */ []"), want: FormatJSONC},
		{name: "yaml mapping", input: []byte("name: Mark\n"), want: FormatYAML},
		{name: "yaml sequence", input: []byte("- a\n- b\n"), want: FormatYAML},
		{name: "cbor map", input: []byte{0xa1, 0x61, 'a', 0x01}, want: FormatCBOR},
		{name: "cbor array", input: []byte{0x82, 0x01, 0x02}, want: FormatCBOR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sniff(tt.input); got != tt.want {
				t.Fatalf("Sniff(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSniffCompression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  Compression
	}{
		{name: "gzip", input: []byte{0x1f, 0x8b, 0x08}, want: CompressionGzip},
		{name: "zstd", input: []byte{0x28, 0xb5, 0x2f, 0xfd, 0x00}, want: CompressionZstd},
		{name: "plain", input: []byte(`{}`), want: CompressionNone},
		{name: "short", input: []byte{0x1f}, want: CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SniffCompression(tt.input); got != tt.want {
				t.Fatalf("SniffCompression(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
