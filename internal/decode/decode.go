// Package decode turns encoded bytes into the dynamic trees that
// document.New classifies.
//
// JSON goes through encoding/json, JSONC is stripped of comments and
// trailing commas by tidwall/jsonc first, YAML is read by goccy/go-yaml and
// CBOR by fxamacker/cbor. Decoder errors are returned wrapped with the
// format name and are otherwise untouched.
package decode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"

	"github.com/jacoelho/jseek/internal/codec"
	"github.com/jacoelho/jseek/internal/document"
)

// Dynamic decodes data into nil, bool, numbers, string, []any and
// map[string]any. FormatAuto sniffs the content first.
func Dynamic(format Format, data []byte) (any, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	if format == FormatAuto {
		format = Sniff(data)
	}
	if format != FormatCBOR && len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	var (
		decoded any
		err     error
	)
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &decoded)
	case FormatJSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), &decoded)
	case FormatYAML:
		err = yaml.Unmarshal(data, &decoded)
	case FormatCBOR:
		err = codec.Unmarshal(data, &decoded)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return decoded, nil
}

// Document decodes data and wraps the result without verifying containers.
func Document(format Format, data []byte) (document.Document, error) {
	decoded, err := Dynamic(format, data)
	if err != nil {
		return document.Document{}, err
	}
	return document.New(decoded)
}

// JSON is Document(FormatJSON, data).
func JSON(data []byte) (document.Document, error) {
	return Document(FormatJSON, data)
}
