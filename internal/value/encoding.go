package value

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jseek/internal/codec"
)

// MarshalJSON writes v as JSON with object keys in sorted order. HTML
// characters are left unescaped.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v.Any()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// UnmarshalJSON replaces v with the tree decoded from data.
func (v *Value) UnmarshalJSON(data []byte) error {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	return v.fromDecoded(decoded)
}

// MarshalYAML hands the native tree to the YAML encoder.
func (v Value) MarshalYAML() (any, error) {
	return v.Any(), nil
}

// UnmarshalYAML replaces v with the tree decoded from a YAML document.
func (v *Value) UnmarshalYAML(data []byte) error {
	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return err
	}
	return v.fromDecoded(decoded)
}

// MarshalCBOR encodes v with Core Deterministic Encoding.
func (v Value) MarshalCBOR() ([]byte, error) {
	return codec.Marshal(v.Any())
}

// UnmarshalCBOR replaces v with the tree decoded from data.
func (v *Value) UnmarshalCBOR(data []byte) error {
	var decoded any
	if err := codec.Unmarshal(data, &decoded); err != nil {
		return err
	}
	return v.fromDecoded(decoded)
}

// fromDecoded accepts, in order, nil, bool, number, string, sequence and
// map. A node matching none of them is reported as corrupted data at its
// coding path.
func (v *Value) fromDecoded(decoded any) error {
	converted, err := Default.Of(decoded)
	if err != nil {
		var invalid *InvalidFormatError
		if errors.As(err, &invalid) {
			return &CorruptedError{Path: invalid.Path, Err: err}
		}
		return err
	}
	*v = converted
	return nil
}
