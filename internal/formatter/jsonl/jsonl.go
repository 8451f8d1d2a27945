package jsonl

import (
	"encoding/json"
	"io"

	"github.com/jacoelho/jseek/internal/formatter"
	"github.com/jacoelho/jseek/internal/value"
)

type record struct {
	Source   string      `json:"source"`
	Binding  string      `json:"binding"`
	Path     string      `json:"path"`
	JSONPath string      `json:"jsonpath"`
	Value    value.Value `json:"value"`
}

// Formatter writes one JSON object per match.
type Formatter struct {
	encoder *json.Encoder
}

func New(w io.Writer) formatter.Formatter {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return &Formatter{encoder: encoder}
}

func (f *Formatter) Format(m formatter.Match) error {
	v, err := m.Node.Verified()
	if err != nil {
		return err
	}

	return f.encoder.Encode(record{
		Source:   m.Source,
		Binding:  m.Binding,
		Path:     m.Path.String(),
		JSONPath: m.Path.JSONPath(),
		Value:    v,
	})
}

// Flush is a no-op; every record is written as it is formatted.
func (f *Formatter) Flush() error {
	return nil
}
