package yaml

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/jseek/internal/formatter"
	"github.com/jacoelho/jseek/internal/value"
)

type record struct {
	Source  string      `yaml:"source"`
	Binding string      `yaml:"binding"`
	Path    string      `yaml:"path"`
	Value   value.Value `yaml:"value"`
}

// Formatter writes one YAML document per match, separated by "---".
type Formatter struct {
	writer  io.Writer
	written int
}

func New(w io.Writer) formatter.Formatter {
	return &Formatter{writer: w}
}

func (f *Formatter) Format(m formatter.Match) error {
	v, err := m.Node.Verified()
	if err != nil {
		return err
	}

	payload, err := yaml.Marshal(record{
		Source:  m.Source,
		Binding: m.Binding,
		Path:    m.Path.String(),
		Value:   v,
	})
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	if f.written > 0 {
		if _, err := io.WriteString(f.writer, "---\n"); err != nil {
			return err
		}
	}
	f.written++

	_, err = f.writer.Write(payload)
	return err
}

// Flush is a no-op; every document is written as it is formatted.
func (f *Formatter) Flush() error {
	return nil
}
