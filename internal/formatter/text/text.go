package text

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/jacoelho/jseek/internal/formatter"
	"github.com/jacoelho/jseek/internal/value"
)

// Formatter prints one "source: path = value" line per match, with the
// value as compact JSON.
type Formatter struct {
	writer     *bufio.Writer
	showSource bool

	source *color.Color
	path   *color.Color
	kinds  map[value.Kind]*color.Color
}

// New creates a text formatter. showSource prefixes each line with the
// input name; colorize turns ANSI colours on regardless of the terminal.
func New(w io.Writer, showSource, colorize bool) formatter.Formatter {
	f := &Formatter{
		writer:     bufio.NewWriter(w),
		showSource: showSource,
		source:     color.New(color.FgMagenta),
		path:       color.New(color.FgCyan, color.Bold),
		kinds: map[value.Kind]*color.Color{
			value.NullKind:   color.New(color.FgBlue),
			value.BoolKind:   color.New(color.FgBlue),
			value.NumberKind: color.New(color.FgYellow),
			value.StringKind: color.New(color.FgGreen),
			value.ArrayKind:  color.New(color.Reset),
			value.ObjectKind: color.New(color.Reset),
		},
	}

	for _, c := range f.colors() {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

func (f *Formatter) colors() []*color.Color {
	out := []*color.Color{f.source, f.path}
	for _, c := range f.kinds {
		out = append(out, c)
	}
	return out
}

func (f *Formatter) Format(m formatter.Match) error {
	v, err := m.Node.Verified()
	if err != nil {
		return err
	}

	if f.showSource {
		if _, err := f.source.Fprint(f.writer, m.Source); err != nil {
			return err
		}
		if _, err := f.writer.WriteString(": "); err != nil {
			return err
		}
	}
	if _, err := f.path.Fprint(f.writer, formatter.DisplayPath(m.Path)); err != nil {
		return err
	}
	if _, err := f.writer.WriteString(" = "); err != nil {
		return err
	}
	if _, err := f.kinds[v.Kind()].Fprint(f.writer, v.String()); err != nil {
		return err
	}
	return f.writer.WriteByte('\n')
}

func (f *Formatter) Flush() error {
	return f.writer.Flush()
}
