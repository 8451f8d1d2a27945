// Package runner drives a jseek invocation: open each input, decode it,
// search it with the configured bindings and format the matches.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jacoelho/jseek/internal/config"
	"github.com/jacoelho/jseek/internal/decode"
	"github.com/jacoelho/jseek/internal/document"
	"github.com/jacoelho/jseek/internal/exit"
	"github.com/jacoelho/jseek/internal/formatter"
	"github.com/jacoelho/jseek/internal/formatter/jsonl"
	"github.com/jacoelho/jseek/internal/formatter/text"
	"github.com/jacoelho/jseek/internal/formatter/yaml"
	"github.com/jacoelho/jseek/internal/logging"
	"github.com/jacoelho/jseek/internal/path"
	"github.com/jacoelho/jseek/internal/search"
	"github.com/jacoelho/jseek/internal/source"
)

// InputResult summarises the search of one input.
type InputResult struct {
	Name     string
	Matches  int
	Duration time.Duration
	Error    error
}

type Runner struct {
	config    *config.Config
	opener    *source.Opener
	output    io.Writer
	errOutput io.Writer
	logger    *slog.Logger

	formatter formatter.Formatter
	seen      map[[32]byte]struct{}
}

func New(cfg *config.Config) (*Runner, *exit.Result) {
	client, err := cfg.HTTPClient()
	if err != nil {
		return nil, exit.Errorf("Error creating runner: %v\n", err)
	}

	return &Runner{
		config:    cfg,
		opener:    source.New(client, cfg.RateLimit),
		output:    os.Stdout,
		errOutput: os.Stderr,
		seen:      make(map[[32]byte]struct{}),
	}, nil
}

func (r *Runner) SetOutput(w io.Writer) {
	r.output = w
}

func (r *Runner) SetErrorOutput(w io.Writer) {
	r.errOutput = w
}

func (r *Runner) SetStdin(in io.Reader) {
	r.opener.SetStdin(in)
}

func (r *Runner) payloadWriter() io.Writer {
	if r.output == nil {
		return io.Discard
	}
	return r.output
}

func (r *Runner) errorWriter() io.Writer {
	if r.errOutput == nil {
		return io.Discard
	}
	return r.errOutput
}

func (r *Runner) newFormatter() formatter.Formatter {
	w := r.payloadWriter()
	switch r.config.Output {
	case config.OutputJSON:
		return jsonl.New(w)
	case config.OutputYAML:
		return yaml.New(w)
	default:
		return text.New(w, len(r.config.Inputs) > 1, r.colorize())
	}
}

func (r *Runner) colorize() bool {
	switch r.config.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return logging.IsTerminal(r.payloadWriter())
}

// Run searches every input in order and returns the process exit code.
// A failing input is logged and the remaining inputs are still searched.
func (r *Runner) Run(ctx context.Context) int {
	r.logger = logging.New(r.errorWriter(), r.config.Debug)
	r.formatter = r.newFormatter()

	results := make([]InputResult, 0, len(r.config.Inputs))
	for _, input := range r.config.Inputs {
		select {
		case <-ctx.Done():
			r.logger.Error("interrupted", "completed", len(results), "inputs", len(r.config.Inputs))
			_ = r.formatter.Flush()
			return exit.CodeError
		default:
		}

		start := time.Now()
		matches, err := r.searchInput(ctx, input)
		result := InputResult{
			Name:     input,
			Matches:  matches,
			Duration: time.Since(start),
			Error:    err,
		}
		results = append(results, result)

		if err != nil {
			r.logger.Error("search failed", "input", input, "error", err)
			continue
		}
		r.logger.Debug("searched input", "input", input, "matches", matches, "duration", result.Duration)
	}

	if err := r.formatter.Flush(); err != nil {
		r.logger.Error("failed to write output", "error", err)
		return exit.CodeError
	}

	total, failed := summarize(results)
	r.logger.Debug("done", "inputs", len(results), "matches", total, "failed", failed)
	return exit.Code(total, failed > 0)
}

func summarize(results []InputResult) (matches, failed int) {
	for _, result := range results {
		matches += result.Matches
		if result.Error != nil {
			failed++
		}
	}
	return matches, failed
}

func (r *Runner) searchInput(ctx context.Context, location string) (int, error) {
	in, err := r.opener.Open(ctx, location)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	if in.RequestID != "" {
		r.logger.Debug("fetched input", "input", location, "request_id", in.RequestID)
	}

	doc, err := r.load(in)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", in.Name, err)
	}

	matches := 0
	s := search.NewDocument(doc)
	for _, b := range r.config.Bindings {
		s.OnVisit(b.Paths, func(at path.Path, node document.Document) error {
			emitted, err := r.emit(in.Name, b, at, node)
			if emitted {
				matches++
			}
			return err
		})
	}

	if err := s.Run(); err != nil {
		return matches, fmt.Errorf("%s: %w", in.Name, err)
	}
	return matches, nil
}

func (r *Runner) load(in *source.Input) (document.Document, error) {
	format, compression := decode.Detect(in.Hint)
	if r.config.Format != decode.FormatAuto {
		format = r.config.Format
	}

	data, err := decode.ReadAll(in.Body, compression)
	if err != nil {
		return document.Document{}, err
	}

	r.logger.Debug("decoding input", "input", in.Name, "format", format, "compression", compression, "bytes", len(data))
	return decode.Document(format, data)
}

// emit verifies node when --verify or --unique asks for it, drops repeated
// values under --unique, and hands the match to the formatter.
func (r *Runner) emit(sourceName string, b config.Binding, at path.Path, node document.Document) (bool, error) {
	if r.config.Verify || r.config.Unique {
		v, err := node.Verified()
		if err != nil {
			return false, fmt.Errorf("%s: %w", at.JSONPath(), err)
		}
		if r.config.Unique {
			digest := v.Hash()
			if _, ok := r.seen[digest]; ok {
				return false, nil
			}
			r.seen[digest] = struct{}{}
		}
		node = document.Verified(v)
	}

	err := r.formatter.Format(formatter.Match{
		Source:  sourceName,
		Binding: b.Name,
		Path:    at,
		Node:    node,
	})
	return err == nil, err
}
