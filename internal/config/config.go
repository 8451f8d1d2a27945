package config

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/jacoelho/jseek/internal/decode"
	"github.com/jacoelho/jseek/internal/exit"
	"github.com/jacoelho/jseek/internal/httpclient"
	"github.com/jacoelho/jseek/internal/path"
	"github.com/jacoelho/jseek/internal/source"
)

const (
	// DefaultTimeout bounds a single URL fetch.
	DefaultTimeout = 30 * time.Second
)

// Version is set at build time.
var Version = "dev"

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	ErrNoArguments   = errors.New("no arguments provided")
	ErrNoPaths       = errors.New("no paths specified")
	ErrEmptyPath     = errors.New("path must contain at least one segment")
	ErrInvalidOutput = errors.New("output must be one of text, json, yaml")
	ErrInvalidColor  = errors.New("color must be one of auto, always, never")
	ErrNegativeRate  = errors.New("rate limit cannot be negative")
	ErrMultipleStdin = errors.New("stdin can only be read once")
)

// Binding is one --path flag: the literal as written and the paths it
// parsed into. A comma inside one flag value groups several paths under a
// single binding.
type Binding struct {
	Name  string
	Paths []path.Path
}

// Config represents the complete configuration for the jseek tool.
type Config struct {
	Inputs   []string
	Bindings []Binding
	Format   decode.Format
	Output   string
	Verify   bool
	Unique   bool
	Color    string
	Debug    bool

	// URL inputs
	Insecure       bool
	CACertFile     string
	RequestTimeout time.Duration
	RateLimit      float64 // Requests per second (0 = unlimited)
}

// ParseBinding splits literal on commas and parses each part as a path.
func ParseBinding(literal string) (Binding, error) {
	b := Binding{Name: strings.TrimSpace(literal)}
	for part := range strings.SplitSeq(literal, ",") {
		p := path.Parse(strings.TrimSpace(part))
		if p.IsRoot() {
			return Binding{}, fmt.Errorf("%w, got: %q", ErrEmptyPath, literal)
		}
		b.Paths = append(b.Paths, p)
	}
	return b, nil
}

// TLSConfig returns a TLS configuration based on the config settings.
func (c *Config) TLSConfig() (*tls.Config, error) {
	tlsConfig := &tls.Config{
		InsecureSkipVerify: c.Insecure,
	}

	if c.CACertFile != "" {
		caCertPool, err := x509.SystemCertPool()
		if err != nil {
			caCertPool = x509.NewCertPool()
		}

		caCert, err := os.ReadFile(c.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate file %s: %w", c.CACertFile, err)
		}

		if !caCertPool.AppendCertsFromPEM(caCert) {
			return nil, fmt.Errorf("failed to parse CA certificate from %s", c.CACertFile)
		}

		tlsConfig.RootCAs = caCertPool
	}

	return tlsConfig, nil
}

// HTTPClient creates an HTTP client configured with the settings from this Config.
func (c *Config) HTTPClient() (*http.Client, error) {
	tlsConfig, err := c.TLSConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS configuration: %w", err)
	}

	return httpclient.New(tlsConfig, c.RequestTimeout), nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if len(c.Bindings) == 0 {
		return ErrNoPaths
	}

	stdin := 0
	for _, input := range c.Inputs {
		if input == source.Stdin {
			stdin++
			continue
		}
		if source.IsURL(input) {
			continue
		}
		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("input file %s not found: %w", input, err)
		}
	}
	if stdin > 1 {
		return ErrMultipleStdin
	}

	if !slices.Contains([]string{OutputText, OutputJSON, OutputYAML}, c.Output) {
		return fmt.Errorf("%w, got: %s", ErrInvalidOutput, c.Output)
	}
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("%w, got: %s", ErrInvalidColor, c.Color)
	}
	if c.RateLimit < 0 {
		return ErrNegativeRate
	}

	if c.CACertFile != "" {
		if _, err := os.Stat(c.CACertFile); err != nil {
			return fmt.Errorf("CA certificate file %s not found: %w", c.CACertFile, err)
		}
	}

	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s", ErrNoArguments, Usage())
	}

	fs := pflag.NewFlagSet(args[0], pflag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		paths      = fs.StringArrayP("path", "p", nil, "Dotted path to match (repeatable)")
		pathFile   = fs.String("path-file", "", "File with one path binding per line")
		format     = fs.StringP("format", "f", "auto", "Input format: auto, json, jsonc, yaml, cbor")
		output     = fs.StringP("output", "o", OutputText, "Output format: text, json, yaml")
		verify     = fs.Bool("verify", false, "Verify every matched subtree")
		unique     = fs.Bool("unique", false, "Print each distinct value once")
		color      = fs.String("color", ColorAuto, "Colorize output: auto, always, never")
		debug      = fs.Bool("debug", false, "Enable debug logging")
		insecure   = fs.Bool("insecure", false, "Skip TLS certificate verification")
		caCertFile = fs.String("cacert", "", "Path to CA certificate file for TLS verification")
		timeout    = fs.Duration("timeout", DefaultTimeout, "URL fetch timeout")
		rateLimit  = fs.Float64("rate-limit", 0, "Rate limit in URL fetches per second (0 for unlimited)")
		version    = fs.BoolP("version", "v", false, "Show version information")
	)

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, exit.Success(Usage())
		}
		return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s", err, Usage())
	}

	if *version {
		return nil, exit.Success(fmt.Sprintf("jseek %s\n", Version))
	}

	literals := slices.Clone(*paths)
	if *pathFile != "" {
		fileLiterals, err := loadPathFile(*pathFile)
		if err != nil {
			return nil, exit.Errorf("Error: failed to load path file: %v\n\n%s", err, Usage())
		}
		// File bindings come first so that command-line bindings fire after them
		literals = append(fileLiterals, literals...)
	}

	bindings := make([]Binding, 0, len(literals))
	for _, literal := range literals {
		b, err := ParseBinding(literal)
		if err != nil {
			return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
		}
		bindings = append(bindings, b)
	}

	inputFormat, err := decode.ParseFormat(*format)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{source.Stdin}
	}

	config := &Config{
		Inputs:         inputs,
		Bindings:       bindings,
		Format:         inputFormat,
		Output:         strings.ToLower(*output),
		Verify:         *verify,
		Unique:         *unique,
		Color:          strings.ToLower(*color),
		Debug:          *debug,
		Insecure:       *insecure,
		CACertFile:     *caCertFile,
		RequestTimeout: *timeout,
		RateLimit:      *rateLimit,
	}

	if err := config.Validate(); err != nil {
		return nil, exit.Errorf("Error: %v\n\n%s", err, Usage())
	}

	return config, nil
}

// loadPathFile loads one binding literal per line.
// It supports comments (lines starting with #) and empty lines.
func loadPathFile(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var literals []string
	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		literals = append(literals, line)
	}

	return literals, nil
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jseek - find values in JSON documents by dotted path

Usage: jseek [options] -p PATH [-p PATH ...] [file|url|-] ...

A path matches every node whose path ends with it: "name" matches
users.0.name and users.1.name, "users.0.name" matches only the first.

Options:
  -p, --path PATH         Path to match, repeatable; "a.b,c.d" is one binding with two paths
      --path-file FILE    File with one binding per line (# comments allowed)
  -f, --format FORMAT     Input format: auto, json, jsonc, yaml, cbor (default: auto)
  -o, --output FORMAT     Output format: text, json, yaml (default: text)
      --verify            Verify every matched subtree, failing on unsupported values
      --unique            Print each distinct value once
      --color WHEN        Colorize output: auto, always, never (default: auto)
      --debug             Enable debug logging
      --insecure          Skip TLS certificate verification
      --cacert FILE       Path to CA certificate file for TLS verification
      --timeout DURATION  URL fetch timeout (default: 30s)
      --rate-limit N      Rate limit in URL fetches per second (0 for unlimited)
  -h, --help              Show this help message
  -v, --version           Show version information

Inputs ending in .gz or .zst are decompressed. With no inputs, stdin is read.

Exit status is 0 if a value matched, 1 if nothing matched and 2 on error.

Examples:
  jseek -p users.0.name users.json             # One value
  jseek -p name users.json                      # Every "name" member
  jseek -p id,uuid -o json events.json.zst      # Either member, as JSON lines
  jseek -p items.50 https://example.com/api     # Fetch and search a URL
  cat config.yaml | jseek -p server.port        # Read stdin`
}
