package exit

import (
	"fmt"
	"io"
	"os"
)

// Exit codes follow grep: a match was found, nothing matched, or the run
// failed.
const (
	CodeMatch   = 0
	CodeNoMatch = 1
	CodeError   = 2
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a result that prints message to stdout and exits with
// CodeMatch. Used for --help and --version.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeMatch,
		Message:  message,
	}
}

// Error creates a result that prints message to stderr and exits with
// CodeError.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeError,
		Message:  message,
	}
}

// Errorf creates an error exit result with formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// Code maps the outcome of a run to an exit code.
func Code(matches int, failed bool) int {
	switch {
	case failed:
		return CodeError
	case matches > 0:
		return CodeMatch
	default:
		return CodeNoMatch
	}
}
