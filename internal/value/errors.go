package value

import (
	"errors"
	"fmt"

	"github.com/jacoelho/jseek/internal/path"
)

var (
	// ErrInvalidFormat indicates a dynamic value that is neither a known leaf,
	// a sequence, nor a string-keyed map.
	ErrInvalidFormat = errors.New("value: invalid format")

	// ErrCorrupted indicates encoded data that decoded into a shape no Value
	// variant accepts.
	ErrCorrupted = errors.New("value: corrupted data")
)

// InvalidFormatError reports the Go type that failed classification and
// where in the tree it was found.
type InvalidFormatError struct {
	Type string
	Path path.Path
}

func (e *InvalidFormatError) Error() string {
	if e.Path.IsRoot() {
		return fmt.Sprintf("%v: unsupported type %s", ErrInvalidFormat, e.Type)
	}
	return fmt.Sprintf("%v: unsupported type %s at %s", ErrInvalidFormat, e.Type, e.Path)
}

func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// CorruptedError is returned by the Unmarshal methods of Value and carries
// the coding path of the offending node.
type CorruptedError struct {
	Path path.Path
	Err  error
}

func (e *CorruptedError) Error() string {
	return fmt.Sprintf("%v at %s: %v", ErrCorrupted, e.Path.JSONPath(), e.Err)
}

func (e *CorruptedError) Is(target error) bool {
	return target == ErrCorrupted
}

func (e *CorruptedError) Unwrap() error {
	return e.Err
}
