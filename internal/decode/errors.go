package decode

import "errors"

var (
	// ErrUnknownFormat indicates a format name or value that is not supported.
	ErrUnknownFormat = errors.New("decode: unknown format")

	// ErrEmpty indicates an input with no content.
	ErrEmpty = errors.New("decode: empty input")
)
