package document

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImageLoaded is returned when an edit, undo or save is attempted
	// before any image has been opened.
	ErrNoImageLoaded = errors.New("no image loaded")

	// ErrNothingToUndo is returned by Undo when the history only holds the
	// originally opened image.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// IOError reports a file that could not be read or written.
type IOError struct {
	Op   string // "open" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError reports a file that was read but is not a supported image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
