package fsmanager

import (
	"errors"
	"fmt"
)

var (
	// ErrRootExists is returned by Init when the root path is already present.
	ErrRootExists = errors.New("root already exists")

	// ErrDuplicateEntry is returned by Create when a file entry's target exists.
	ErrDuplicateEntry = errors.New("entry already exists")

	// ErrMissingTarget is returned by WriteFile when the target was never created.
	ErrMissingTarget = errors.New("target does not exist")

	// ErrInvalidPath is returned for absolute paths, ".." segments and empty names.
	ErrInvalidPath = errors.New("invalid path")

	errNotDir = errors.New("not a directory")
	errIsDir  = errors.New("is a directory")
)

// IOError wraps an underlying filesystem failure with the operation and path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
