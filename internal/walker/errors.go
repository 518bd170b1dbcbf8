package walker

import "errors"

var (
	// ErrPathNotFound is returned when the root does not exist.
	ErrPathNotFound = errors.New("path not found")
	// ErrNotADirectory is returned when the root is not a directory.
	ErrNotADirectory = errors.New("not a directory")
)
