package voc

import (
	"github.com/pkg/errors"
)

// ErrLengthMismatch is returned when the image and annotation lists of a
// split cannot be paired one to one.
var ErrLengthMismatch = errors.New("voc: image and annotation lists differ in length")

// FileAccessError reports a list file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return "voc: read " + e.Path + ": " + e.Err.Error()
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// Cause lets errors.Cause see through to the underlying os error.
func (e *FileAccessError) Cause() error { return e.Err }
