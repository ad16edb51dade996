package plumbing

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEndOfStream is returned when every byte of the file has been
	// consumed, or when a read is attempted with no file open. It is io.EOF
	// so callers can keep using the usual io idioms.
	ErrEndOfStream = io.EOF

	// ErrNotOpen is returned by operations other than reads that need an
	// open file, such as Rewind.
	ErrNotOpen = errors.New("no file open")
)

// OpenError is returned when a path cannot be opened for reading. The reader
// that returned it stays usable for a later Open.
type OpenError struct {
	Path string
	Err  error
}

func NewOpenError(path string, err error) *OpenError {
	if err == nil {
		return nil
	}

	return &OpenError{Path: path, Err: err}
}

// Error implements Error interface and returns string representation of the error
func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %q: %s", e.Path, e.Err.Error())
}

// Unwrap implements the Unwrap interface and returns WrappedError
func (e *OpenError) Unwrap() error {
	return e.Err
}

// IOError is returned when the underlying file fails with anything other
// than an interrupt. The reader stops reading until it is reopened or rewound.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func NewIOError(op, path string, err error) *IOError {
	if err == nil {
		return nil
	}

	return &IOError{Op: op, Path: path, Err: err}
}

// Error implements Error interface and returns string representation of the error
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Op, e.Path, e.Err.Error())
}

// Unwrap implements the Unwrap interface and returns WrappedError
func (e *IOError) Unwrap() error {
	return e.Err
}
