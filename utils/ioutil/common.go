// Package ioutil implements some I/O utility functions.
package ioutil

import (
	"io"
)

// CheckClose calls Close on the given io.Closer. If the given *error points to
// nil, it will be assigned the error returned by Close. Otherwise, any error
// returned by Close will be ignored. CheckClose is usually called with defer.
func CheckClose(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}

// ReadRetry calls read until it returns something other than an interrupt.
// Short reads are returned as is.
func ReadRetry(read func() (int, error)) (int, error) {
	for {
		n, err := read()
		if n == 0 && IsInterrupt(err) {
			continue
		}

		return n, err
	}
}
