//go:build unix

package ioutil

import (
	"errors"

	"golang.org/x/sys/unix"
)

// IsInterrupt reports whether err is an interrupted system call, which
// readers retry instead of surfacing.
func IsInterrupt(err error) bool {
	return err != nil && errors.Is(err, unix.EINTR)
}
