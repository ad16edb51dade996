//go:build unix

package ioutil

import (
	"fmt"
	"io/fs"
	"syscall"

	. "gopkg.in/check.v1"
)

func (s *CommonSuite) TestIsInterrupt(c *C) {
	c.Assert(IsInterrupt(syscall.EINTR), Equals, true)
	c.Assert(IsInterrupt(&fs.PathError{Op: "read", Path: "x", Err: syscall.EINTR}), Equals, true)
	c.Assert(IsInterrupt(fmt.Errorf("wrapped: %w", syscall.EINTR)), Equals, true)
	c.Assert(IsInterrupt(syscall.EIO), Equals, false)
}

func (s *CommonSuite) TestReadRetryInterrupted(c *C) {
	calls := 0
	n, err := ReadRetry(func() (int, error) {
		calls++
		if calls < 3 {
			return 0, syscall.EINTR
		}

		return 5, nil
	})

	c.Assert(n, Equals, 5)
	c.Assert(err, IsNil)
	c.Assert(calls, Equals, 3)
}
