package ioutil

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type CommonSuite struct{}

var _ = Suite(&CommonSuite{})

type closer struct {
	called int
	err    error
}

func (c *closer) Close() error {
	c.called++
	return c.err
}

func (s *CommonSuite) TestCheckClose(c *C) {
	cl := &closer{}
	var err error
	CheckClose(cl, &err)
	c.Assert(err, IsNil)
	c.Assert(cl.called, Equals, 1)
}

func (s *CommonSuite) TestCheckCloseKeepsFirstError(c *C) {
	first := errors.New("first")
	cl := &closer{err: errors.New("close")}

	err := first
	CheckClose(cl, &err)
	c.Assert(err, Equals, first)

	err = nil
	CheckClose(cl, &err)
	c.Assert(err, ErrorMatches, "close")
	c.Assert(cl.called, Equals, 2)
}

func (s *CommonSuite) TestReadRetryShortRead(c *C) {
	calls := 0
	n, err := ReadRetry(func() (int, error) {
		calls++
		return 3, io.ErrUnexpectedEOF
	})

	c.Assert(n, Equals, 3)
	c.Assert(err, Equals, io.ErrUnexpectedEOF)
	c.Assert(calls, Equals, 1)
}

func (s *CommonSuite) TestReadRetryPassesOtherErrors(c *C) {
	boom := errors.New("boom")
	n, err := ReadRetry(func() (int, error) { return 0, boom })
	c.Assert(n, Equals, 0)
	c.Assert(err, Equals, boom)
}

func (s *CommonSuite) TestIsInterruptNil(c *C) {
	c.Assert(IsInterrupt(nil), Equals, false)
	c.Assert(IsInterrupt(io.EOF), Equals, false)
}

func (s *CommonSuite) TestCopy(c *C) {
	input := strings.Repeat("0123456789", 10000)
	var out bytes.Buffer

	n, err := Copy(&out, strings.NewReader(input))
	c.Assert(err, IsNil)
	c.Assert(n, Equals, int64(len(input)))
	c.Assert(out.String(), Equals, input)
}
