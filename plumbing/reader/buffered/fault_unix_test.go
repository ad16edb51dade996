//go:build unix

package buffered

import (
	"io"
	"syscall"

	"github.com/go-git/go-filereader/internal/testfs"
)

func (s *ReaderSuite) TestInterruptsAreRetried() {
	r, fs := s.faulty(testfs.Long, testfs.Faults{Interrupt: syscall.EINTR, MaxRead: 512}, WithBufferSize(4096))

	got, err := io.ReadAll(r)
	s.Require().NoError(err)
	s.Equal(s.contents[testfs.Long], got)
	s.Greater(fs.Calls(testfs.Long), testfs.LongSize/512)
}

func (s *ReaderSuite) TestInterruptsDuringTokens() {
	r, _ := s.faulty(testfs.Bye, testfs.Faults{Interrupt: syscall.EINTR, MaxRead: 1}, WithBufferSize(4))

	tok, err := r.ReadToken()
	s.Require().NoError(err)
	s.Equal("Goodbye,", tok)
	s.True(r.Good())
	s.Equal(int64(len("Goodbye, ")), r.Tell())
}
