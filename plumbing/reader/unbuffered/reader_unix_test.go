//go:build unix

package unbuffered

import (
	"syscall"

	"github.com/go-git/go-filereader/internal/testfs"
)

func (s *ReaderSuite) TestInterruptsAreRetried() {
	fs := testfs.New(s.fs)
	fs.Inject(testfs.Bye, testfs.Faults{Interrupt: syscall.EINTR, MaxRead: 4})
	r := s.open(fs, testfs.Bye)
	want := s.contents[testfs.Bye]

	c, err := r.ReadByte()
	s.Require().NoError(err)
	s.Equal(want[0], c)

	p, err := r.ReadBytes(len(want))
	s.Require().NoError(err)
	s.Equal(want[1:], p)
	s.False(r.Good())
}
