package buffered

import (
	"errors"

	"github.com/go-git/go-filereader/internal/testfs"
	"github.com/go-git/go-filereader/plumbing"
)

var errDevice = errors.New("device gone")

func (s *ReaderSuite) faulty(path string, f testfs.Faults, opts ...Option) (*Reader, *testfs.Filesystem) {
	fs := testfs.New(s.fs)
	fs.Inject(path, f)

	r, err := NewFile(path, append([]Option{WithFilesystem(fs)}, opts...)...)
	s.Require().NoError(err)
	s.T().Cleanup(func() { r.Close() })

	return r, fs
}

func (s *ReaderSuite) TestReadFailureKeepsBytesRead() {
	r, _ := s.faulty(testfs.Long, testfs.Faults{Err: errDevice, FailAfter: 10}, WithBufferSize(16))
	want := s.contents[testfs.Long][:10]

	for i := range want {
		c, err := r.ReadByte()
		s.Require().NoError(err)
		s.Equal(want[i], c)
	}

	_, err := r.ReadByte()
	s.ErrorIs(err, errDevice)
	s.NotErrorIs(err, plumbing.ErrEndOfStream)

	var ioe *plumbing.IOError
	s.Require().ErrorAs(err, &ioe)
	s.Equal("read", ioe.Op)
	s.Equal(testfs.Long, ioe.Path)
	s.False(r.Good())
	s.Equal(int64(10), r.Tell())

	_, err = r.ReadByte()
	s.ErrorIs(err, errDevice)
	s.False(r.Good())

	s.ErrorIs(r.Rewind(), errDevice)
	s.False(r.Good())

	s.Require().NoError(r.Open(testfs.Hello))
	tok, err := r.ReadToken()
	s.NoError(err)
	s.Equal("Hello", tok)
}

func (s *ReaderSuite) TestReadFailureMidToken() {
	r, _ := s.faulty(testfs.Bye, testfs.Faults{Err: errDevice, FailAfter: 5})

	tok, err := r.ReadToken()
	s.Require().NoError(err)
	s.Equal("Goodb", tok)
	s.False(r.Good())

	_, err = r.ReadToken()
	s.ErrorIs(err, errDevice)
}

func (s *ReaderSuite) TestReadFailureMidLine() {
	r, _ := s.faulty(testfs.Bye, testfs.Faults{Err: errDevice, FailAfter: 14})

	line, err := r.ReadLine()
	s.Require().NoError(err)
	s.Equal([]string{"Goodbye,", "cruel"}, line)
	s.False(r.Good())

	line, err = r.ReadLine()
	s.ErrorIs(err, errDevice)
	s.Nil(line)
}

func (s *ReaderSuite) TestShortReads() {
	r, fs := s.faulty(testfs.Long, testfs.Faults{MaxRead: 7}, WithBufferSize(100))

	var got []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			s.ErrorIs(err, plumbing.ErrEndOfStream)
			break
		}

		got = append(got, c)
	}

	s.Equal(s.contents[testfs.Long], got)
	s.Greater(fs.Calls(testfs.Long), testfs.LongSize/7)
}
