// Package unbuffered implements a file reader without any buffering: every
// call is one positioned read on the file. It is the baseline the buffered
// reader is measured against.
package unbuffered

import (
	"errors"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/go-git/go-filereader/plumbing"
	"github.com/go-git/go-filereader/utils/ioutil"
	"github.com/go-git/go-filereader/utils/trace"
)

// ErrNegativeCount is returned by ReadBytes when the count is negative.
var ErrNegativeCount = errors.New("negative count")

type Option func(*Reader)

// WithFilesystem sets the filesystem files are opened from. The operating
// system filesystem is used by default.
func WithFilesystem(fs billy.Basic) Option {
	return func(r *Reader) {
		if fs != nil {
			r.fs = fs
		}
	}
}

// Reader reads a file one call at a time, keeping only the offset of the
// next byte.
//
// Reader is not thread-safe.
type Reader struct {
	fs   billy.Basic
	path string
	file billy.File

	off  int64
	err  error
	good bool
	one  [1]byte
}

var (
	_ io.ByteReader = (*Reader)(nil)
	_ io.Closer     = (*Reader)(nil)
)

// New returns a Reader with no file open.
func New(opts ...Option) *Reader {
	r := &Reader{fs: osfs.Default}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewFile returns a Reader with path already open.
func NewFile(path string, opts ...Option) (*Reader, error) {
	r := New(opts...)
	if err := r.Open(path); err != nil {
		return nil, err
	}

	return r, nil
}

// Open closes the current file, if any, and opens path.
func (r *Reader) Open(path string) error {
	if err := r.Close(); err != nil {
		trace.General.Printf("unbuffered: %v", err)
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return plumbing.NewOpenError(path, err)
	}

	r.file = f
	r.path = path
	r.good = true
	trace.General.Printf("unbuffered: open %s", path)

	return nil
}

// Close releases the file. Closing a closed Reader does nothing.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}

	path := r.path
	err := r.file.Close()

	r.file = nil
	r.path = ""
	r.off = 0
	r.err = nil
	r.good = false
	trace.General.Printf("unbuffered: close %s", path)

	if err != nil {
		return plumbing.NewIOError("close", path, err)
	}

	return nil
}

// readAt reads into p at the current offset, retrying interrupts, and
// advances the offset by what was read. It returns ErrEndOfStream when the
// file ended before anything could be read.
func (r *Reader) readAt(p []byte) (int, error) {
	n, err := ioutil.ReadRetry(func() (int, error) {
		return r.file.ReadAt(p, r.off)
	})
	r.off += int64(n)

	switch {
	case err == nil, ioutil.IsInterrupt(err):
		return n, nil
	case errors.Is(err, io.EOF):
		if n > 0 {
			return n, nil
		}

		return 0, plumbing.ErrEndOfStream
	default:
		r.err = plumbing.NewIOError("read", r.path, err)
		return n, r.err
	}
}

// ReadByte returns the next byte of the file.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.check(); err != nil {
		r.good = false
		return 0, err
	}

	if _, err := r.readAt(r.one[:]); err != nil {
		r.good = false
		return 0, err
	}

	r.good = true
	return r.one[0], nil
}

// ReadBytes reads n bytes, retrying short reads until n bytes were read or
// the file ends. Fewer than n bytes are returned at the end of the file, with
// Good reporting false. An error is only returned when nothing at all could
// be read.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	if err := r.check(); err != nil {
		r.good = false
		return nil, err
	}

	p := make([]byte, n)
	var total int
	for total < n {
		m, err := r.readAt(p[total:])
		total += m

		if err != nil {
			r.good = false
			if total == 0 {
				return nil, err
			}

			return p[:total], nil
		}

		if m == 0 {
			break
		}
	}

	r.good = total == n
	return p[:total], nil
}

func (r *Reader) check() error {
	if r.file == nil {
		return plumbing.ErrEndOfStream
	}

	return r.err
}

// Tell returns the offset in the file of the next unread byte, or -1 when no
// file is open.
func (r *Reader) Tell() int64 {
	if r.file == nil {
		return -1
	}

	return r.off
}

// Rewind goes back to the start of the file, clearing any previous end of
// stream or read failure.
func (r *Reader) Rewind() error {
	if r.file == nil {
		r.good = false
		return plumbing.ErrNotOpen
	}

	r.off = 0
	r.err = nil
	r.good = true
	trace.General.Printf("unbuffered: rewind %s", r.path)

	return nil
}

// Good reports whether the last operation succeeded without reaching the end
// of the file.
func (r *Reader) Good() bool {
	return r.good
}
