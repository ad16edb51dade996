// Package buffered implements a file reader that serves bytes, tokens and
// lines out of a fixed size buffer, refilling it from the file on demand.
//
// The offset of the next unread byte is always available through Tell, no
// matter how many refills happened before.
package buffered

import (
	"errors"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/go-git/go-filereader/plumbing"
	"github.com/go-git/go-filereader/plumbing/delim"
	"github.com/go-git/go-filereader/utils/ioutil"
	"github.com/go-git/go-filereader/utils/trace"
)

// Reader reads a file through a buffer allocated once by New. Every refill
// overwrites the buffer in place.
//
// The following always holds: pos <= n <= len(buf), and Tell equals the
// file position minus n plus pos.
//
// Reader is not thread-safe.
type Reader struct {
	fs     billy.Basic
	size   int
	delims *delim.Set
	lines  *delim.Set

	path string
	file billy.File

	buf []byte
	n   int // valid bytes in buf
	pos int // next unread byte in buf

	// eof is set once a refill reaches the end of the file. The bytes of
	// that last refill are still served before ErrEndOfStream.
	eof bool
	// err is a read failure, returned once buf is drained.
	err  error
	good bool

	scratch []byte
	refills int
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.Closer     = (*Reader)(nil)
)

// New returns a Reader with no file open.
func New(opts ...Option) *Reader {
	r := &Reader{
		fs:     osfs.Default,
		size:   DefaultBufferSize,
		delims: delim.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.lines = r.delims.With(delim.LineFeed)
	r.buf = make([]byte, r.size)

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

// Open closes the current file, if any, and opens path. On failure an
// *plumbing.OpenError is returned and the Reader is left closed, ready for
// another Open.
func (r *Reader) Open(path string) error {
	if err := r.Close(); err != nil {
		trace.General.Printf("buffered: %v", err)
	}

	f, err := r.fs.Open(path)
	if err != nil {
		return plumbing.NewOpenError(path, err)
	}

	r.file = f
	r.path = path
	r.good = true
	trace.General.Printf("buffered: open %s", path)

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
	r.good = false
	r.reset()
	trace.General.Printf("buffered: close %s", path)

	if err != nil {
		return plumbing.NewIOError("close", path, err)
	}

	return nil
}

func (r *Reader) reset() {
	r.n = 0
	r.pos = 0
	r.eof = false
	r.err = nil
}

// fill replaces the buffer contents with the next bytes of the file. It
// stops when the buffer is full, at end of file or on a read failure; bytes
// read before a failure are kept.
func (r *Reader) fill() {
	r.pos = 0
	r.n = 0

	for r.n < len(r.buf) {
		m, err := r.file.Read(r.buf[r.n:])
		r.n += m

		if err == nil {
			if m == 0 {
				r.eof = true
				break
			}

			continue
		}

		if ioutil.IsInterrupt(err) {
			continue
		}

		if errors.Is(err, io.EOF) {
			r.eof = true
			break
		}

		r.err = plumbing.NewIOError("read", r.path, err)
		break
	}

	r.refills++
	trace.Refill.Printf("buffered: refill %s: %d bytes, eof=%t", r.path, r.n, r.eof)
}

// more makes sure there are unread bytes in the buffer, refilling it when
// needed. It returns the error that ends the stream when there are none.
func (r *Reader) more() error {
	if r.pos < r.n {
		return nil
	}

	switch {
	case r.file == nil:
		return plumbing.ErrEndOfStream
	case r.err != nil:
		return r.err
	case r.eof:
		return plumbing.ErrEndOfStream
	}

	r.fill()
	if r.n > 0 {
		return nil
	}

	if r.err != nil {
		return r.err
	}

	return plumbing.ErrEndOfStream
}

// ReadByte returns the next byte of the file. It returns
// plumbing.ErrEndOfStream once every byte was returned or when no file is
// open, and an *plumbing.IOError when the file cannot be read.
func (r *Reader) ReadByte() (byte, error) {
	if err := r.more(); err != nil {
		r.good = false
		return 0, err
	}

	c := r.buf[r.pos]
	r.pos++
	r.good = true

	return c, nil
}

// Read implements io.Reader. It copies at most one buffer worth of bytes.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if err := r.more(); err != nil {
		r.good = false
		return 0, err
	}

	n := copy(p, r.buf[r.pos:r.n])
	r.pos += n
	r.good = true

	return n, nil
}

// Tell returns the offset in the file of the next unread byte, or -1 when no
// file is open.
func (r *Reader) Tell() int64 {
	if r.file == nil {
		return -1
	}

	off, err := r.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}

	return off - int64(r.n) + int64(r.pos)
}

// Rewind goes back to the start of the file and refills the buffer. It also
// clears any previous end of stream or read failure.
func (r *Reader) Rewind() error {
	if r.file == nil {
		r.good = false
		return plumbing.ErrNotOpen
	}

	r.reset()
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		r.good = false
		r.err = plumbing.NewIOError("seek", r.path, err)
		return r.err
	}

	trace.General.Printf("buffered: rewind %s", r.path)
	r.fill()
	if r.n == 0 && r.err != nil {
		r.good = false
		return r.err
	}

	r.good = true
	return nil
}

// Good reports whether the last operation succeeded without reaching the end
// of the file.
func (r *Reader) Good() bool {
	return r.good
}

// Buffered returns the number of bytes that can be read without a refill.
func (r *Reader) Buffered() int {
	return r.n - r.pos
}

// Size returns the capacity of the buffer.
func (r *Reader) Size() int {
	return len(r.buf)
}

// Delimiters returns the bytes that terminate a token.
func (r *Reader) Delimiters() *delim.Set {
	return r.delims
}
