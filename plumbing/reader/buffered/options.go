package buffered

import (
	"github.com/go-git/go-billy/v5"

	"github.com/go-git/go-filereader/plumbing/delim"
)

// DefaultBufferSize is the capacity of the buffer when WithBufferSize is not
// given.
const DefaultBufferSize = 16 * 1024

type Option func(*Reader)

// WithBufferSize sets the capacity of the buffer. Values lower than 1 are
// ignored.
func WithBufferSize(size int) Option {
	return func(r *Reader) {
		if size > 0 {
			r.size = size
		}
	}
}

// WithDelimiters sets the bytes that terminate a token. A nil set keeps the
// default whitespace set.
func WithDelimiters(set *delim.Set) Option {
	return func(r *Reader) {
		if set != nil {
			r.delims = set
		}
	}
}

// WithFilesystem sets the filesystem files are opened from. The operating
// system filesystem is used by default.
func WithFilesystem(fs billy.Basic) Option {
	return func(r *Reader) {
		if fs != nil {
			r.fs = fs
		}
	}
}
