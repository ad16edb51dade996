package filereader

import (
	"errors"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/go-git/go-filereader/plumbing/delim"
	"github.com/go-git/go-filereader/plumbing/reader/buffered"
	"github.com/go-git/go-filereader/plumbing/reader/unbuffered"
)

var (
	ErrInvalidBufferSize = errors.New("buffer size cannot be negative")
)

// Options describe how a file should be read
type Options struct {
	// Filesystem the files are opened from, by default the operating system
	Filesystem billy.Basic
	// Delimiters terminate tokens. Nil means delim.Whitespace, an empty
	// slice means tokens only end at the end of the file.
	Delimiters []byte
	// BufferSize is the capacity of the buffered reader, by default
	// buffered.DefaultBufferSize
	BufferSize int
}

// Validate validate the fields and set the default values
func (o *Options) Validate() error {
	if o.BufferSize < 0 {
		return ErrInvalidBufferSize
	}

	if o.BufferSize == 0 {
		o.BufferSize = buffered.DefaultBufferSize
	}

	if o.Filesystem == nil {
		o.Filesystem = osfs.Default
	}

	if o.Delimiters == nil {
		o.Delimiters = []byte(delim.Whitespace)
	}

	return nil
}

// Open opens path with a buffered reader configured by o. A nil o uses the
// defaults.
func Open(path string, o *Options) (*buffered.Reader, error) {
	if o == nil {
		o = &Options{}
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return buffered.NewFile(path,
		buffered.WithFilesystem(o.Filesystem),
		buffered.WithBufferSize(o.BufferSize),
		buffered.WithDelimiters(delim.New(o.Delimiters...)),
	)
}

// OpenUnbuffered opens path with an unbuffered reader. Only o.Filesystem is
// used.
func OpenUnbuffered(path string, o *Options) (*unbuffered.Reader, error) {
	if o == nil {
		o = &Options{}
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	return unbuffered.NewFile(path, unbuffered.WithFilesystem(o.Filesystem))
}
