package testfs

import (
	"github.com/go-git/go-billy/v5"
)

// Faults describe how the files opened at a path misbehave.
type Faults struct {
	// MaxRead caps the bytes returned by a single Read or ReadAt call.
	MaxRead int
	// Interrupt, when set, is returned with no data by every other call.
	Interrupt error
	// Err, when set, is returned by every call once FailAfter bytes were
	// served.
	Err       error
	FailAfter int64
}

// Filesystem wraps a billy.Filesystem, injecting Faults into the files it
// opens and counting the read calls made on them.
type Filesystem struct {
	billy.Filesystem

	faults map[string]Faults
	calls  map[string]int
}

// New returns a Filesystem wrapping fs with no faults.
func New(fs billy.Filesystem) *Filesystem {
	return &Filesystem{
		Filesystem: fs,
		faults:     make(map[string]Faults),
		calls:      make(map[string]int),
	}
}

// Inject sets the faults of the files opened at path from now on.
func (fs *Filesystem) Inject(path string, f Faults) {
	fs.faults[path] = f
}

// Calls returns how many Read and ReadAt calls were made on files opened at
// path, interrupted and failed ones included.
func (fs *Filesystem) Calls(path string) int {
	return fs.calls[path]
}

// ResetCalls sets every counter back to zero.
func (fs *Filesystem) ResetCalls() {
	fs.calls = make(map[string]int)
}

func (fs *Filesystem) Open(filename string) (billy.File, error) {
	f, err := fs.Filesystem.Open(filename)
	if err != nil {
		return nil, err
	}

	return &file{File: f, fs: fs, path: filename, faults: fs.faults[filename]}, nil
}

type file struct {
	billy.File

	fs     *Filesystem
	path   string
	faults Faults

	served      int64
	interrupted bool
}

func (f *file) Read(p []byte) (int, error) {
	return f.read(p, f.File.Read)
}

func (f *file) ReadAt(p []byte, off int64) (int, error) {
	return f.read(p, func(b []byte) (int, error) {
		return f.File.ReadAt(b, off)
	})
}

func (f *file) read(p []byte, read func([]byte) (int, error)) (int, error) {
	f.fs.calls[f.path]++

	if f.faults.Interrupt != nil {
		f.interrupted = !f.interrupted
		if f.interrupted {
			return 0, f.faults.Interrupt
		}
	}

	if f.faults.Err != nil {
		left := f.faults.FailAfter - f.served
		if left <= 0 {
			return 0, f.faults.Err
		}

		if int64(len(p)) > left {
			p = p[:left]
		}
	}

	if f.faults.MaxRead > 0 && len(p) > f.faults.MaxRead {
		p = p[:f.faults.MaxRead]
	}

	n, err := read(p)
	f.served += int64(n)

	return n, err
}
