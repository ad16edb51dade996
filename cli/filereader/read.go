package main

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/go-git/go-filereader"
	"github.com/go-git/go-filereader/plumbing"
	"github.com/go-git/go-filereader/plumbing/reader/buffered"
	"github.com/go-git/go-filereader/utils/ioutil"
)

func catRun(args []string) error {
	return withReader(catName, args, func(r *buffered.Reader, w *bufio.Writer) error {
		for {
			c, err := r.ReadByte()
			if errors.Is(err, plumbing.ErrEndOfStream) {
				return nil
			}

			if err != nil {
				return err
			}

			if err := w.WriteByte(c); err != nil {
				return err
			}
		}
	})
}

func tokensRun(args []string) error {
	return withReader(tokensName, args, func(r *buffered.Reader, w *bufio.Writer) error {
		var tok []byte
		for {
			off := r.Tell()

			var err error
			tok, err = r.AppendToken(tok[:0])
			if errors.Is(err, plumbing.ErrEndOfStream) {
				return nil
			}

			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(w, "%d\t%q\n", off, tok); err != nil {
				return err
			}
		}
	})
}

func linesRun(args []string) error {
	return withReader(linesName, args, func(r *buffered.Reader, w *bufio.Writer) error {
		for {
			off := r.Tell()
			line, err := r.ReadLine()
			if errors.Is(err, plumbing.ErrEndOfStream) {
				return nil
			}

			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(w, "%d\t%q\n", off, line); err != nil {
				return err
			}
		}
	})
}

// withReader opens the file named in args and runs fn over it, buffering
// what fn writes to stdout.
func withReader(name string, args []string, fn func(*buffered.Reader, *bufio.Writer) error) (err error) {
	var c cmd
	path, err := c.parse(name, args)
	if err != nil {
		return err
	}

	o, err := c.options()
	if err != nil {
		return err
	}

	r, err := filereader.Open(path, o)
	if err != nil {
		return err
	}

	defer ioutil.CheckClose(r, &err)

	w := bufio.NewWriter(stdout)
	if err := fn(r, w); err != nil {
		w.Flush()
		return err
	}

	return w.Flush()
}
