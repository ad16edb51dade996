package main

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-git/go-billy/v5"
	"github.com/pjbgf/sha1cd"

	"github.com/go-git/go-filereader"
	"github.com/go-git/go-filereader/plumbing"
	"github.com/go-git/go-filereader/utils/ioutil"
)

// benchRun reads a file one byte at a time with both readers, checks both
// got the bytes a plain copy gets and reports how long each took.
func benchRun(args []string) (err error) {
	var c cmd
	path, err := c.parse(benchName, args)
	if err != nil {
		return err
	}

	o, err := c.options()
	if err != nil {
		return err
	}

	want, size, err := referenceDigest(o.Filesystem, path)
	if err != nil {
		return err
	}

	ur, err := filereader.OpenUnbuffered(path, o)
	if err != nil {
		return err
	}
	defer ioutil.CheckClose(ur, &err)

	br, err := filereader.Open(path, o)
	if err != nil {
		return err
	}
	defer ioutil.CheckClose(br, &err)

	results := []struct {
		name     string
		readByte func() (byte, error)
		elapsed  time.Duration
	}{
		{name: "unbuffered", readByte: ur.ReadByte},
		{name: "buffered", readByte: br.ReadByte},
	}

	for i := range results {
		elapsed, sum, err := timeScan(results[i].readByte, size)
		if err != nil {
			return fmt.Errorf("%s reader: %w", results[i].name, err)
		}

		if !bytes.Equal(sum, want) {
			return fmt.Errorf("%s reader: digest %x, want %x", results[i].name, sum, want)
		}

		results[i].elapsed = elapsed
	}

	fmt.Fprintf(stdout, "%s\t%s\t%x\n", path, humanize.Bytes(uint64(size)), want)
	for _, r := range results {
		fmt.Fprintf(stdout, "%-10s\t%s\n", r.name, r.elapsed)
	}

	unbuf, buf := results[0].elapsed, results[1].elapsed
	if buf > 0 {
		fmt.Fprintf(stdout, "speed-up\tx%.1f with a %s buffer\n",
			float64(unbuf)/float64(buf), humanize.IBytes(uint64(o.BufferSize)))
	}

	return nil
}

// timeScan calls readByte until the end of the stream, returning how long
// it took and the digest of the bytes read.
func timeScan(readByte func() (byte, error), size int64) (time.Duration, []byte, error) {
	data := make([]byte, 0, size)

	start := time.Now()
	for {
		c, err := readByte()
		if errors.Is(err, plumbing.ErrEndOfStream) {
			break
		}

		if err != nil {
			return 0, nil, err
		}

		data = append(data, c)
	}
	elapsed := time.Since(start)

	h := sha1cd.New()
	h.Write(data)

	return elapsed, h.Sum(nil), nil
}

func referenceDigest(fs billy.Basic, path string) (sum []byte, size int64, err error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, 0, plumbing.NewOpenError(path, err)
	}
	defer ioutil.CheckClose(f, &err)

	h := sha1cd.New()
	size, err = ioutil.Copy(h, f)
	if err != nil {
		return nil, 0, plumbing.NewIOError("read", path, err)
	}

	return h.Sum(nil), size, nil
}
