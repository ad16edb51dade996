package buffered

import (
	"github.com/go-git/go-filereader/plumbing/delim"
)

// scan consumes bytes up to and including the first byte in stop, appending
// the bytes before it to dst. It returns the byte that stopped the scan, or
// -1 if the stream ended first, along with the number of bytes consumed.
func (r *Reader) scan(dst []byte, stop *delim.Set) ([]byte, int, int, error) {
	var consumed int
	for {
		if err := r.more(); err != nil {
			return dst, -1, consumed, err
		}

		chunk := r.buf[r.pos:r.n]
		if i := stop.Index(chunk); i >= 0 {
			dst = append(dst, chunk[:i]...)
			r.pos += i + 1
			return dst, int(chunk[i]), consumed + i + 1, nil
		}

		dst = append(dst, chunk...)
		r.pos = r.n
		consumed += len(chunk)
	}
}

// AppendToken appends the next token to dst and returns the extended slice.
// The delimiter that ends the token is consumed but not appended, so two
// consecutive delimiters yield an empty token.
//
// A token cut short by the end of the file is returned with a nil error and
// Good reporting false. An error is only returned when nothing at all could
// be consumed.
func (r *Reader) AppendToken(dst []byte) ([]byte, error) {
	dst, _, consumed, err := r.scan(dst, r.delims)
	if err == nil {
		r.good = true
		return dst, nil
	}

	r.good = false
	if consumed == 0 {
		return dst, err
	}

	return dst, nil
}

// ReadToken is like AppendToken but returns the token as a string.
func (r *Reader) ReadToken() (string, error) {
	tok, err := r.AppendToken(r.scratch[:0])
	r.scratch = tok[:0]
	if err != nil {
		return "", err
	}

	return string(tok), nil
}

// ReadLine reads up to and including the next line feed and returns the
// line split on the delimiters. The line feed always ends the line, even when
// it is not a delimiter. Every token is kept, so "a,\n" split on "," gives
// ["a" ""] and an empty line gives [""].
//
// A last line with no line feed is returned with a nil error and Good
// reporting false. An error is only returned when nothing at all could be
// consumed.
func (r *Reader) ReadLine() ([]string, error) {
	var (
		line     []string
		consumed int
	)

	for {
		tok, term, n, err := r.scan(r.scratch[:0], r.lines)
		r.scratch = tok[:0]
		consumed += n

		if err != nil {
			r.good = false
			if consumed == 0 {
				return nil, err
			}

			return append(line, string(tok)), nil
		}

		line = append(line, string(tok))
		if term == delim.LineFeed {
			r.good = true
			return line, nil
		}
	}
}
