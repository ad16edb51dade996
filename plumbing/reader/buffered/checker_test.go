package buffered

import (
	"strings"
)

// bufferChecker compares what a Reader returned against the bytes sitting in
// its buffer, assuming every refill was a full one so that the byte at file
// offset off lives at buf[off % size]. The last slot of each buffer window is
// never checked.
type bufferChecker struct {
	r *Reader
}

// charMismatch reports whether b is not where it should be in the buffer.
func (c bufferChecker) charMismatch(b byte, off int64) bool {
	size := int64(c.r.Size())
	i := off % size
	if i == size-1 {
		return false
	}

	return c.r.buf[i] != b
}

// tokenMismatch reports whether tok is not where it should be in the
// buffer. Tokens that do not fit in a single window are not checked.
func (c bufferChecker) tokenMismatch(tok string, off int64) bool {
	size := int64(c.r.Size())
	start := off % size
	end := (off + int64(len(tok))) % size
	if start > end || end-start != int64(len(tok)) {
		return false
	}

	for i := int64(0); start+i < end; i++ {
		if tok[i] != c.r.buf[start+i] {
			return true
		}
	}

	return false
}

// verifyToken checks that tok is found at *off in contents and is followed
// by one of delims or by the end of contents, then moves *off past both.
func verifyToken(tok string, contents []byte, delims string, off *int64) bool {
	start := *off
	end := start + int64(len(tok))
	if end > int64(len(contents)) || string(contents[start:end]) != tok {
		return false
	}

	if end == int64(len(contents)) {
		*off = end
		return true
	}

	*off = end + 1
	return strings.IndexByte(delims, contents[end]) >= 0
}

// verifyLine checks line the way verifyToken checks a token, the last token
// being followed by a line feed or the end of contents.
func verifyLine(line []string, contents []byte, delims string, off *int64) bool {
	if len(line) == 0 {
		return false
	}

	for _, tok := range line[:len(line)-1] {
		if !verifyToken(tok, contents, delims, off) {
			return false
		}
	}

	return verifyToken(line[len(line)-1], contents, "\n", off)
}
