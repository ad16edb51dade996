// Package filereader reads flat files through a fixed size buffer, handing
// out bytes, delimiter separated tokens and lines while keeping track of the
// exact file offset of the next unread byte.
//
// The buffered reader lives in plumbing/reader/buffered. An unbuffered
// reader that issues one read per call lives in plumbing/reader/unbuffered
// and serves as the baseline to measure the buffered one against.
package filereader
