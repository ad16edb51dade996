// Package delim implements the byte sets used to split a stream into tokens.
package delim

import (
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Whitespace is the delimiter set used when none is configured.
const Whitespace = " \t\n\v\f\r"

// LineFeed terminates a line regardless of the configured delimiters.
const LineFeed = '\n'

// Set is an immutable set of delimiter bytes. Membership is answered from a
// 256 entry table, while Bytes keeps the order in which the delimiters were
// first given.
type Set struct {
	table [256]bool
	order []byte
}

// New returns a Set holding the given bytes. Duplicates are ignored.
func New(delims ...byte) *Set {
	seen := linkedhashset.New()
	for _, b := range delims {
		seen.Add(b)
	}

	s := &Set{order: make([]byte, 0, seen.Size())}
	for _, v := range seen.Values() {
		b := v.(byte)
		s.table[b] = true
		s.order = append(s.order, b)
	}

	return s
}

// FromString returns a Set holding every byte of delims.
func FromString(delims string) *Set {
	return New([]byte(delims)...)
}

// Default returns the whitespace Set.
func Default() *Set {
	return FromString(Whitespace)
}

// Contains reports whether b is a delimiter.
func (s *Set) Contains(b byte) bool {
	return s.table[b]
}

// With returns a copy of s that also contains b.
func (s *Set) With(b byte) *Set {
	if s.table[b] {
		return s
	}

	c := &Set{table: s.table, order: make([]byte, len(s.order), len(s.order)+1)}
	copy(c.order, s.order)
	c.table[b] = true
	c.order = append(c.order, b)

	return c
}

// Index returns the index of the first delimiter in p, or -1.
func (s *Set) Index(p []byte) int {
	for i, b := range p {
		if s.table[b] {
			return i
		}
	}

	return -1
}

// Len returns the number of distinct delimiters.
func (s *Set) Len() int {
	return len(s.order)
}

// Bytes returns the delimiters in the order they were first given.
func (s *Set) Bytes() []byte {
	b := make([]byte, len(s.order))
	copy(b, s.order)
	return b
}

func (s *Set) String() string {
	return string(s.order)
}
