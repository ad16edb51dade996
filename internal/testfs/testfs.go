// Package testfs provides fixture files and a fault injecting filesystem for
// the readers' tests.
package testfs

import (
	"math/rand"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// Fixture names written by Fixtures.
const (
	Hello = "Hello.txt"
	Bye   = "Bye.txt"
	Long  = "long.txt"
	Empty = "empty.txt"
)

// LongSize is the size of the Long fixture.
const LongSize = 300*1024 + 17

// Fixtures returns an in-memory filesystem holding the fixture files, along
// with their contents.
func Fixtures() (billy.Filesystem, map[string][]byte) {
	contents := map[string][]byte{
		Hello: []byte("Hello"),
		Bye:   []byte("Goodbye, cruel world\n\tsee you  later,alligator\n\n,leading comma\nlast line, no feed"),
		Long:  Text(LongSize, 1),
		Empty: {},
	}

	fs := memfs.New()
	for name, data := range contents {
		if err := util.WriteFile(fs, name, data, 0o644); err != nil {
			panic(err)
		}
	}

	return fs, contents
}

var (
	words = []string{
		"the", "prince", "of", "war", "and", "peace", "Natasha", "Moscow",
		"a", "letter", "said", "Pierre", "«non»", "évidemment", "1812", "x",
	}
	separators = []string{
		" ", " ", " ", " ", ", ", ",", "\t", "  ", "\n", "\n", "\n\n", " \n", ",\n",
	}
)

// Text returns size bytes of text made of words separated by spaces, tabs,
// commas and line feeds, including consecutive separators and blank lines.
// The same seed always gives the same text.
func Text(size int, seed int64) []byte {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]byte, 0, size+16)
	for len(out) < size {
		out = append(out, words[rnd.Intn(len(words))]...)
		out = append(out, separators[rnd.Intn(len(separators))]...)
	}

	return out[:size]
}
