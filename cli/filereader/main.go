package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/go-git/go-filereader/plumbing"
	"github.com/go-git/go-filereader/utils/trace"
)

const (
	bin = "filereader"

	catName     = "cat"
	tokensName  = "tokens"
	linesName   = "lines"
	benchName   = "bench"
	versionName = "version"

	usage = `Please specify one command of: cat, tokens, lines, bench or version
Usage:
	filereader [OPTIONS] <cat | tokens | lines | bench | version> <file>

Options:
	-b, --buffer-size=    Capacity of the read buffer in bytes.
	-d, --delimiters=     Bytes ending a token, Go escapes allowed.
	    --no-delimiters   Tokens only end at the end of the file.

Available commands:
	cat       Copy a file to stdout one byte at a time.
	tokens    Print the offset and value of every token.
	lines     Print the offset and tokens of every line.
	bench     Compare the buffered and unbuffered readers on a file.
	version   Show the version information.

Set FILEREADER_TRACE=1 to trace files being opened, 2 to trace buffer
refills, 3 for both.
`

	cannotStartExitCode      = 129
	fatalApplicationExitCode = 128
	generalErrorExitCode     = -1
)

var (
	stdout io.Writer = os.Stdout

	commands = map[string]func([]string) error{
		catName:     catRun,
		tokensName:  tokensRun,
		linesName:   linesRun,
		benchName:   benchRun,
		versionName: versionRun,
	}

	errUsage = errors.New("wrong number of arguments")
)

func main() {
	trace.ReadEnv()

	if len(os.Args) < 2 {
		showUsage()
		os.Exit(cannotStartExitCode)
	}

	cmd, ok := commands[os.Args[1]]
	if !ok {
		showUsage()
		os.Exit(cannotStartExitCode)
	}

	err := cmd(os.Args[2:])
	if err == nil {
		return
	}

	var (
		ferr  *flags.Error
		ioErr *plumbing.IOError
	)

	switch {
	case errors.As(err, &ferr) && ferr.Type == flags.ErrHelp:
		fmt.Print(ferr.Message)
	case errors.As(err, &ferr), errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, "ERR:", err)
		showUsage()
		os.Exit(cannotStartExitCode)
	case errors.As(err, &ioErr):
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(fatalApplicationExitCode)
	default:
		fmt.Fprintln(os.Stderr, "ERR:", err)
		os.Exit(generalErrorExitCode)
	}
}

func showUsage() {
	fmt.Print(usage)
}
