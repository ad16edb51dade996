package main

import (
	"fmt"
	"strconv"

	"github.com/jessevdk/go-flags"

	"github.com/go-git/go-filereader"
)

type cmd struct {
	BufferSize   int    `short:"b" long:"buffer-size" description:"Capacity of the read buffer in bytes."`
	Delimiters   string `short:"d" long:"delimiters" description:"Bytes ending a token, Go escapes allowed."`
	NoDelimiters bool   `long:"no-delimiters" description:"Tokens only end at the end of the file."`
}

// parse fills c from args and returns the single file operand.
func (c *cmd) parse(name string, args []string) (string, error) {
	p := flags.NewNamedParser(bin+" "+name, flags.HelpFlag|flags.PassDoubleDash)
	p.Usage = "[OPTIONS] <file>"
	if _, err := p.AddGroup("Options", "", c); err != nil {
		return "", err
	}

	rest, err := p.ParseArgs(args)
	if err != nil {
		return "", err
	}

	if len(rest) != 1 {
		return "", errUsage
	}

	return rest[0], nil
}

func (c *cmd) options() (*filereader.Options, error) {
	o := &filereader.Options{BufferSize: c.BufferSize}

	switch {
	case c.NoDelimiters:
		o.Delimiters = []byte{}
	case c.Delimiters != "":
		d, err := unescape(c.Delimiters)
		if err != nil {
			return nil, err
		}

		o.Delimiters = []byte(d)
	}

	return o, o.Validate()
}

// unescape interprets Go escape sequences such as \t or \x00 in s.
func unescape(s string) (string, error) {
	d, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid delimiters %q: %w", s, err)
	}

	return d, nil
}
