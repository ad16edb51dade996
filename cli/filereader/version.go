package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

func versionRun(_ []string) error {
	v := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == "github.com/go-git/go-filereader" {
				v = dep.Version
			}
		}
	}

	_, err := fmt.Fprintf(stdout, "%s version %s %s/%s\n", bin, v, runtime.GOOS, runtime.GOARCH)
	return err
}
