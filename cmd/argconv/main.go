// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

// argconv builds command argument converters from flags and runs them
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/enginehub/argconv/cmd/argconv/commands"
)

func main() {
	if err := run(); err != nil {
		// A failed conversion has already been reported by the console
		// actor. Don't print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	streams := commands.Streams{Stdout: os.Stdout, Stderr: os.Stderr}
	return commands.Root(streams).Execute(os.Args[1:])
}
