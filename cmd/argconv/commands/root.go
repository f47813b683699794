// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"

	"github.com/enginehub/argconv/cmd/argconv/cli"
	"github.com/enginehub/argconv/lib/version"
)

// Streams are the writers commands print to.
type Streams struct {
	// Stdout receives command results.
	Stdout io.Writer

	// Stderr receives help, logs, and console actor messages unless
	// the config redirects the console elsewhere.
	Stderr io.Writer
}

// Root builds and returns the complete argconv command tree.
func Root(streams Streams) *cli.Command {
	return &cli.Command{
		Name: "argconv",
		Description: `argconv: exercise command argument converters.

Build a converter from flags, then describe it, ask it for completions,
or convert an argument with it as the console actor.`,
		HelpOutput: streams.Stderr,
		Subcommands: []*cli.Command{
			describeCommand(streams),
			suggestCommand(streams),
			convertCommand(streams),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					if len(args) > 0 {
						return cli.Validation("version takes no arguments, got %q", args[0])
					}
					_, err := fmt.Fprintf(streams.Stdout, "argconv %s\n", version.Full())
					return err
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Convert a list of bounded integers",
				Command:     "argconv convert --min 1 --max 10 --list 1,5,10",
			},
			{
				Description: "Describe a limited list of choices",
				Command:     "argconv describe --type choice --choices stone,dirt,grass --limit 3",
			},
			{
				Description: "Complete the last item of a list",
				Command:     "argconv suggest --type choice --choices stone,dirt,grass --list stone,gr",
			},
			{
				Description: "Expand a wildcard",
				Command:     "argconv convert --type choice --choices north,south --wildcard '*' '*'",
			},
		},
	}
}
