// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/enginehub/argconv/cmd/argconv/cli"
)

func suggestCommand(streams Streams) *cli.Command {
	var params converterParams

	return &cli.Command{
		Name:    "suggest",
		Summary: "Print completions for a partial argument",
		Description: `Build the converter from flags and print the completions it offers
for a partially typed argument, one per line. With --list only the text
after the last comma is completed.

With no argument, completions for the empty string are printed.`,
		Usage: "argconv suggest [flags] [partial]",
		Examples: []cli.Example{
			{
				Description: "Complete a keyword",
				Command:     "argconv suggest --type choice --choices stone,sand,dirt s",
			},
			{
				Description: "Complete the last item in a list",
				Command:     "argconv suggest --type boolean --list yes,n",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("suggest", &params)
		},
		Run: func(args []string) error {
			if len(args) > 1 {
				return cli.Validation("suggest takes at most one argument, got %d", len(args))
			}
			partial := ""
			if len(args) == 1 {
				partial = args[0]
			}

			session, err := params.open("suggest", streams)
			if err != nil {
				return err
			}
			defer session.Close()

			suggestions := session.converter.Suggest(partial)
			session.logger.Debug("suggested", "partial", partial, "count", len(suggestions))

			if done, err := params.EmitJSON(streams.Stdout, suggestions); done {
				return err
			}
			for _, suggestion := range suggestions {
				if _, err := fmt.Fprintln(streams.Stdout, suggestion); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
