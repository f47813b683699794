// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/enginehub/argconv/cmd/argconv/cli"
)

type describeResult struct {
	Description string `json:"description"`
	Permission  string `json:"permission,omitempty"`
}

func describeCommand(streams Streams) *cli.Command {
	var params converterParams

	return &cli.Command{
		Name:    "describe",
		Summary: "Print the converter's description",
		Description: `Build the converter from flags and print the description a help
screen would show for it.`,
		Usage: "argconv describe [flags]",
		Examples: []cli.Example{
			{
				Description: "Describe a bounded list of integers",
				Command:     "argconv describe --min 1 --max 64 --limit 5",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("describe", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("describe takes no arguments, got %q", args[0])
			}

			session, err := params.open("describe", streams)
			if err != nil {
				return err
			}
			defer session.Close()

			result := describeResult{
				Description: session.converter.Describe(),
				Permission:  params.Permission,
			}
			if done, err := params.EmitJSON(streams.Stdout, result); done {
				return err
			}
			_, err = fmt.Fprintln(streams.Stdout, result.Description)
			return err
		},
	}
}
