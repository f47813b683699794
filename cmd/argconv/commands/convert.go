// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/enginehub/argconv/cmd/argconv/cli"
)

func convertCommand(streams Streams) *cli.Command {
	var params converterParams

	return &cli.Command{
		Name:    "convert",
		Summary: "Convert an argument",
		Description: `Build the converter from flags and convert one argument as the
console actor, printing each resulting value on its own line.

A conversion failure is reported through the console actor and exits
with status 1. The --limit maximum is advertised by describe but not
enforced here: a list longer than the limit still converts.`,
		Usage: "argconv convert [flags] <argument>",
		Examples: []cli.Example{
			{
				Description: "Convert a list of integers",
				Command:     "argconv convert --list 1,2,3",
			},
			{
				Description: "Check a permission-gated converter",
				Command:     "argconv convert --permission worldedit.limit --deny worldedit.limit 5",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("convert", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("convert requires exactly one argument, got %d", len(args)).
					WithHint("Quote arguments containing spaces.")
			}
			argument := args[0]

			session, err := params.open("convert", streams)
			if err != nil {
				return err
			}
			defer session.Close()

			values, err := session.converter.Convert(argument, session.context).Get()
			if err != nil {
				session.logger.Debug("conversion failed", "argument", argument, "error", err)
				session.issuer.PrintError(err.Error())
				return &cli.ExitError{Code: 1}
			}
			session.logger.Debug("converted", "argument", argument, "count", len(values))

			if done, err := params.EmitJSON(streams.Stdout, values); done {
				return err
			}
			for _, value := range values {
				if _, err := fmt.Fprintln(streams.Stdout, value); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
