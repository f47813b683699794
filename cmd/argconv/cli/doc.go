// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the argconv CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in
// cmd/argconv/commands and dispatched via [Command.Execute], which
// handles flag parsing, subcommand routing, and structured help output
// with examples.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). The distance computation
// lives in lib/fuzzy so converters report near misses the same way.
//
// Flags are usually declared as tagged struct fields and bound with
// [FlagsFromParams]. Errors returned to the user are [ToolError] values
// carrying a category, and [ExitError] signals a non-zero exit after the
// command has already reported the problem itself.
package cli
