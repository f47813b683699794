// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

// Package converter turns the raw text of a command argument into typed
// values.
//
// Every converter implements [Converter], which has three operations:
//
//   - [Converter.Describe] returns a human-readable description of the
//     accepted input, used when rendering help text.
//   - [Converter.Suggest] returns completions for partially typed input.
//   - [Converter.Convert] parses the full argument text into zero or more
//     values, reported as a [Result].
//
// Converters hold configuration only. They are built once when commands
// are defined and are safe for concurrent use as long as their
// delegates and the injected context are.
//
// [CommaSeparated] composes any converter into one that accepts a
// comma-separated list, converting each segment with the delegate and
// flattening the results in order. The first failing segment stops
// conversion and its failure is returned unchanged. Composites are
// converters themselves, so they can be wrapped again.
//
// Base converters cover common argument shapes: [Integer], [Choice]
// (enumerated keywords with optional wildcard expansion), and [Boolean].
// [Func] assembles a converter from plain functions, and [Erase] hides
// the element type so converters chosen at runtime can be handled
// uniformly.
package converter
