// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for argconv.
//
// Configuration is loaded from a single file specified by either the
// ARGCONV_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no automatic file search. Commands that
// run without either use [Default].
//
// The configuration file supports environment-specific sections
// (development, staging, production) that override base values when
// [Config].Environment matches. Production disables console color
// unless the file says otherwise, since production output is usually
// collected rather than read at a terminal.
//
// Variable expansion is performed on console.output after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No other
// environment variables override config values.
//
// Key exports:
//
//   - [Config] -- master struct with DefaultLocale and Console
//   - [Default] -- returns a Config with development defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other argconv packages.
package config
