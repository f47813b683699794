// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the argconv command tree.
//
// Every converter command shares one set of flags ([converterParams])
// describing the converter to build: a base type (integer, boolean, or
// choice), optional bounds or keywords, an optional comma-separated
// composite, and an optional permission gate. Commands run the built
// converter against a console actor configured from lib/config.
package commands
