// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package converter

import (
	"strings"

	"github.com/enginehub/argconv/lib/inject"
)

var booleanWords = map[string]bool{
	"true": true, "yes": true, "on": true, "1": true,
	"false": false, "no": false, "off": false, "0": false,
}

// Boolean converts true/false style words, case-insensitively.
type Boolean struct{}

// Describe implements [Converter].
func (Boolean) Describe() string {
	return "true or false"
}

// Suggest implements [Converter].
func (Boolean) Suggest(input string) []string {
	return prefixMatches([]string{"true", "false"}, input)
}

// Convert implements [Converter].
func (Boolean) Convert(argument string, _ inject.Values) Result[bool] {
	value, ok := booleanWords[strings.ToLower(argument)]
	if !ok {
		return Failuref[bool]("invalid boolean %q: expected true or false", argument)
	}
	return Success(value)
}

// prefixMatches returns the candidates starting with prefix, compared
// case-insensitively, in candidate order.
func prefixMatches(candidates []string, prefix string) []string {
	lowered := strings.ToLower(prefix)
	var matches []string
	for _, candidate := range candidates {
		if strings.HasPrefix(strings.ToLower(candidate), lowered) {
			matches = append(matches, candidate)
		}
	}
	return matches
}
