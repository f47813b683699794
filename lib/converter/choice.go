// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package converter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/enginehub/argconv/lib/fuzzy"
	"github.com/enginehub/argconv/lib/inject"
)

// Choice converts one of a fixed set of keywords. Matching ignores
// case; the converted value is the keyword as declared. When a
// wildcard is configured, it converts to every keyword in declaration
// order.
type Choice struct {
	choices  []string
	wildcard string
}

// NewChoice returns a Choice over the given keywords. Keywords must be
// non-empty, unique ignoring case, and free of commas so they compose
// with [CommaSeparated].
func NewChoice(choices ...string) (*Choice, error) {
	if len(choices) == 0 {
		return nil, fmt.Errorf("choice converter: at least one choice is required")
	}
	seen := make(map[string]bool, len(choices))
	for _, choice := range choices {
		if err := validateKeyword(choice); err != nil {
			return nil, fmt.Errorf("choice converter: %w", err)
		}
		lowered := strings.ToLower(choice)
		if seen[lowered] {
			return nil, fmt.Errorf("choice converter: duplicate choice %q", choice)
		}
		seen[lowered] = true
	}
	return &Choice{choices: slices.Clone(choices)}, nil
}

// WithWildcard returns a copy of c that expands token to every choice.
// The token must not collide with a choice.
func (c *Choice) WithWildcard(token string) (*Choice, error) {
	if err := validateKeyword(token); err != nil {
		return nil, fmt.Errorf("choice converter wildcard: %w", err)
	}
	if c.lookup(token) != "" {
		return nil, fmt.Errorf("choice converter wildcard: %q is already a choice", token)
	}
	return &Choice{choices: c.choices, wildcard: token}, nil
}

// Choices returns the keywords in declaration order.
func (c *Choice) Choices() []string {
	return slices.Clone(c.choices)
}

// Wildcard returns the wildcard token, or "" when none is configured.
func (c *Choice) Wildcard() string {
	return c.wildcard
}

// Describe implements [Converter].
func (c *Choice) Describe() string {
	description := "one of " + strings.Join(c.choices, ", ")
	if c.wildcard != "" {
		description += ", or " + c.wildcard + " for all"
	}
	return description
}

// Suggest implements [Converter]. It returns every keyword (then the
// wildcard) with the typed prefix.
func (c *Choice) Suggest(input string) []string {
	candidates := c.choices
	if c.wildcard != "" {
		candidates = append(slices.Clone(c.choices), c.wildcard)
	}
	return prefixMatches(candidates, input)
}

// Convert implements [Converter].
func (c *Choice) Convert(argument string, _ inject.Values) Result[string] {
	if c.wildcard != "" && argument == c.wildcard {
		return SuccessFrom(c.choices)
	}
	if match := c.lookup(argument); match != "" {
		return Success(match)
	}
	if suggestion := fuzzy.ClosestFold(argument, c.choices, fuzzy.DefaultThreshold); suggestion != "" {
		return Failuref[string]("unknown value %q (did you mean %q?)", argument, suggestion)
	}
	return Failuref[string]("unknown value %q: expected %s", argument, c.Describe())
}

func (c *Choice) lookup(argument string) string {
	for _, choice := range c.choices {
		if strings.EqualFold(choice, argument) {
			return choice
		}
	}
	return ""
}

func validateKeyword(keyword string) error {
	if keyword == "" {
		return fmt.Errorf("empty keyword")
	}
	if strings.Contains(keyword, separator) {
		return fmt.Errorf("keyword %q contains a comma", keyword)
	}
	return nil
}
