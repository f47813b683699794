// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package converter

import (
	"fmt"
	"strconv"

	"github.com/enginehub/argconv/lib/inject"
)

// Integer converts base-10 integers, optionally within inclusive
// bounds. A nil bound is open.
type Integer struct {
	Min *int
	Max *int
}

// IntegerBetween returns an Integer accepting values in [low, high].
func IntegerBetween(low, high int) Integer {
	return Integer{Min: &low, Max: &high}
}

// Describe implements [Converter].
func (i Integer) Describe() string {
	switch {
	case i.Min != nil && i.Max != nil:
		return fmt.Sprintf("an integer between %d and %d", *i.Min, *i.Max)
	case i.Min != nil:
		return fmt.Sprintf("an integer of at least %d", *i.Min)
	case i.Max != nil:
		return fmt.Sprintf("an integer of at most %d", *i.Max)
	default:
		return "any integer"
	}
}

// Suggest implements [Converter]. Integers have no useful completions.
func (i Integer) Suggest(string) []string {
	return nil
}

// Convert implements [Converter].
func (i Integer) Convert(argument string, _ inject.Values) Result[int] {
	value, err := strconv.Atoi(argument)
	if err != nil {
		return Failuref[int]("invalid integer %q", argument)
	}
	if i.Min != nil && value < *i.Min {
		return Failuref[int]("%d is out of range: must be %s", value, i.Describe())
	}
	if i.Max != nil && value > *i.Max {
		return Failuref[int]("%d is out of range: must be %s", value, i.Describe())
	}
	return Success(value)
}
