// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package converter

import "github.com/enginehub/argconv/lib/inject"

// Converter parses argument text into values of type T.
//
// Implementations must not mutate their own state in any method. Each
// call is independent; there is no session across calls.
type Converter[T any] interface {
	// Describe returns a human-readable description of what input is
	// accepted (e.g. "any integer"). It is callable at any time, even
	// before the user has typed anything.
	Describe() string

	// Suggest returns candidate completions for the text typed so far
	// in a single argument slot. Empty input is valid and returns
	// whatever the converter considers good starting suggestions. A nil
	// or empty slice means no suggestions.
	Suggest(input string) []string

	// Convert parses the complete argument text. A conversion may
	// legitimately produce zero, one, or many values. The context is
	// read-only ambient data from the caller.
	Convert(argument string, context inject.Values) Result[T]
}

// Func assembles a [Converter] from functions. A nil SuggestFunc yields
// no suggestions. ConvertFunc must be set.
type Func[T any] struct {
	Description string
	SuggestFunc func(input string) []string
	ConvertFunc func(argument string, context inject.Values) Result[T]
}

// Describe returns f.Description.
func (f Func[T]) Describe() string {
	return f.Description
}

// Suggest calls f.SuggestFunc, or returns nil when it is unset.
func (f Func[T]) Suggest(input string) []string {
	if f.SuggestFunc == nil {
		return nil
	}
	return f.SuggestFunc(input)
}

// Convert calls f.ConvertFunc.
func (f Func[T]) Convert(argument string, context inject.Values) Result[T] {
	return f.ConvertFunc(argument, context)
}
