// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package converter

import "github.com/enginehub/argconv/lib/inject"

// Erase adapts a Converter[T] to a Converter[any]. Values keep their
// dynamic type. Use it when the value type is only known at runtime,
// e.g. when a converter is picked from configuration.
func Erase[T any](delegate Converter[T]) Converter[any] {
	if already, ok := any(delegate).(Converter[any]); ok {
		return already
	}
	return erased[T]{delegate: delegate}
}

type erased[T any] struct {
	delegate Converter[T]
}

func (e erased[T]) Describe() string {
	return e.delegate.Describe()
}

func (e erased[T]) Suggest(input string) []string {
	return e.delegate.Suggest(input)
}

func (e erased[T]) Convert(argument string, context inject.Values) Result[any] {
	result := e.delegate.Convert(argument, context)
	if !result.IsSuccessful() {
		return Result[any]{err: result.err}
	}
	values := make([]any, len(result.values))
	for i, value := range result.values {
		values[i] = value
	}
	return Result[any]{values: values}
}
