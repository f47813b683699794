// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package converter

import (
	"fmt"
	"slices"
)

// Result is the outcome of one conversion attempt: either a successful
// ordered sequence of values (possibly empty) or a failure reason.
// Exactly one is populated. The zero Result is a success with no
// values.
type Result[T any] struct {
	values []T
	err    error
}

// Success returns a successful result holding values in order.
func Success[T any](values ...T) Result[T] {
	return Result[T]{values: values}
}

// SuccessFrom returns a successful result holding a copy of values.
func SuccessFrom[T any](values []T) Result[T] {
	return Result[T]{values: slices.Clone(values)}
}

// Failure returns a failed result with the given reason. A nil reason
// is a programming error and panics.
func Failure[T any](reason error) Result[T] {
	if reason == nil {
		panic("converter.Failure: nil reason")
	}
	return Result[T]{err: reason}
}

// Failuref returns a failed result whose reason is built with
// [fmt.Errorf], so %w wrapping works.
func Failuref[T any](format string, args ...any) Result[T] {
	return Result[T]{err: fmt.Errorf(format, args...)}
}

// IsSuccessful reports whether the conversion succeeded.
func (r Result[T]) IsSuccessful() bool {
	return r.err == nil
}

// Values returns a copy of the converted values, or nil for a failure.
func (r Result[T]) Values() []T {
	if r.err != nil {
		return nil
	}
	return slices.Clone(r.values)
}

// Err returns the failure reason, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the values and failure reason together:
//
//	values, err := result.Get()
//	if err != nil { return err }
func (r Result[T]) Get() ([]T, error) {
	return r.Values(), r.err
}

// Len returns the number of converted values (0 for a failure).
func (r Result[T]) Len() int {
	if r.err != nil {
		return 0
	}
	return len(r.values)
}

// appendTo appends the result's values to dst without copying them
// first. Only for successful results.
func (r Result[T]) appendTo(dst []T) []T {
	return append(dst, r.values...)
}
