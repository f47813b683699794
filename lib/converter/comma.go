// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/enginehub/argconv/lib/inject"
)

// Unbounded is the maximum of a [CommaSeparated] converter that places
// no limit on the number of values.
const Unbounded = -1

// ErrInvalidMaximum is returned by [WrapAndLimit] when the maximum is
// neither [Unbounded] nor greater than 1.
var ErrInvalidMaximum = errors.New("maximum must be greater than 1, or exactly -1")

const separator = ","

// CommaSeparated converts a comma-separated list of segments, each
// parsed by a delegate converter, into one flattened ordered sequence.
//
// The maximum is advertised in [CommaSeparated.Describe] only. Convert
// does not reject inputs producing more values than the maximum; a
// delegate that expands a wildcard may legitimately produce more.
type CommaSeparated[T any] struct {
	delegate Converter[T]
	maximum  int
}

// Wrap returns an unbounded comma-separated converter over delegate.
func Wrap[T any](delegate Converter[T]) *CommaSeparated[T] {
	return &CommaSeparated[T]{delegate: delegate, maximum: Unbounded}
}

// WrapAndLimit returns a comma-separated converter over delegate that
// advertises at most maximum values. maximum must be [Unbounded] or
// greater than 1; anything else returns an error wrapping
// [ErrInvalidMaximum] and no converter.
func WrapAndLimit[T any](delegate Converter[T], maximum int) (*CommaSeparated[T], error) {
	if maximum != Unbounded && maximum <= 1 {
		return nil, fmt.Errorf("comma separated converter: %w (got %d)", ErrInvalidMaximum, maximum)
	}
	return &CommaSeparated[T]{delegate: delegate, maximum: maximum}, nil
}

// MustWrapAndLimit is WrapAndLimit for converters built at setup time,
// where an invalid maximum is a programming error. Panics on error.
func MustWrapAndLimit[T any](delegate Converter[T], maximum int) *CommaSeparated[T] {
	wrapped, err := WrapAndLimit(delegate, maximum)
	if err != nil {
		panic(err)
	}
	return wrapped
}

// Delegate returns the wrapped converter.
func (c *CommaSeparated[T]) Delegate() Converter[T] {
	return c.delegate
}

// Maximum returns the advertised maximum, or [Unbounded].
func (c *CommaSeparated[T]) Maximum() int {
	return c.maximum
}

// Describe returns "Comma separated values of <delegate description>",
// prefixed with "Up to N " when a maximum is set.
func (c *CommaSeparated[T]) Describe() string {
	var result strings.Builder
	if c.maximum != Unbounded {
		result.WriteString("up to ")
		result.WriteString(strconv.Itoa(c.maximum))
		result.WriteByte(' ')
	}
	result.WriteString("comma separated values of ")
	result.WriteString(c.delegate.Describe())
	return capitalize(result.String())
}

// Suggest forwards only the segment after the last comma to the
// delegate. Earlier segments are complete and never re-suggested.
func (c *CommaSeparated[T]) Suggest(input string) []string {
	last := input
	if index := strings.LastIndex(input, separator); index >= 0 {
		last = input[index+len(separator):]
	}
	return c.delegate.Suggest(last)
}

// Convert splits argument on commas and converts each segment with the
// delegate, left to right. Segments are passed verbatim: no trimming,
// and empty segments are converted like any other. The first failure
// is returned as is and later segments are not evaluated.
func (c *CommaSeparated[T]) Convert(argument string, context inject.Values) Result[T] {
	var values []T
	for _, segment := range strings.Split(argument, separator) {
		result := c.delegate.Convert(segment, context)
		if !result.IsSuccessful() {
			return result
		}
		values = result.appendTo(values)
	}
	return Result[T]{values: values}
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
