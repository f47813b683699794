// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package actor

import (
	"github.com/enginehub/argconv/lib/converter"
	"github.com/enginehub/argconv/lib/inject"
)

// Gated is a converter usable only by actors holding a permission.
type Gated[T any] struct {
	delegate   converter.Converter[T]
	permission string
}

// RequirePermission wraps delegate so that conversion fails unless the
// actor in the injected context holds permission. Describe and Suggest
// are passed through unchanged.
func RequirePermission[T any](delegate converter.Converter[T], permission string) *Gated[T] {
	return &Gated[T]{delegate: delegate, permission: permission}
}

// Permission returns the required permission.
func (g *Gated[T]) Permission() string {
	return g.permission
}

// Describe implements [converter.Converter].
func (g *Gated[T]) Describe() string {
	return g.delegate.Describe()
}

// Suggest implements [converter.Converter].
func (g *Gated[T]) Suggest(input string) []string {
	return g.delegate.Suggest(input)
}

// Convert implements [converter.Converter]. The permission is checked
// before the delegate sees the argument.
func (g *Gated[T]) Convert(argument string, context inject.Values) converter.Result[T] {
	issuer, ok := From(context)
	if !ok {
		return converter.Failuref[T]("%w: no actor to check permission %q against", ErrUnauthorized, g.permission)
	}
	if err := issuer.CheckPermission(g.permission); err != nil {
		return converter.Failure[T](err)
	}
	return g.delegate.Convert(argument, context)
}
