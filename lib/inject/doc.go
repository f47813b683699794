// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

// Package inject provides the injected context passed through every
// conversion call.
//
// A [Values] bag carries ambient, read-only data supplied by whoever
// dispatches a command: the actor that issued it, the locale to render
// failures in, anything a converter may need that is not part of the
// argument text. Values are addressed by typed keys created with
// [NewKey], so a lookup returns the stored type without assertions at
// the call site:
//
//	var worldKey = inject.NewKey[*World]("world")
//
//	values := inject.Empty().With(worldKey.Bind(world))
//	world, ok := inject.Get(values, worldKey)
//
// A bag is immutable. [Values.With] returns a new bag and leaves the
// receiver unchanged, so one bag can be shared across concurrent
// conversions without synchronization.
//
// This package depends on no other argconv packages.
package inject
