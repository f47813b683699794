// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package actor

import "github.com/enginehub/argconv/lib/inject"

// Key is the injected-context key for the actor issuing a command.
var Key = inject.NewKey[Actor]("actor")

// With returns values with the actor added.
func With(values inject.Values, actor Actor) inject.Values {
	return values.With(Key.Bind(actor))
}

// From returns the actor in values, if any. A nil actor stored under
// [Key] is reported as absent.
func From(values inject.Values) (Actor, bool) {
	actor, ok := inject.Get(values, Key)
	if !ok || actor == nil {
		return nil, false
	}
	return actor, true
}
