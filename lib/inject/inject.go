// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package inject

import "fmt"

// Key identifies a value of type T in a [Values] bag. Keys compare by
// identity: two keys created by separate NewKey calls never collide,
// even when they share a name.
type Key[T any] struct {
	id *keyID
}

// keyID is the identity behind a Key. It is a pointer so that copies
// of a Key still refer to the same slot.
type keyID struct {
	name string
}

// NewKey creates a key for values of type T. The name appears only in
// String output and error messages.
func NewKey[T any](name string) Key[T] {
	return Key[T]{id: &keyID{name: name}}
}

// Name returns the name the key was created with.
func (k Key[T]) Name() string {
	if k.id == nil {
		return ""
	}
	return k.id.name
}

// String returns the key name and its value type, e.g. "actor (actor.Actor)".
func (k Key[T]) String() string {
	return fmt.Sprintf("%s (%s)", k.Name(), typeName[T]())
}

// Bind pairs the key with a value for use with [Values.With].
func (k Key[T]) Bind(value T) Binding {
	return Binding{id: k.id, value: value}
}

// Binding is a key-value pair ready to be added to a bag.
type Binding struct {
	id    *keyID
	value any
}

// Values is an immutable bag of injected values. The zero value is an
// empty bag and is ready to use.
type Values struct {
	entries map[*keyID]any
}

// Empty returns a bag with no values.
func Empty() Values {
	return Values{}
}

// Of returns a bag holding the given bindings. Later bindings for the
// same key replace earlier ones.
func Of(bindings ...Binding) Values {
	return Values{}.With(bindings...)
}

// With returns a copy of the bag with the given bindings added. The
// receiver is not modified. Bindings built from a zero Key are ignored.
func (v Values) With(bindings ...Binding) Values {
	if len(bindings) == 0 {
		return v
	}
	entries := make(map[*keyID]any, len(v.entries)+len(bindings))
	for id, value := range v.entries {
		entries[id] = value
	}
	for _, binding := range bindings {
		if binding.id == nil {
			continue
		}
		entries[binding.id] = binding.value
	}
	return Values{entries: entries}
}

// Len returns the number of values in the bag.
func (v Values) Len() int {
	return len(v.entries)
}

// Get returns the value stored under key, and whether it was present.
func Get[T any](values Values, key Key[T]) (T, bool) {
	var zero T
	if key.id == nil {
		return zero, false
	}
	raw, ok := values.entries[key.id]
	if !ok {
		return zero, false
	}
	value, ok := raw.(T)
	return value, ok
}

// Require returns the value stored under key, or an error naming the
// key when it is absent.
func Require[T any](values Values, key Key[T]) (T, error) {
	value, ok := Get(values, key)
	if !ok {
		return value, fmt.Errorf("injected value %s is not available", key)
	}
	return value, nil
}

func typeName[T any]() string {
	var zero T
	name := fmt.Sprintf("%T", &zero)
	return name[1:]
}
