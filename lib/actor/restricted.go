// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package actor

import (
	"fmt"
	"slices"
)

// Restricted is an actor that behaves like its base actor except that
// the listed permissions are always denied.
type Restricted struct {
	Actor
	denied []string
}

// Restrict returns base with permissions removed. Listing no
// permissions returns base unchanged.
func Restrict(base Actor, permissions ...string) Actor {
	if len(permissions) == 0 {
		return base
	}
	return &Restricted{Actor: base, denied: slices.Clone(permissions)}
}

// Denied returns the permissions this actor never holds.
func (r *Restricted) Denied() []string {
	return slices.Clone(r.denied)
}

// HasPermission implements [Actor].
func (r *Restricted) HasPermission(permission string) bool {
	if slices.Contains(r.denied, permission) {
		return false
	}
	return r.Actor.HasPermission(permission)
}

// CheckPermission implements [Actor].
func (r *Restricted) CheckPermission(permission string) error {
	if slices.Contains(r.denied, permission) {
		return fmt.Errorf("%w: %s lacks permission %q", ErrUnauthorized, r.Name(), permission)
	}
	return r.Actor.CheckPermission(permission)
}
