// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package actor

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// ErrUnauthorized is wrapped by errors reporting a failed permission
// check.
var ErrUnauthorized = errors.New("not authorized")

// Actor is the issuer of a command.
type Actor interface {
	// Name is the display name of the actor.
	Name() string

	// UniqueID is stable for the lifetime of the actor.
	UniqueID() uuid.UUID

	// SessionKey identifies the actor's session state.
	SessionKey() SessionKey

	// Groups lists the permission groups the actor belongs to.
	Groups() []string

	// IsPlayer reports whether the actor is a player in the host world,
	// as opposed to a console or automated sender.
	IsPlayer() bool

	// Print sends an informational message.
	Print(message string)

	// PrintDebug sends a low-importance message.
	PrintDebug(message string)

	// PrintError sends an error message.
	PrintError(message string)

	// PrintRaw sends a message without severity styling.
	PrintRaw(message string)

	// HasPermission reports whether the actor holds permission.
	HasPermission(permission string) bool

	// CheckPermission returns an error wrapping [ErrUnauthorized] when
	// the actor does not hold permission.
	CheckPermission(permission string) error

	// Locale is the actor's preferred language.
	Locale() language.Tag
}

// SessionKey identifies the session an actor's state is stored under.
type SessionKey interface {
	// Name is the session owner's name, or "" for anonymous sessions.
	Name() string

	// IsActive reports whether the owner is currently connected.
	IsActive() bool

	// IsPersistent reports whether the session should be saved across
	// restarts.
	IsPersistent() bool

	// UniqueID identifies the session.
	UniqueID() uuid.UUID
}
