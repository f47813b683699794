// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

// Package actor models whoever issued a command.
//
// An [Actor] can receive text at three severities plus raw text, answer
// permission checks, report its locale, and identify itself with a
// stable UUID and a [SessionKey]. Converters never talk to an actor
// directly; they find one in the injected context via [From] when a
// conversion depends on who is asking (see [RequirePermission]).
//
// [Console] is the actor for commands typed at a server console or a
// terminal. It holds every permission, has a fixed identity, and
// renders messages with terminal styling. Messages may carry legacy
// color codes ("&c", "§l", ...), which are translated to ANSI styling
// by [Format] or stripped when color is disabled.
package actor
