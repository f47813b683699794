// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package actor

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

// ConsoleID is the fixed identity of every console actor.
var ConsoleID = uuid.MustParse("a233eb4b-4cab-42cd-9fd9-7e7b9a3f74be")

// Severity colors.
var (
	printColor = lipgloss.Color("#FF55FF")
	debugColor = lipgloss.Color("#AAAAAA")
	errorColor = lipgloss.Color("#FF5555")
)

// ColorMode controls whether console output is styled.
type ColorMode string

const (
	// ColorAuto styles output only when the writer is a terminal,
	// honoring NO_COLOR and the terminal's advertised capabilities.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output with the 256-color palette.
	ColorAlways ColorMode = "always"
	// ColorNever writes plain text.
	ColorNever ColorMode = "never"
)

// ParseColorMode parses "auto", "always", or "never". The empty string
// is [ColorAuto].
func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(value)) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q: expected auto, always, or never", value)
	}
}

// ConsoleConfig configures a [Console].
type ConsoleConfig struct {
	// Name is the display name. Default: "Console".
	Name string

	// Locale is reported by [Console.Locale]. Default: en-US.
	Locale language.Tag

	// Color selects output styling. Default: [ColorAuto].
	Color ColorMode
}

// Console is the actor for commands entered at a console. It holds all
// permissions, is not a player, and writes each line of a message to
// its writer separately. Writes are serialized, so concurrent prints
// never interleave within a line.
type Console struct {
	name     string
	locale   language.Tag
	renderer *lipgloss.Renderer

	mu     sync.Mutex
	writer io.Writer
}

// NewConsole returns a console actor writing to writer.
func NewConsole(writer io.Writer, config ConsoleConfig) *Console {
	name := config.Name
	if name == "" {
		name = "Console"
	}
	locale := config.Locale
	if locale == language.Und {
		locale = language.AmericanEnglish
	}
	return &Console{
		name:     name,
		locale:   locale,
		renderer: newRenderer(writer, config.Color),
		writer:   writer,
	}
}

// newRenderer builds a renderer with an explicit color profile.
// lipgloss re-detects the profile from the environment unless one is
// set, so every mode sets it.
func newRenderer(writer io.Writer, mode ColorMode) *lipgloss.Renderer {
	profile := termenv.Ascii
	switch mode {
	case ColorAlways:
		profile = termenv.ANSI256
	case ColorNever:
	default:
		if file, ok := writer.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			profile = termenv.NewOutput(writer).EnvColorProfile()
		}
	}
	renderer := lipgloss.NewRenderer(writer, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return renderer
}

// Name implements [Actor].
func (c *Console) Name() string { return c.name }

// UniqueID implements [Actor]. It is always [ConsoleID].
func (c *Console) UniqueID() uuid.UUID { return ConsoleID }

// SessionKey implements [Actor]. The console session is anonymous,
// never active, and never persisted.
func (c *Console) SessionKey() SessionKey { return consoleSession{} }

// Groups implements [Actor]. The console belongs to no groups.
func (c *Console) Groups() []string { return nil }

// IsPlayer implements [Actor].
func (c *Console) IsPlayer() bool { return false }

// HasPermission implements [Actor]. The console holds every permission.
func (c *Console) HasPermission(string) bool { return true }

// CheckPermission implements [Actor]. It never fails.
func (c *Console) CheckPermission(string) error { return nil }

// Locale implements [Actor].
func (c *Console) Locale() language.Tag { return c.locale }

// Print implements [Actor].
func (c *Console) Print(message string) { c.send(printColor, message) }

// PrintDebug implements [Actor].
func (c *Console) PrintDebug(message string) { c.send(debugColor, message) }

// PrintError implements [Actor].
func (c *Console) PrintError(message string) { c.send(errorColor, message) }

// PrintRaw implements [Actor].
func (c *Console) PrintRaw(message string) { c.send(nil, message) }

// send writes each line of message styled with base. Write errors are
// dropped: an actor has nowhere to report them.
func (c *Console) send(base lipgloss.TerminalColor, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range strings.Split(message, "\n") {
		fmt.Fprintln(c.writer, Format(c.renderer, base, line))
	}
}

type consoleSession struct{}

func (consoleSession) Name() string        { return "" }
func (consoleSession) IsActive() bool      { return false }
func (consoleSession) IsPersistent() bool  { return false }
func (consoleSession) UniqueID() uuid.UUID { return ConsoleID }
