// Copyright 2026 The Argconv Authors
// SPDX-License-Identifier: Apache-2.0

package actor

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Legacy color codes: a marker ('&' or '§') followed by one code
// character. The sixteen colors match the classic chat palette.
var codeColors = map[byte]lipgloss.Color{
	'0': "#000000", // black
	'1': "#0000AA", // dark blue
	'2': "#00AA00", // dark green
	'3': "#00AAAA", // dark aqua
	'4': "#AA0000", // dark red
	'5': "#AA00AA", // dark purple
	'6': "#FFAA00", // gold
	'7': "#AAAAAA", // gray
	'8': "#555555", // dark gray
	'9': "#5555FF", // blue
	'a': "#55FF55", // green
	'b': "#55FFFF", // aqua
	'c': "#FF5555", // red
	'd': "#FF55FF", // light purple
	'e': "#FFFF55", // yellow
	'f': "#FFFFFF", // white
}

const (
	codeObfuscated    = 'k'
	codeBold          = 'l'
	codeStrikethrough = 'm'
	codeUnderline     = 'n'
	codeItalic        = 'o'
	codeReset         = 'r'
)

// textState is the styling in effect for a run of text.
type textState struct {
	color         lipgloss.TerminalColor
	bold          bool
	italic        bool
	underline     bool
	strikethrough bool
}

type textRun struct {
	text  string
	state textState
}

// Format renders message with the given renderer, translating legacy
// color codes into terminal styling. Text before the first code, and
// after a reset code, uses base (nil for the terminal default). A color
// code clears bold/italic/underline/strikethrough, as in the legacy
// format. Unknown codes are left in the text.
func Format(renderer *lipgloss.Renderer, base lipgloss.TerminalColor, message string) string {
	var output strings.Builder
	for _, run := range parseCodes(message, textState{color: base}) {
		style := renderer.NewStyle().
			TabWidth(lipgloss.NoTabConversion).
			Bold(run.state.bold).
			Italic(run.state.italic).
			Underline(run.state.underline).
			Strikethrough(run.state.strikethrough)
		if run.state.color != nil {
			style = style.Foreground(run.state.color)
		}
		output.WriteString(style.Render(run.text))
	}
	return output.String()
}

// StripCodes removes legacy color codes from message.
func StripCodes(message string) string {
	var output strings.Builder
	for _, run := range parseCodes(message, textState{}) {
		output.WriteString(run.text)
	}
	return output.String()
}

// parseCodes splits message into runs of uniformly styled text. Empty
// runs are dropped.
func parseCodes(message string, base textState) []textRun {
	var runs []textRun
	var current strings.Builder
	state := base

	flush := func() {
		if current.Len() > 0 {
			runs = append(runs, textRun{text: current.String(), state: state})
			current.Reset()
		}
	}

	for index := 0; index < len(message); {
		marker, size := utf8.DecodeRuneInString(message[index:])
		if (marker == '&' || marker == '§') && index+size < len(message) {
			code := lowerASCII(message[index+size])
			if next, ok := applyCode(state, base, code); ok {
				flush()
				state = next
				index += size + 1
				continue
			}
		}
		current.WriteString(message[index : index+size])
		index += size
	}
	flush()
	return runs
}

// applyCode returns the state after code, or false if code is not a
// recognized color or format code.
func applyCode(state, base textState, code byte) (textState, bool) {
	if color, ok := codeColors[code]; ok {
		return textState{color: color}, true
	}
	switch code {
	case codeBold:
		state.bold = true
	case codeItalic:
		state.italic = true
	case codeUnderline:
		state.underline = true
	case codeStrikethrough:
		state.strikethrough = true
	case codeObfuscated:
		// No terminal equivalent; consumed without effect.
	case codeReset:
		return base, true
	default:
		return state, false
	}
	return state, true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
