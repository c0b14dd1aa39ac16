// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so rendered
// views can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyPress creates a key press message for a single rune.
func KeyPress(key rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: key, Text: string(key)})
}

// Type returns one key press per rune of s.
func Type(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, KeyPress(r))
	}
	return msgs
}

func KeyDown() tea.Msg  { return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}) }
func KeyUp() tea.Msg    { return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp}) }
func KeyEnter() tea.Msg { return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}) }
func KeyTab() tea.Msg   { return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}) }
func KeyEsc() tea.Msg   { return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}) }
func KeySpace() tea.Msg { return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "}) }

// KeyShiftTab creates a shift+tab key press message.
func KeyShiftTab() tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
}

// KeyCtrl creates a ctrl+<r> key press message.
func KeyCtrl(r rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl})
}

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
