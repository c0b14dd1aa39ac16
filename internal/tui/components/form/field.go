package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text and select, []string for multi-select
	Label() string // Display label for the field
}

// filterer is an optional interface for fields that support list filtering.
type filterer interface {
	IsFiltering() bool
}
