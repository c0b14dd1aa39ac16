package form

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/jobform/internal/core/styles"
)

const dialogHelp = "tab: next  shift+tab: prev  enter: next  ctrl+s: submit  esc: cancel"

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields. Hidden fields keep their values
// but are skipped for focus and rendering.
type Dialog struct {
	fields       []Field
	variables    []string // parallel slice: variable name for each field
	hidden       map[string]bool
	errors       map[string]string
	focusedField int
	submitted    bool
	cancelled    bool
	Title        string
}

// NewDialog creates a form dialog with the given fields and variable names.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, variables []string) *Dialog {
	d := &Dialog{
		fields:    fields,
		variables: variables,
		hidden:    map[string]bool{},
		errors:    map[string]string{},
		Title:     title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and submit/cancel.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "ctrl+s":
		d.submitted = true
		return d, nil
	case "enter":
		if d.isFocusedFieldFiltering() {
			// Let the list accept the filter
			return d.updateFocusedField(msg)
		}
		return d.advanceFocus()
	case "esc":
		if d.isFocusedFieldFiltering() {
			// Let the field handle esc to exit filter mode
			return d.updateFocusedField(msg)
		}
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders the title, visible fields with their errors, and help text.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.FormHeadingStyle.Render(d.Title))
	}

	first := true
	for i, field := range d.fields {
		if d.hidden[d.variables[i]] {
			continue
		}
		if !first {
			parts = append(parts, "")
		}
		first = false

		parts = append(parts, field.View())
		if msg := d.errors[d.variables[i]]; msg != "" {
			parts = append(parts, styles.FormErrorStyle.Render(styles.IconCross+" "+msg))
		}
	}

	parts = append(parts, "", styles.FormHelpStyle.Render(dialogHelp))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of variable names to field values, hidden fields
// included.
func (d *Dialog) FormValues() map[string]any {
	result := make(map[string]any, len(d.fields))
	for i, field := range d.fields {
		result[d.variables[i]] = field.Value()
	}
	return result
}

// ShowOnly hides every field whose variable is not listed. If the focused
// field becomes hidden, focus moves to the nearest visible field.
func (d *Dialog) ShowOnly(variables []string) tea.Cmd {
	clear(d.hidden)
	for _, v := range d.variables {
		if !slices.Contains(variables, v) {
			d.hidden[v] = true
		}
	}

	if len(d.fields) == 0 || !d.isHidden(d.focusedField) {
		return nil
	}

	if next, ok := d.nextVisible(d.focusedField, 1); ok {
		return d.moveFocus(next)
	}
	if prev, ok := d.nextVisible(d.focusedField, -1); ok {
		return d.moveFocus(prev)
	}
	d.fields[d.focusedField].Blur()
	return nil
}

// Visible reports whether the field bound to variable is shown.
func (d *Dialog) Visible(variable string) bool {
	return slices.Contains(d.variables, variable) && !d.hidden[variable]
}

// SetErrors replaces the per-field error messages. A nil map clears them.
func (d *Dialog) SetErrors(errs map[string]string) {
	d.errors = make(map[string]string, len(errs))
	for k, v := range errs {
		d.errors[k] = v
	}
}

// Focus moves focus to the field bound to variable. Unknown or hidden
// variables are ignored.
func (d *Dialog) Focus(variable string) tea.Cmd {
	idx := slices.Index(d.variables, variable)
	if idx < 0 || d.isHidden(idx) {
		return nil
	}
	return d.moveFocus(idx)
}

// FocusedVariable returns the variable of the focused field.
func (d *Dialog) FocusedVariable() string {
	if len(d.fields) == 0 {
		return ""
	}
	return d.variables[d.focusedField]
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

// Reset clears the submitted and cancelled flags so the dialog can keep
// accepting input after a rejected submission.
func (d *Dialog) Reset() {
	d.submitted = false
	d.cancelled = false
}

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next, ok := d.nextVisible(d.focusedField, 1)
	if !ok {
		// Past the last visible field: submit
		d.submitted = true
		return d, nil
	}

	return d, d.moveFocus(next)
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	prev, ok := d.nextVisible(d.focusedField, -1)
	if !ok {
		return d, nil
	}

	return d, d.moveFocus(prev)
}

// nextVisible walks from idx in direction step and returns the first visible
// field index.
func (d *Dialog) nextVisible(idx, step int) (int, bool) {
	for i := idx + step; i >= 0 && i < len(d.fields); i += step {
		if !d.isHidden(i) {
			return i, true
		}
	}
	return 0, false
}

func (d *Dialog) moveFocus(idx int) tea.Cmd {
	d.fields[d.focusedField].Blur()
	d.focusedField = idx
	return d.fields[idx].Focus()
}

func (d *Dialog) isHidden(idx int) bool {
	return d.hidden[d.variables[idx]]
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.isHidden(d.focusedField) {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) isFocusedFieldFiltering() bool {
	if len(d.fields) == 0 {
		return false
	}
	if f, ok := d.fields[d.focusedField].(filterer); ok {
		return f.IsFiltering()
	}
	return false
}
