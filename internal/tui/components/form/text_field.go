package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/jobform/internal/core/styles"
)

const fieldWidth = 40

// TextField is a single-line text input form field.
type TextField struct {
	input   textinput.Model
	label   string
	focused bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder, defaultVal string) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(fieldWidth)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &TextField{
		input: ti,
		label: label,
	}
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextField) View() string {
	return frame(f.label, f.focused, f.input.View())
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

// SetValue replaces the input text.
func (f *TextField) SetValue(v string) { f.input.SetValue(v) }

func (f *TextField) Focused() bool { return f.focused }
func (f *TextField) Value() any    { return f.input.Value() }
func (f *TextField) Label() string { return f.label }

// frame renders a field title above its body with the focus-dependent border.
func frame(label string, focused bool, body ...string) string {
	titleStyle := styles.TextMutedStyle
	borderStyle := styles.FormFieldStyle
	if focused {
		titleStyle = styles.FormTitleStyle
		borderStyle = styles.FormFieldFocusedStyle
	}

	parts := append([]string{titleStyle.Render(label)}, body...)
	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
