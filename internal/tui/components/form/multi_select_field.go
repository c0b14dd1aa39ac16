package form

import (
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/jobform/internal/core/styles"
)

// MultiSelectField is a multi-select form field with checkbox toggles.
// Checked state is keyed by option index so it survives list filtering.
type MultiSelectField struct {
	list    list.Model
	options []string
	checked map[int]bool
	label_  string
	focused bool
}

// multiSelectDelegate renders items with checkbox state.
type multiSelectDelegate struct {
	checked map[int]bool
}

func (d multiSelectDelegate) Height() int                             { return 1 }
func (d multiSelectDelegate) Spacing() int                            { return 0 }
func (d multiSelectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d multiSelectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	check := "[ ] "
	if d.checked[item.index] {
		check = "[x] "
	}

	style := styles.TextForegroundStyle
	cursor := "  "
	if index == m.Index() {
		style = styles.SelectFieldItemSelectedStyle
		cursor = styles.IconArrow + " "
	}

	_, _ = io.WriteString(w, cursor+style.Render(check+item.label))
}

// NewMultiSelectFormField creates a multi-select field from static options.
// Options listed in defaults start checked.
func NewMultiSelectFormField(label string, options []string, defaults ...string) *MultiSelectField {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = selectItem{label: opt, index: i}
	}

	checked := make(map[int]bool)
	f := &MultiSelectField{
		list:    newOptionList(items, multiSelectDelegate{checked: checked}),
		options: options,
		checked: checked,
		label_:  label,
	}
	f.SetChecked(defaults)
	return f
}

func (f *MultiSelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "space" && !f.list.SettingFilter() {
		if item, ok := f.list.SelectedItem().(selectItem); ok {
			f.checked[item.index] = !f.checked[item.index]
		}
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *MultiSelectField) View() string {
	if f.list.SettingFilter() {
		return frame(f.label_, f.focused, f.list.FilterInput.View(), f.list.View())
	}
	return frame(f.label_, f.focused, f.list.View())
}

func (f *MultiSelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *MultiSelectField) Blur() {
	f.focused = false
}

func (f *MultiSelectField) Focused() bool { return f.focused }
func (f *MultiSelectField) Label() string { return f.label_ }

// SetChecked replaces the checked set. Values that are not options are ignored.
func (f *MultiSelectField) SetChecked(values []string) {
	clear(f.checked)
	for _, v := range values {
		for i, opt := range f.options {
			if opt == v {
				f.checked[i] = true
			}
		}
	}
}

// Value returns the checked options as []string in option order.
func (f *MultiSelectField) Value() any {
	selected := []string{}
	for i, opt := range f.options {
		if f.checked[i] {
			selected = append(selected, opt)
		}
	}
	return selected
}

// SelectedIndices returns the indices of checked items.
func (f *MultiSelectField) SelectedIndices() []int {
	var indices []int
	for i := range f.options {
		if f.checked[i] {
			indices = append(indices, i)
		}
	}
	return indices
}

// IsFiltering returns whether the list is currently filtering.
func (f *MultiSelectField) IsFiltering() bool {
	return f.list.SettingFilter()
}
