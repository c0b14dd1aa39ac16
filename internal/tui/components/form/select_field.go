package form

import (
	"io"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/jobform/internal/core/styles"
)

const maxVisibleOptions = 8

// SelectFormField is a single-select form field wrapping list.Model.
type SelectFormField struct {
	list    list.Model
	options []string
	label_  string
	focused bool
}

// SelectOption configures a SelectFormField.
type SelectOption func(*selectConfig)

type selectConfig struct {
	noneLabel string
}

// WithNoneOption prepends a row that selects nothing. The field's value is ""
// while that row is highlighted.
func WithNoneOption(label string) SelectOption {
	return func(c *selectConfig) { c.noneLabel = label }
}

// selectDelegate renders items in a single-select list.
type selectDelegate struct{}

func (d selectDelegate) Height() int                             { return 1 }
func (d selectDelegate) Spacing() int                            { return 0 }
func (d selectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d selectDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(selectItem)
	if !ok {
		return
	}

	style := styles.TextForegroundStyle
	if item.none() {
		style = styles.TextMutedStyle
	}
	cursor := "  "
	if index == m.Index() {
		style = styles.SelectFieldItemSelectedStyle
		cursor = styles.IconArrow + " "
	}

	_, _ = io.WriteString(w, cursor)
	_, _ = io.WriteString(w, style.Render(item.label))
}

// NewSelectFormField creates a single-select field from static options.
// defaultVal pre-selects the matching option if found.
func NewSelectFormField(label string, options []string, defaultVal string, opts ...SelectOption) *SelectFormField {
	var cfg selectConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	items := make([]list.Item, 0, len(options)+1)
	if cfg.noneLabel != "" {
		items = append(items, selectItem{label: cfg.noneLabel, index: -1})
	}

	selected := 0
	for i, opt := range options {
		if opt == defaultVal {
			selected = len(items)
		}
		items = append(items, selectItem{label: opt, index: i})
	}

	l := newOptionList(items, selectDelegate{})
	if len(items) > 0 {
		l.Select(selected)
	}

	return &SelectFormField{
		list:    l,
		options: options,
		label_:  label,
	}
}

// newOptionList builds the filterable list shared by select and multi-select.
func newOptionList(items []list.Item, delegate list.ItemDelegate) list.Model {
	height := max(min(len(items), maxVisibleOptions), 1)

	l := list.New(items, delegate, fieldWidth, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowPagination(len(items) > maxVisibleOptions)
	l.Styles.TitleBar = lipgloss.NewStyle()

	l.FilterInput.Prompt = "/ "
	filterStyles := textinput.DefaultStyles(true)
	filterStyles.Focused.Prompt = styles.TextPrimaryStyle
	filterStyles.Cursor.Color = styles.ColorPrimary
	l.FilterInput.SetStyles(filterStyles)

	return l
}

func (f *SelectFormField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.list, cmd = f.list.Update(msg)
	return f, cmd
}

func (f *SelectFormField) View() string {
	if f.list.SettingFilter() {
		return frame(f.label_, f.focused, f.list.FilterInput.View(), f.list.View())
	}
	return frame(f.label_, f.focused, f.list.View())
}

func (f *SelectFormField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectFormField) Blur() {
	f.focused = false
}

func (f *SelectFormField) Focused() bool { return f.focused }

// Value returns the highlighted option, or "" when nothing is selected.
func (f *SelectFormField) Value() any {
	item, ok := f.list.SelectedItem().(selectItem)
	if !ok || item.none() || item.index >= len(f.options) {
		return ""
	}
	return f.options[item.index]
}

func (f *SelectFormField) Label() string { return f.label_ }

// IsFiltering returns whether the list is currently filtering.
func (f *SelectFormField) IsFiltering() bool {
	return f.list.SettingFilter()
}
