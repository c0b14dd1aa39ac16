// Package apply hosts the interactive job application form.
package apply

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/jobform/internal/core/application"
	"github.com/colonyops/jobform/internal/tui/components"
	"github.com/colonyops/jobform/internal/tui/components/form"
)

const (
	summaryModalTitle = "Application submitted"
	summaryHelp       = "↑/↓ scroll  enter/esc: back to form  ctrl+c: quit"
	discardPrompt     = "Discard this application?"
)

// uiState represents the current state of the form screen.
type uiState int

const (
	stateEditing uiState = iota
	stateSummary
	stateConfirmDiscard
)

// Options configures the form screen.
type Options struct {
	Title        string // form heading
	SummaryTitle string // heading of the rendered summary
	WordWrap     int    // summary wrap width
	Logger       zerolog.Logger
}

// Model is the bubbletea model for one application session. Widgets hold the
// raw input; the session owns the draft, errors and summary state.
type Model struct {
	session *application.Session
	seed    application.Draft
	dialog  *form.Dialog
	summary *components.SummaryDialog
	confirm components.ConfirmModal
	state   uiState
	opts    Options
	log     zerolog.Logger

	width    int
	height   int
	accepted bool
	quitting bool
}

// New builds the form for session. Every field gets a widget up front so
// values survive position changes; visibility follows the current layout.
func New(session *application.Session, opts Options) Model {
	draft := session.Draft()

	fields := make([]form.Field, 0, len(application.Fields))
	variables := make([]string, 0, len(application.Fields))
	for _, f := range application.Fields {
		fields = append(fields, newWidget(application.Spec(f), draft))
		variables = append(variables, string(f))
	}

	m := Model{
		session: session,
		seed:    draft,
		dialog:  form.NewDialog(opts.Title, fields, variables),
		opts:    opts,
		log:     opts.Logger,
	}
	m.dialog.ShowOnly(layoutVariables(draft.Position))
	return m
}

func newWidget(spec application.FieldSpec, draft application.Draft) form.Field {
	switch spec.Kind {
	case application.InputSelect:
		return form.NewSelectFormField(spec.Label, spec.Options, draft.Value(spec.Name), form.WithNoneOption(spec.Placeholder))
	case application.InputMultiSelect:
		return form.NewMultiSelectFormField(spec.Label, spec.Options, draft.AdditionalSkills...)
	default:
		return form.NewTextField(spec.Label, spec.Placeholder, draft.Value(spec.Name))
	}
}

func layoutVariables(p application.Position) []string {
	layout := application.Layout(p)
	vars := make([]string, len(layout))
	for i, s := range layout {
		vars[i] = string(s.Name)
	}
	return vars
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.state == stateEditing {
		_, cmd := m.dialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.state {
	case stateSummary:
		return m.handleSummaryKey(msg)
	case stateConfirmDiscard:
		return m.handleConfirmKey(msg)
	default:
		return m.handleFormKey(msg)
	}
}

func (m Model) handleFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	_, cmd := m.dialog.Update(msg)
	cmds := []tea.Cmd{cmd, m.sync()}

	switch {
	case m.dialog.Cancelled():
		m.dialog.Reset()
		if m.session.Draft().Equal(m.seed) {
			return m.quit()
		}
		m.confirm = components.NewConfirmModal(discardPrompt)
		m.state = stateConfirmDiscard
	case m.dialog.Submitted():
		m.dialog.Reset()
		var submitCmd tea.Cmd
		m, submitCmd = m.submit()
		cmds = append(cmds, submitCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleSummaryKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.session.Dismiss()
		m.summary = nil
		m.state = stateEditing
		return m, nil
	}

	return m, m.summary.Update(msg)
}

func (m Model) handleConfirmKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)

	switch {
	case m.confirm.Confirmed():
		return m.quit()
	case m.confirm.Cancelled():
		m.state = stateEditing
	}
	return m, nil
}

// sync copies widget values into the session and re-applies the layout for
// the selected position.
func (m Model) sync() tea.Cmd {
	values := m.dialog.FormValues()

	for _, f := range application.Fields {
		if f == application.FieldAdditionalSkills {
			selected, _ := values[string(f)].([]string)
			for _, skill := range application.Skills {
				m.session.ToggleSkill(skill, slices.Contains(selected, skill))
			}
			continue
		}

		v, _ := values[string(f)].(string)
		m.session.SetField(f, v)
	}

	return m.dialog.ShowOnly(layoutVariables(m.session.Draft().Position))
}

// submit runs validation. Failures are shown inline and focus jumps to the
// first invalid field; success opens the summary.
func (m Model) submit() (Model, tea.Cmd) {
	if !m.session.Submit() {
		m.accepted = false
		errs := m.session.Errors()
		m.dialog.SetErrors(errs.Strings())

		first, _ := errs.First()
		return m, m.dialog.Focus(string(first))
	}

	m.accepted = true
	m.dialog.SetErrors(nil)

	draft := m.session.Draft()
	md := application.SummaryMarkdown(m.opts.SummaryTitle, draft)
	content, err := components.RenderMarkdown(md, m.opts.WordWrap)
	if err != nil {
		m.log.Warn().Err(err).Msg("summary render failed, showing raw markdown")
		content = md
	}

	m.summary = components.NewSummaryDialog(summaryModalTitle, content, summaryHelp, m.width, m.height)
	m.state = stateSummary
	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// Accepted reports whether the most recent submit passed validation.
func (m Model) Accepted() bool { return m.accepted }

// Draft returns a copy of the session draft.
func (m Model) Draft() application.Draft { return m.session.Draft() }
