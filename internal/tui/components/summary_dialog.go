// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/colonyops/jobform/internal/core/styles"
)

const (
	summaryModalMaxHeight = 30
	summaryModalMargin    = 4
	summaryModalChrome    = 6 // title + divider + help + spacing
	summaryModalMinWidth  = 50

	fallbackWidth  = 80
	fallbackHeight = 24
)

// SummaryDialog shows rendered markdown in a scrollable modal.
type SummaryDialog struct {
	title    string
	helpText string
	viewport viewport.Model
}

// RenderMarkdown renders md with the active theme, wrapped at wordWrap columns.
func RenderMarkdown(md string, wordWrap int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

// NewSummaryDialog wraps content in a scrollable modal sized for a
// width x height screen.
func NewSummaryDialog(title, content, helpText string, width, height int) *SummaryDialog {
	modalWidth, modalHeight := modalSize(width, height)
	vp := viewport.New(
		viewport.WithWidth(modalWidth-4),
		viewport.WithHeight(modalHeight-summaryModalChrome),
	)
	vp.SetContent(content)

	return &SummaryDialog{
		title:    title,
		helpText: helpText,
		viewport: vp,
	}
}

func modalSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		width, height = fallbackWidth, fallbackHeight
	}
	w := min(max(int(float64(width)*0.65), summaryModalMinWidth), width-summaryModalMargin)
	h := min(height-summaryModalMargin, summaryModalMaxHeight)
	return max(w, 10), max(h, summaryModalChrome+1)
}

// Update scrolls the content on up/down keys.
func (d *SummaryDialog) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		d.viewport.ScrollUp(1)
	case "down", "j":
		d.viewport.ScrollDown(1)
	}
	return nil
}

// Content returns the rendered summary body.
func (d *SummaryDialog) Content() string {
	return d.viewport.GetContent()
}

// Overlay renders the dialog centered over the provided background.
func (d *SummaryDialog) Overlay(background string, width, height int) string {
	if width <= 0 || height <= 0 {
		width, height = fallbackWidth, fallbackHeight
	}
	modalWidth, modalHeight := modalSize(width, height)

	scrollInfo := ""
	if d.viewport.TotalLineCount() > d.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", d.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.TextMutedStyle.Render(strings.Repeat("─", max(modalWidth-6, 1)))
	modalContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(styles.IconCheck+" "+d.title+scrollInfo),
		divider,
		d.viewport.View(),
		styles.ModalHelpStyle.Render(d.helpText),
	)

	modal := styles.ModalStyle.
		Width(modalWidth).
		Height(modalHeight).
		Render(modalContent)

	return center(background, modal, width, height)
}

// center composites modal over background.
func center(background, modal string, width, height int) string {
	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	centerX := max((width-lipgloss.Width(modal))/2, 0)
	centerY := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}
