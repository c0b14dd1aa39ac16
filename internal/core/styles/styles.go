// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	SuccessStyle       lipgloss.Style
	InfoStyle          lipgloss.Style
	ErrorStyle         lipgloss.Style

	// Form styles.
	FormHeadingStyle      lipgloss.Style
	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	TextForegroundStyle          lipgloss.Style
	TextMutedStyle               lipgloss.Style
	TextPrimaryStyle             lipgloss.Style
	TextPrimaryBoldStyle         lipgloss.Style
	SelectFieldItemSelectedStyle lipgloss.Style

	// Modals.
	ModalStyle          lipgloss.Style
	ModalTitleStyle     lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	ConfirmModalStyle   lipgloss.Style
	ConfirmMessageStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	InfoStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	FormHeadingStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Background(ColorSurface).
		Bold(true).
		Padding(0, 1).
		MarginBottom(1)
	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		PaddingLeft(2)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = TextPrimaryStyle.Bold(true)
	SelectFieldItemSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Padding(0, 1)
	ModalTitleStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ConfirmModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(1, 2)
	ConfirmMessageStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		MarginBottom(1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
