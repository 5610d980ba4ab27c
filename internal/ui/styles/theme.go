package styles

import "github.com/charmbracelet/lipgloss"

// Text styles shared by the panels and the status bar.
var (
	TextPrimaryStyle   = lipgloss.NewStyle().Foreground(TextPrimary)
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	TextDimStyle       = lipgloss.NewStyle().Foreground(TextDim)

	// Selected panel titles are bold; the rest use the dimmer panel colour.
	SelectedTitleStyle   = lipgloss.NewStyle().Foreground(PanelTitle).Bold(true)
	UnselectedTitleStyle = lipgloss.NewStyle().Foreground(TextSecondary)

	ErrorStyle = lipgloss.NewStyle().Foreground(StatusError).Bold(true)
)
