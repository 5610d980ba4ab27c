package styles

import "github.com/charmbracelet/lipgloss"

// Palette, as AdaptiveColor{Light, Dark}.
var (
	BorderSelected   = lipgloss.AdaptiveColor{Light: "#2e5cb8", Dark: "#7aa2f7"}
	BorderUnselected = lipgloss.AdaptiveColor{Light: "#c0c0c0", Dark: "#3b4261"}
	PanelTitle       = lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#bb9af7"}
	KeybindKey       = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
	KeybindLabel     = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextPrimary      = lipgloss.AdaptiveColor{Light: "#1a1b26", Dark: "#c0caf5"}
	TextSecondary    = lipgloss.AdaptiveColor{Light: "#8890a8", Dark: "#565f89"}
	TextDim          = lipgloss.AdaptiveColor{Light: "#b0b0b0", Dark: "#3b4261"}

	StatusRunning = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#7dcfff"}
	StatusSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#9ece6a"}
	StatusError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f7768e"}
	StatusWarning = lipgloss.AdaptiveColor{Light: "#8a6200", Dark: "#e0af68"}
)

// ExitCodeColor colours a process exit code: green for zero, red otherwise.
func ExitCodeColor(code int) lipgloss.AdaptiveColor {
	if code == 0 {
		return StatusSuccess
	}
	return StatusError
}
