package border

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/cewatch/internal/ui/styles"
)

// Keybind is a single hint shown on a selected panel's bottom edge: [f]ocus.
type Keybind struct {
	Key   string
	Label string
}

// RenderKeybind renders [key]label with the key bold.
func RenderKeybind(kb Keybind) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(styles.KeybindLabel)
	return keyStyle.Render("["+kb.Key+"]") + labelStyle.Render(kb.Label)
}

// KeybindWidth returns the display width of a rendered keybind.
func KeybindWidth(kb Keybind) int {
	return 2 + ansi.StringWidth(kb.Key) + ansi.StringWidth(kb.Label)
}
