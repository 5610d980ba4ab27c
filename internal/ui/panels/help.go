package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/cewatch/internal/input"
	"github.com/justinpbarnett/cewatch/internal/ui/border"
	"github.com/justinpbarnett/cewatch/internal/ui/styles"
)

type HelpOverlay struct {
	keys input.KeyMap
	help help.Model
}

func NewHelpOverlay(keys input.KeyMap) *HelpOverlay {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(styles.KeybindKey).Bold(true)
	h.Styles.FullDesc = styles.TextPrimaryStyle
	h.Styles.FullSeparator = styles.TextDimStyle
	return &HelpOverlay{keys: keys, help: h}
}

// Update closes the overlay on esc, ? or q. Other keys are swallowed.
func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

func (h HelpOverlay) View() string {
	body := h.help.FullHelpView(h.keys.FullHelp())
	lines := strings.Split(body, "\n")

	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}
	content := make([]string, 0, len(lines)+2)
	content = append(content, "")
	for _, l := range lines {
		content = append(content, " "+l)
	}
	content = append(content, "")

	bottomKb := []border.Keybind{{Key: "?", Label: " close"}, {Key: "Esc", Label: " close"}}
	p := border.Panel{
		Title:    "Keybinds",
		Lines:    content,
		Keybinds: bottomKb,
		Width:    max(width+4, 30),
		Height:   len(content) + 2,
		Selected: true,
	}
	return p.Render()
}
