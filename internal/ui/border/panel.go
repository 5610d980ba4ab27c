package border

import "strings"

// Panel describes one bordered region.
type Panel struct {
	Title    string
	Lines    []string
	Keybinds []Keybind
	Width    int
	Height   int
	Selected bool
}

// Render assembles the top border, height-2 content rows and the bottom
// border. Extra lines are cropped and missing ones are blank.
func (p Panel) Render() string {
	if p.Height < 2 || p.Width < 2 {
		return ""
	}

	innerHeight := p.Height - 2
	lines := p.Lines
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	rows := make([]string, innerHeight)
	copy(rows, lines)

	out := make([]string, 0, p.Height)
	out = append(out, RenderTop(p.Title, p.Width, p.Selected))
	out = append(out, RenderSides(rows, p.Width, p.Selected)...)
	out = append(out, RenderBottom(p.Keybinds, p.Width, p.Selected))
	return strings.Join(out, "\n")
}
