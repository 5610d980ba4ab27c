package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/cewatch/internal/ui/border"
	"github.com/justinpbarnett/cewatch/internal/ui/layout"
	"github.com/justinpbarnett/cewatch/internal/ui/styles"
	"github.com/justinpbarnett/cewatch/internal/ui/text"
)

const placeholderTitle = "cewatch"

var selectedKeybinds = []border.Keybind{
	{Key: "f", Label: "ocus"},
	{Key: "Tab", Label: " next"},
}

// Render draws the panels into the area set by the last resize. It has no
// side effects.
func (s State) Render() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	if layout.TooSmall(s.width, s.height) {
		msg := fmt.Sprintf("Terminal too small (%d×%d)\nMinimum: %d×%d",
			s.width, s.height, layout.MinWidth, layout.MinHeight)
		return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center,
			styles.TextSecondaryStyle.Render(msg))
	}

	if s.hasFocus {
		return s.renderPanel(s.focused, layout.Area{Width: s.width, Height: s.height}, false)
	}

	ids := s.visible()
	if len(ids) == 0 {
		return s.renderPlaceholder()
	}

	areas := layout.Split(s.width, s.height, s.orientation, len(ids))
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = s.renderPanel(id, areas[i], id == s.selected)
	}
	if s.orientation == layout.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s State) renderPanel(id PanelID, area layout.Area, selected bool) string {
	innerW, innerH := area.Width-2, area.Height-2
	v := s.clamp(id, s.views[id])

	rows := s.rows[id]
	start := min(v.YOffset, len(rows))
	end := min(start+max(0, innerH), len(rows))

	lines := make([]string, 0, end-start)
	for _, row := range rows[start:end] {
		lines = append(lines, text.Cut(row, v.XOffset, innerW))
	}

	p := border.Panel{
		Title:    id.String(),
		Lines:    lines,
		Width:    area.Width,
		Height:   area.Height,
		Selected: selected,
	}
	if selected {
		p.Keybinds = selectedKeybinds
	}
	return p.Render()
}

func (s State) renderPlaceholder() string {
	msg := "waiting for compiler output"
	if s.result != nil {
		msg = "compiler produced no output"
	}
	innerW := s.width - 2
	line := lipgloss.PlaceHorizontal(innerW, lipgloss.Center, styles.TextDimStyle.Render(msg))
	p := border.Panel{
		Title:  placeholderTitle,
		Width:  s.width,
		Height: s.height,
	}
	if s.height > 2 {
		p.Lines = make([]string, (s.height-2)/2+1)
		p.Lines[len(p.Lines)-1] = line
	}
	return p.Render()
}
