package border

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/cewatch/internal/ui/styles"
)

// charset is one set of box drawing characters.
type charset struct {
	tl, tr, bl, br, horiz, vert string
}

var (
	plain = charset{"╭", "╮", "╰", "╯", "─", "│"}
	// Selected panels use heavy lines so the highlight survives colourless terminals.
	heavy = charset{"┏", "┓", "┗", "┛", "━", "┃"}
)

func chars(selected bool) charset {
	if selected {
		return heavy
	}
	return plain
}

func borderStyle(selected bool) lipgloss.Style {
	if selected {
		return lipgloss.NewStyle().Foreground(styles.BorderSelected).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(styles.BorderUnselected)
}

// RenderTop renders: ╭─ Title ─────╮
func RenderTop(title string, width int, selected bool) string {
	if width < 2 {
		return ""
	}
	c := chars(selected)
	bs := borderStyle(selected)
	inner := width - 2

	if title == "" {
		return bs.Render(c.tl + strings.Repeat(c.horiz, inner) + c.tr)
	}

	ts := styles.UnselectedTitleStyle
	if selected {
		ts = styles.SelectedTitleStyle
	}
	// "─ " + title + " " must fit; long titles are truncated.
	maxTitle := inner - 3
	if maxTitle < 1 {
		return bs.Render(c.tl + strings.Repeat(c.horiz, inner) + c.tr)
	}
	title = ansi.Truncate(title, maxTitle, "…")
	fill := inner - 3 - ansi.StringWidth(title)

	return bs.Render(c.tl+c.horiz+" ") +
		ts.Render(title) +
		bs.Render(" "+strings.Repeat(c.horiz, fill)+c.tr)
}

// RenderBottom renders the bottom edge, listing keybind hints when the panel
// is selected and they fit.
func RenderBottom(keybinds []Keybind, width int, selected bool) string {
	if width < 2 {
		return ""
	}
	c := chars(selected)
	bs := borderStyle(selected)
	inner := width - 2

	if !selected || len(keybinds) == 0 {
		return bs.Render(c.bl + strings.Repeat(c.horiz, inner) + c.br)
	}

	// "─ " prefix and " " suffix surround the hints; hints that overflow are dropped.
	maxKb := inner - 3
	var parts []string
	used := 0
	for _, kb := range keybinds {
		w := KeybindWidth(kb)
		sep := 0
		if len(parts) > 0 {
			sep = 2
		}
		if used+sep+w > maxKb {
			break
		}
		parts = append(parts, RenderKeybind(kb))
		used += sep + w
	}
	if len(parts) == 0 {
		return bs.Render(c.bl + strings.Repeat(c.horiz, inner) + c.br)
	}

	return bs.Render(c.bl+c.horiz+" ") +
		strings.Join(parts, "  ") +
		bs.Render(" "+strings.Repeat(c.horiz, maxKb-used)+c.br)
}

// RenderSides frames each content line with vertical bars, padding or
// truncating it to exactly width-2 cells.
func RenderSides(lines []string, width int, selected bool) []string {
	c := chars(selected)
	bs := borderStyle(selected)
	inner := width - 2

	out := make([]string, len(lines))
	for i, line := range lines {
		w := ansi.StringWidth(line)
		if w > inner {
			line = ansi.Truncate(line, inner, "")
			w = ansi.StringWidth(line)
		}
		if w < inner {
			line += strings.Repeat(" ", inner-w)
		}
		out[i] = bs.Render(c.vert) + line + bs.Render(c.vert)
	}
	return out
}
