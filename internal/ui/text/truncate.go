package text

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const tabWidth = 8

// Clean prepares compiler output for display: ANSI escapes are stripped,
// carriage returns dropped and tabs expanded to the next 8-column stop.
func Clean(s string) string {
	s = strings.ReplaceAll(ansi.Strip(s), "\r", "")
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col += ansi.StringWidth(string(r))
		}
	}
	return b.String()
}

// Wrap hard-wraps s at width cells, returning one string per row. Nothing is
// dropped: every cell of s appears in exactly one row. Leading indentation
// is kept.
func Wrap(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	if width <= 0 || ansi.StringWidth(s) <= width {
		return strings.Split(s, "\n")
	}
	return strings.Split(ansi.Hardwrap(s, width, true), "\n")
}

// Cut returns the cells [left, left+width) of s.
func Cut(s string, left, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Cut(s, left, left+width)
}

// Truncate truncates s to maxWidth, appending "…" if truncated.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "…")
}
