// Package ui holds the panel state machine: which panel is selected or
// focused, how far each one is scrolled, and how the latest compile result
// is projected onto the terminal.
package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/justinpbarnett/cewatch/internal/compiler"
	"github.com/justinpbarnett/cewatch/internal/input"
	"github.com/justinpbarnett/cewatch/internal/ui/layout"
	"github.com/justinpbarnett/cewatch/internal/ui/text"
)

// PanelID names one of the fixed display panels. The order is the cycling
// order.
type PanelID int

const (
	Assembly PanelID = iota
	Stdout
	Stderr
)

// NumPanels is the number of panels.
const NumPanels = 3

var panelTitles = [NumPanels]string{"Assembly", "Stdout", "Stderr"}

func (p PanelID) String() string {
	if p < 0 || p >= NumPanels {
		return "unknown"
	}
	return panelTitles[p]
}

func (p PanelID) Next() PanelID { return (p + 1) % NumPanels }
func (p PanelID) Prev() PanelID { return (p + NumPanels - 1) % NumPanels }

// PanelView is the scroll position of one panel.
type PanelView struct {
	YOffset int
	XOffset int
}

// Transition reports what an input event did.
type Transition struct {
	NeedsRender bool
	ShouldQuit  bool
}

// Options configures a new State.
type Options struct {
	Orientation layout.Orientation
	// WrapWidth is the nominal display width lines are hard-wrapped at.
	WrapWidth int
	// ScrollStep is how many rows or columns one scroll or pan moves.
	ScrollStep int
	// ReservedRows are terminal rows below the panels, e.g. a status bar.
	ReservedRows int
}

const DefaultWrapWidth = 256

// State is the session's display state. It is a value: transitions return
// a new State and never touch the receiver.
type State struct {
	views       [NumPanels]PanelView
	selected    PanelID
	focused     PanelID
	hasFocus    bool
	orientation layout.Orientation
	result      *compiler.Result

	// rows holds each panel's cleaned and wrapped text, derived from result.
	rows     [NumPanels][]string
	rowWidth [NumPanels]int

	width  int
	height int

	wrapWidth int
	step      int
	reserved  int
}

func New(opts Options) State {
	if opts.WrapWidth <= 0 {
		opts.WrapWidth = DefaultWrapWidth
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = 1
	}
	if opts.ReservedRows < 0 {
		opts.ReservedRows = 0
	}
	return State{
		selected:    Assembly,
		orientation: opts.Orientation,
		wrapWidth:   opts.WrapWidth,
		step:        opts.ScrollStep,
		reserved:    opts.ReservedRows,
	}
}

func (s State) Selected() PanelID { return s.selected }
func (s State) Orientation() layout.Orientation { return s.orientation }
func (s State) Result() *compiler.Result { return s.result }
func (s State) HasResult() bool { return s.result != nil }
func (s State) View(id PanelID) PanelView { return s.views[id] }
func (s State) Size() (width, height int) { return s.width, s.height }

// Focused returns the focused panel, if any.
func (s State) Focused() (PanelID, bool) { return s.focused, s.hasFocus }

// Apply runs one input event through the state machine.
func (s State) Apply(ev input.Event) (State, Transition) {
	if ev.Kind == input.KindResize {
		s.width = max(0, ev.Width)
		s.height = max(0, ev.Height-s.reserved)
		s.clampAll()
		return s, Transition{NeedsRender: true}
	}

	before := s.key()
	switch ev.Action {
	case input.Quit:
		return s, Transition{ShouldQuit: true}
	case input.ScrollDown:
		s.scroll(s.step, 0)
	case input.ScrollUp:
		s.scroll(-s.step, 0)
	case input.PanRight:
		s.scroll(0, s.step)
	case input.PanLeft:
		s.scroll(0, -s.step)
	case input.Next:
		s.cycle(1)
	case input.Prev:
		s.cycle(-1)
	case input.NextVertical, input.PrevVertical:
		if s.orientation == layout.Vertical {
			s.cycle(direction(ev.Action == input.NextVertical))
		}
	case input.NextHorizontal, input.PrevHorizontal:
		if s.orientation == layout.Horizontal {
			s.cycle(direction(ev.Action == input.NextHorizontal))
		}
	case input.ToggleFocus:
		switch {
		case s.hasFocus:
			s.hasFocus = false
		case !s.HasContent(s.selected):
			return s, Transition{}
		default:
			s.focused, s.hasFocus = s.selected, true
		}
		s.clampAll()
	case input.ToggleOrientation:
		s.orientation = s.orientation.Flip()
		s.clampAll()
	default:
		return s, Transition{}
	}
	return s, Transition{NeedsRender: s.key() != before}
}

// ApplyResult replaces the displayed result and resets every panel to the
// top-left. A nil result clears the display.
func (s State) ApplyResult(r *compiler.Result) State {
	s.result = r
	s.views = [NumPanels]PanelView{}
	for id := range PanelID(NumPanels) {
		rows := wrapLines(panelLines(r, id), s.wrapWidth)
		s.rows[id] = rows
		widest := 0
		for _, row := range rows {
			widest = max(widest, ansi.StringWidth(row))
		}
		s.rowWidth[id] = widest
	}
	s.settleSelection()
	return s
}

// settleSelection keeps selection and focus on laid-out panels once any
// panel has content.
func (s *State) settleSelection() {
	ids := s.visible()
	if len(ids) == 0 {
		return
	}
	if s.hasFocus && !s.HasContent(s.focused) {
		s.hasFocus = false
	}
	if !s.HasContent(s.selected) {
		s.selected = ids[0]
	}
}

// PanelText returns the plain text of a panel, one source line per line,
// without wrapping.
func (s State) PanelText(id PanelID) string {
	return strings.Join(panelLines(s.result, id), "\n")
}

// HasContent reports whether a panel has anything to show.
func (s State) HasContent(id PanelID) bool {
	return len(s.rows[id]) > 0
}

// stateKey is the comparable part of State used to detect no-op transitions.
type stateKey struct {
	views       [NumPanels]PanelView
	selected    PanelID
	focused     PanelID
	hasFocus    bool
	orientation layout.Orientation
}

func (s State) key() stateKey {
	return stateKey{s.views, s.selected, s.focused, s.hasFocus, s.orientation}
}

func direction(next bool) int {
	if next {
		return 1
	}
	return -1
}

func (s *State) cycle(dir int) {
	if s.hasFocus {
		return
	}
	if dir > 0 {
		s.selected = s.selected.Next()
	} else {
		s.selected = s.selected.Prev()
	}
}

// target is the panel scroll and pan keys act on.
func (s *State) target() PanelID {
	if s.hasFocus {
		return s.focused
	}
	return s.selected
}

func (s *State) scroll(dy, dx int) {
	id := s.target()
	v := s.views[id]
	v.YOffset = max(0, v.YOffset+dy)
	v.XOffset = max(0, v.XOffset+dx)
	s.views[id] = s.clamp(id, v)
}

func (s *State) clampAll() {
	for id := range PanelID(NumPanels) {
		s.views[id] = s.clamp(id, s.views[id])
	}
}

// clamp bounds a view by the panel's content and the area it would get in
// the current layout. Before the terminal size is known only the floor of
// zero applies.
func (s *State) clamp(id PanelID, v PanelView) PanelView {
	v.YOffset = max(0, v.YOffset)
	v.XOffset = max(0, v.XOffset)
	if s.width <= 0 || s.height <= 0 {
		return v
	}
	innerW, innerH := s.innerSize(id)
	v.YOffset = min(v.YOffset, max(0, len(s.rows[id])-innerH))
	v.XOffset = min(v.XOffset, max(0, s.rowWidth[id]-innerW))
	return v
}

// visible lists the panels the multi-panel layout shows, in order.
func (s *State) visible() []PanelID {
	var ids []PanelID
	for id := range PanelID(NumPanels) {
		if s.HasContent(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// innerSize is the text area of a panel inside its border. Panels that are
// not laid out get the size they would have if they were the only one.
func (s *State) innerSize(id PanelID) (int, int) {
	area := layout.Area{Width: s.width, Height: s.height}
	if !s.hasFocus {
		ids := s.visible()
		areas := layout.Split(s.width, s.height, s.orientation, len(ids))
		for i, vid := range ids {
			if vid == id {
				area = areas[i]
			}
		}
	}
	return max(0, area.Width-2), max(0, area.Height-2)
}

// panelLines returns the raw display lines of a panel. Program output from
// an execution step follows the compiler's own output.
func panelLines(r *compiler.Result, id PanelID) []string {
	if r == nil {
		return nil
	}
	var lines []string
	switch id {
	case Assembly:
		for _, l := range r.Assembly {
			lines = append(lines, text.Clean(l.Text))
		}
	case Stdout:
		lines = streamText(lines, r.Stdout)
		if r.Execution != nil {
			lines = streamText(lines, r.Execution.Stdout)
		}
	case Stderr:
		lines = streamText(lines, r.Stderr)
		if r.Execution != nil {
			lines = streamText(lines, r.Execution.Stderr)
		}
	}
	return lines
}

func streamText(dst []string, src []compiler.StreamLine) []string {
	for _, l := range src {
		dst = append(dst, text.Clean(l.Text))
	}
	return dst
}

func wrapLines(lines []string, width int) []string {
	var rows []string
	for _, l := range lines {
		for _, part := range strings.Split(l, "\n") {
			rows = append(rows, text.Wrap(part, width)...)
		}
	}
	return rows
}
