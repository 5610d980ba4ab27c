// Package input turns raw terminal messages into the events the session
// loop understands.
package input

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

// Action is what a key press asks the UI to do.
type Action int

const (
	None Action = iota
	ScrollDown
	ScrollUp
	PanRight
	PanLeft
	NextVertical
	PrevVertical
	NextHorizontal
	PrevHorizontal
	Next
	Prev
	ToggleFocus
	ToggleOrientation
	Yank
	Help
	Quit
)

var actionNames = [...]string{
	None:              "none",
	ScrollDown:        "scroll-down",
	ScrollUp:          "scroll-up",
	PanRight:          "pan-right",
	PanLeft:           "pan-left",
	NextVertical:      "next-vertical",
	PrevVertical:      "prev-vertical",
	NextHorizontal:    "next-horizontal",
	PrevHorizontal:    "prev-horizontal",
	Next:              "next",
	Prev:              "prev",
	ToggleFocus:       "toggle-focus",
	ToggleOrientation: "toggle-orientation",
	Yank:              "yank",
	Help:              "help",
	Quit:              "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Kind distinguishes key presses from terminal resizes.
type Kind int

const (
	KindKey Kind = iota
	KindResize
)

// Event is a decoded terminal event. Key is the raw key string for key
// events; Width and Height are set for resizes.
type Event struct {
	Kind   Kind
	Action Action
	Key    string
	Width  int
	Height int
}

// KeyEvent builds a key event for action.
func KeyEvent(a Action) Event {
	return Event{Kind: KindKey, Action: a}
}

// ResizeEvent builds a resize event.
func ResizeEvent(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// Decode maps a terminal message to an Event. ok is false for messages that
// are not terminal input. Unbound keys decode to Action None.
func (k KeyMap) Decode(msg tea.Msg) (ev Event, ok bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return ResizeEvent(msg.Width, msg.Height), true
	case tea.KeyMsg:
		ev = Event{Kind: KindKey, Key: msg.String(), Action: k.action(msg)}
		return ev, true
	}
	return Event{}, false
}

func (k KeyMap) action(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return Quit
	case key.Matches(msg, k.Down):
		return ScrollDown
	case key.Matches(msg, k.Up):
		return ScrollUp
	case key.Matches(msg, k.Right):
		return PanRight
	case key.Matches(msg, k.Left):
		return PanLeft
	case key.Matches(msg, k.NextVertical):
		return NextVertical
	case key.Matches(msg, k.PrevVertical):
		return PrevVertical
	case key.Matches(msg, k.NextHorizontal):
		return NextHorizontal
	case key.Matches(msg, k.PrevHorizontal):
		return PrevHorizontal
	case key.Matches(msg, k.Next):
		return Next
	case key.Matches(msg, k.Prev):
		return Prev
	case key.Matches(msg, k.ToggleFocus):
		return ToggleFocus
	case key.Matches(msg, k.ToggleOrientation):
		return ToggleOrientation
	case key.Matches(msg, k.Yank):
		return Yank
	case key.Matches(msg, k.Help):
		return Help
	}
	return None
}
