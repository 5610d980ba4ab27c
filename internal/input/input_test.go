package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDecodeKeys(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"j", runeKey('j'), ScrollDown},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, ScrollDown},
		{"k", runeKey('k'), ScrollUp},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, ScrollUp},
		{"l", runeKey('l'), PanRight},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, PanRight},
		{"h", runeKey('h'), PanLeft},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, PanLeft},
		{"J", runeKey('J'), NextVertical},
		{"K", runeKey('K'), PrevVertical},
		{"L", runeKey('L'), NextHorizontal},
		{"H", runeKey('H'), PrevHorizontal},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, Next},
		{"shift+tab", tea.KeyMsg{Type: tea.KeyShiftTab}, Prev},
		{"f", runeKey('f'), ToggleFocus},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, ToggleFocus},
		{"o", runeKey('o'), ToggleOrientation},
		{"y", runeKey('y'), Yank},
		{"?", runeKey('?'), Help},
		{"q", runeKey('q'), Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, Quit},
		{"unbound", runeKey('z'), None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := km.Decode(tt.msg)
			if !ok {
				t.Fatal("expected key message to decode")
			}
			if ev.Kind != KindKey {
				t.Errorf("kind: got %d, want KindKey", ev.Kind)
			}
			if ev.Action != tt.want {
				t.Errorf("action: got %s, want %s", ev.Action, tt.want)
			}
		})
	}
}

func TestDecodeResize(t *testing.T) {
	ev, ok := DefaultKeyMap().Decode(tea.WindowSizeMsg{Width: 120, Height: 40})
	if !ok {
		t.Fatal("expected resize to decode")
	}
	if ev.Kind != KindResize || ev.Width != 120 || ev.Height != 40 {
		t.Errorf("unexpected resize event: %+v", ev)
	}
}

func TestDecodeIgnoresOtherMessages(t *testing.T) {
	if _, ok := DefaultKeyMap().Decode(tea.QuitMsg{}); ok {
		t.Error("expected non-input message to be ignored")
	}
}

func TestActionString(t *testing.T) {
	if got := ToggleFocus.String(); got != "toggle-focus" {
		t.Errorf("got %q", got)
	}
	if got := Action(99).String(); got != "unknown" {
		t.Errorf("got %q", got)
	}
}

func TestFullHelpCoversEveryBinding(t *testing.T) {
	n := 0
	for _, col := range DefaultKeyMap().FullHelp() {
		n += len(col)
	}
	if n != 15 {
		t.Errorf("expected 15 bindings in full help, got %d", n)
	}
}
