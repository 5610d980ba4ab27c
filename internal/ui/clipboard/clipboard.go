// Package clipboard copies panel text out of the terminal.
package clipboard

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

// Method is how text reached the clipboard.
type Method int

const (
	Native Method = iota
	OSC52
)

func (m Method) String() string {
	if m == OSC52 {
		return "terminal clipboard"
	}
	return "system clipboard"
}

// Writer copies text using the native clipboard and falls back to an OSC 52
// escape sequence on Fallback, which works over SSH.
type Writer struct {
	Native   func(string) error
	Fallback io.Writer
	// InTmux wraps the escape sequence in a tmux passthrough.
	InTmux bool
}

// Default writes natively, then to stderr.
func Default() Writer {
	return Writer{
		Native:   clipboard.WriteAll,
		Fallback: os.Stderr,
		InTmux:   os.Getenv("TMUX") != "",
	}
}

// Write copies text to the clipboard.
func Write(text string) (Method, error) {
	return Default().Write(text)
}

func (w Writer) Write(text string) (Method, error) {
	if w.Native != nil && !clipboard.Unsupported {
		if err := w.Native(text); err == nil {
			return Native, nil
		}
	}
	return OSC52, w.writeOSC52(text)
}

func (w Writer) writeOSC52(text string) error {
	seq := ansi.SetSystemClipboard(text)
	if w.InTmux {
		seq = ansi.TmuxPassthrough(seq)
	}
	out := w.Fallback
	if out == nil {
		out = os.Stderr
	}
	_, err := io.WriteString(out, seq)
	return err
}
