// Package termguard puts the terminal back the way it was found, whichever
// way a session ends.
package termguard

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Terminal state hooks, replaced in tests.
var (
	isTerminal = term.IsTerminal
	getState   = term.GetState
	restore    = term.Restore
)

// resetSeq leaves the alternate screen and shows the cursor.
const resetSeq = ansi.ResetModeAltScreenSaveCursor + ansi.ShowCursor

// Guard holds a snapshot of a terminal's mode.
type Guard struct {
	fd    int
	state *term.State
	out   io.Writer

	once sync.Once
	err  error
}

// Acquire snapshots the mode of the terminal behind in. When in is not a
// terminal the guard does nothing on Restore.
func Acquire(in *os.File, out io.Writer) (*Guard, error) {
	g := &Guard{fd: int(in.Fd()), out: out}
	if !isTerminal(g.fd) {
		return g, nil
	}
	st, err := getState(g.fd)
	if err != nil {
		return nil, fmt.Errorf("reading terminal state: %w", err)
	}
	g.state = st
	return g, nil
}

// Active reports whether the guard holds a terminal snapshot.
func (g *Guard) Active() bool { return g.state != nil }

// Restore resets the screen mode and restores the snapshot. Only the first
// call has an effect.
func (g *Guard) Restore() error {
	g.once.Do(func() {
		if !g.Active() {
			return
		}
		if g.out != nil {
			_, _ = io.WriteString(g.out, resetSeq)
		}
		if err := restore(g.fd, g.state); err != nil {
			g.err = fmt.Errorf("restoring terminal state: %w", err)
		}
	})
	return g.err
}

// Do runs fn between Acquire and Restore. The terminal is restored when fn
// returns, fails or panics; a panic is re-raised afterwards.
func Do(in *os.File, out io.Writer, fn func() error) (err error) {
	g, err := Acquire(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = g.Restore()
			panic(r)
		}
		if rerr := g.Restore(); err == nil {
			err = rerr
		}
	}()
	return fn()
}
