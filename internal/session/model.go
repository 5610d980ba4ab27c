// Package session runs the interactive loop: it merges file changes,
// terminal input and compile completions into one ordered stream of state
// transitions.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/cewatch/internal/compiler"
	"github.com/justinpbarnett/cewatch/internal/input"
	"github.com/justinpbarnett/cewatch/internal/ui"
	"github.com/justinpbarnett/cewatch/internal/ui/clipboard"
	"github.com/justinpbarnett/cewatch/internal/ui/layout"
	"github.com/justinpbarnett/cewatch/internal/ui/panels"
	"github.com/justinpbarnett/cewatch/internal/ui/styles"
	"github.com/justinpbarnett/cewatch/internal/watch"
	"pkt.systems/pslog"
)

// Compiler performs one compile round trip.
type Compiler interface {
	Compile(ctx context.Context, source string, args []string, execute bool) (*compiler.Result, error)
}

// statusRows is the height of the status bar under the panels.
const statusRows = 1

type Options struct {
	// Path is the canonical path of the watched file.
	Path       string
	Compiler   Compiler
	CompilerID string
	Args       []string
	Execute    bool
	// Events is the watcher's event stream.
	Events <-chan watch.Event

	Orientation layout.Orientation
	WrapWidth   int
	ScrollStep  int

	// Copy writes text to the clipboard. Defaults to clipboard.Write.
	Copy func(string) (clipboard.Method, error)
}

type Model struct {
	ctx  context.Context
	opts Options
	keys input.KeyMap

	ui     ui.State
	status panels.StatusBar
	help   *panels.HelpOverlay
	width  int
	height int

	// gen is bumped for every compile request. A completion whose
	// generation differs is stale.
	gen      uint64
	inflight bool
	cancel   context.CancelFunc
	pending  *string

	quitting bool
	err      error
}

// New builds the session model. ctx carries the logger and bounds every
// compile request.
func New(ctx context.Context, opts Options) Model {
	if opts.Copy == nil {
		opts.Copy = clipboard.Write
	}
	st := ui.New(ui.Options{
		Orientation:  opts.Orientation,
		WrapWidth:    opts.WrapWidth,
		ScrollStep:   opts.ScrollStep,
		ReservedRows: statusRows,
	})
	sb := panels.NewStatusBar(opts.Path, opts.CompilerID)
	sb.SetPanel(st.Selected().String(), false)
	return Model{
		ctx:    ctx,
		opts:   opts,
		keys:   input.DefaultKeyMap(),
		ui:     st,
		status: sb,
	}
}

// Startup compiles the current file contents before the interactive phase
// so the first frame has data. Failures are shown on the status line.
func (m Model) Startup() Model {
	log := pslog.Ctx(m.ctx).With("file", m.opts.Path)
	m.gen++

	src, err := readSource(m.opts.Path)
	if err != nil {
		log.Warn("startup read failed", "err", err)
		m.status.SetError(statusText(err))
		return m
	}

	start := time.Now()
	r, err := m.opts.Compiler.Compile(m.ctx, src, m.opts.Args, m.opts.Execute)
	elapsed := time.Since(start)
	if err != nil {
		log.Warn("startup compile failed", "err", err, "kind", compiler.Classify(err))
		m.status.SetError(compileErrorText(err))
		return m
	}
	log.Info("startup compile finished", "exit_code", r.ExitCode, "elapsed", elapsed.String())
	m.applyResult(r, elapsed)
	return m
}

func (m Model) Init() tea.Cmd {
	return listenForChanges(m.opts.Events)
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error { return m.err }

// State exposes the panel state.
func (m Model) State() ui.State { return m.ui }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.status.SetSize(msg.Width)
		ev, _ := m.keys.Decode(msg)
		m.ui, _ = m.ui.Apply(ev)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case fileEventMsg:
		cmd := m.handleFileEvent(msg.Event)
		if m.quitting {
			return m, cmd
		}
		return m, tea.Batch(cmd, listenForChanges(m.opts.Events))

	case watchClosedMsg:
		return m.fail(&watch.RuntimeError{Err: errors.New("event stream closed")})

	case compiledMsg:
		cmd := m.handleCompiled(msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.status, cmd = m.status.Update(msg)
		return m, cmd

	case yankedMsg:
		if msg.Err != nil {
			pslog.Ctx(m.ctx).Warn("yank failed", "panel", msg.Panel, "err", msg.Err)
			m.status.SetFlashWithLevel("copy failed: "+msg.Err.Error(), panels.FlashError)
		} else {
			m.status.SetFlashWithLevel(fmt.Sprintf("copied %s to %s", msg.Panel, msg.Method), panels.FlashSuccess)
		}
		return m, clearFlashAfter()

	case panels.ClearFlashMsg:
		m.status.ClearFlash()
		return m, nil

	case panels.CloseModalMsg:
		m.help = nil
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, _ := m.keys.Decode(msg)

	// The help overlay takes every key except ctrl+c.
	if m.help != nil && ev.Key != "ctrl+c" {
		var cmd tea.Cmd
		*m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch ev.Action {
	case input.Help:
		m.help = panels.NewHelpOverlay(m.keys)
		return m, nil
	case input.Yank:
		cmd := m.yank()
		return m, cmd
	}

	next, tr := m.ui.Apply(ev)
	m.ui = next
	if tr.ShouldQuit {
		return m.quit()
	}
	m.syncPanel()
	return m, nil
}

// syncPanel shows the selected or focused panel on the status bar.
func (m *Model) syncPanel() {
	if focused, ok := m.ui.Focused(); ok {
		m.status.SetPanel(focused.String(), true)
		return
	}
	m.status.SetPanel(m.ui.Selected().String(), false)
}

func (m *Model) handleFileEvent(ev watch.Event) tea.Cmd {
	log := pslog.Ctx(m.ctx).With("file", ev.Path)
	if ev.Path != m.opts.Path && ev.Kind != watch.Failed {
		log.Debug("ignoring event for another path", "kind", ev.Kind.String())
		return nil
	}

	switch ev.Kind {
	case watch.Failed:
		_, cmd := m.fail(ev.Err)
		return cmd

	case watch.Removed:
		log.Info("watched file removed")
		m.status.SetError(filepath.Base(m.opts.Path) + " removed, waiting for it to reappear")
		return nil
	}

	src, err := readSource(m.opts.Path)
	if err != nil {
		log.Warn("reading changed file failed", "err", err)
		m.status.SetError(statusText(err))
		return nil
	}
	return m.requestCompile(src)
}

// requestCompile starts a compile of src, or queues it behind the one in
// flight. Only the newest queued source is kept.
func (m *Model) requestCompile(src string) tea.Cmd {
	m.gen++
	if m.inflight {
		pslog.Ctx(m.ctx).Debug("compile queued behind in-flight request", "gen", m.gen)
		m.pending = &src
		if m.cancel != nil {
			m.cancel()
		}
		return nil
	}
	return m.startCompile(src)
}

func (m *Model) startCompile(src string) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.inflight = true

	gen := m.gen
	c, args, execute := m.opts.Compiler, m.opts.Args, m.opts.Execute
	pslog.Ctx(m.ctx).Info("compile requested", "gen", gen, "bytes", len(src))

	run := func() tea.Msg {
		defer cancel()
		start := time.Now()
		r, err := c.Compile(ctx, src, args, execute)
		return compiledMsg{Gen: gen, Result: r, Err: err, Elapsed: time.Since(start)}
	}
	return tea.Batch(run, m.status.SetCompiling(true))
}

func (m *Model) handleCompiled(msg compiledMsg) tea.Cmd {
	log := pslog.Ctx(m.ctx).With("gen", msg.Gen)
	m.inflight = false
	m.cancel = nil

	if msg.Gen != m.gen {
		log.Info("discarding stale compile result", "current", m.gen)
		if m.pending != nil {
			src := *m.pending
			m.pending = nil
			return m.startCompile(src)
		}
		m.status.SetCompiling(false)
		return nil
	}

	m.status.SetCompiling(false)
	if msg.Err != nil {
		log.Warn("compile failed", "err", msg.Err, "kind", compiler.Classify(msg.Err))
		m.status.SetError(compileErrorText(msg.Err))
		return nil
	}
	log.Info("compile finished", "exit_code", msg.Result.ExitCode, "elapsed", msg.Elapsed.String())
	m.applyResult(msg.Result, msg.Elapsed)
	return nil
}

func (m *Model) applyResult(r *compiler.Result, elapsed time.Duration) {
	m.ui = m.ui.ApplyResult(r)
	m.status.SetResult(r, elapsed)
	m.syncPanel()
}

func (m *Model) yank() tea.Cmd {
	id := m.ui.Selected()
	if f, ok := m.ui.Focused(); ok {
		id = f
	}
	text := m.ui.PanelText(id)
	if text == "" {
		m.status.SetFlashWithLevel(id.String()+" is empty", panels.FlashWarning)
		return nil
	}
	copyFn := m.opts.Copy
	name := id.String()
	return func() tea.Msg {
		method, err := copyFn(text)
		return yankedMsg{Panel: name, Method: method, Err: err}
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	pslog.Ctx(m.ctx).Info("quit requested")
	m.quitting = true
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

// fail ends the session with a fatal error.
func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	var rt *watch.RuntimeError
	if !errors.As(err, &rt) {
		err = &watch.RuntimeError{Err: err}
	}
	pslog.Ctx(m.ctx).Error("watch failed", "err", err)
	m.err = err
	m.quitting = true
	if m.cancel != nil {
		m.cancel()
	}
	return *m, tea.Quit
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	body := m.ui.Render()
	if body == "" {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center, "Loading...")
	}
	full := lipgloss.JoinVertical(lipgloss.Left, body, m.status.View())

	if m.help != nil {
		full = lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center, m.help.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceForeground(styles.TextDim),
		)
	}
	return full
}

func listenForChanges(ch <-chan watch.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return fileEventMsg{Event: ev}
	}
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(panels.FlashDuration(), func(time.Time) tea.Msg {
		return panels.ClearFlashMsg{}
	})
}

// compileErrorText is the one-line status for a failed compile.
func compileErrorText(err error) string {
	switch compiler.Classify(err) {
	case "transport":
		return "compile request failed: " + err.Error()
	case "protocol":
		return "unexpected compiler response: " + err.Error()
	}
	return err.Error()
}
