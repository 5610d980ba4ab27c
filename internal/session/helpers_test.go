package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/cewatch/internal/compiler"
	"github.com/justinpbarnett/cewatch/internal/logging"
	"github.com/justinpbarnett/cewatch/internal/ui/clipboard"
	"github.com/justinpbarnett/cewatch/internal/watch"
	"pkt.systems/pslog"
)

const waitDuration = 3 * time.Second

// fakeCompiler records every source it is asked to compile and answers
// through fn.
type fakeCompiler struct {
	mu      sync.Mutex
	sources []string
	ctxs    []context.Context
	fn      func(ctx context.Context, src string) (*compiler.Result, error)
}

func (f *fakeCompiler) Compile(ctx context.Context, src string, _ []string, _ bool) (*compiler.Result, error) {
	f.mu.Lock()
	f.sources = append(f.sources, src)
	f.ctxs = append(f.ctxs, ctx)
	fn := f.fn
	f.mu.Unlock()
	if fn == nil {
		return asmFor(src), nil
	}
	return fn(ctx, src)
}

func (f *fakeCompiler) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sources...)
}

func (f *fakeCompiler) lastContext() context.Context {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ctxs[len(f.ctxs)-1]
}

func asmFor(src string) *compiler.Result {
	return &compiler.Result{Assembly: []compiler.AsmLine{{Text: "compiled: " + src}}}
}

func testContext() context.Context {
	return pslog.ContextWithLogger(context.Background(), logging.Discard())
}

type testSession struct {
	path   string
	events chan watch.Event
	fc     *fakeCompiler
	copied []string
}

// newTestModel writes contents to a temp file and returns a model that has
// completed its startup compile.
func newTestModel(t *testing.T, fc *fakeCompiler, contents string) (Model, *testSession) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.cpp")
	writeFile(t, path, contents)

	ts := &testSession{path: path, events: make(chan watch.Event, 16), fc: fc}
	m := New(testContext(), Options{
		Path:       path,
		Compiler:   fc,
		CompilerID: "clang_trunk",
		Events:     ts.events,
		Copy: func(s string) (clipboard.Method, error) {
			ts.copied = append(ts.copied, s)
			return clipboard.OSC52, nil
		},
	}).Startup()
	m = update(m, tea.WindowSizeMsg{Width: 160, Height: 24})
	return m, ts
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func changed(path string) fileEventMsg {
	return fileEventMsg{Event: watch.Event{Kind: watch.Changed, Path: path}}
}

// findMsg runs cmd, including every command it batches, and returns the
// first message of type T. Commands that block, such as the watcher
// listener, are abandoned.
func findMsg[T any](cmd tea.Cmd) (T, bool) {
	var zero T
	if cmd == nil {
		return zero, false
	}
	out := make(chan tea.Msg, 32)
	var launch func(tea.Cmd)
	launch = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					launch(sub)
				}
				return
			}
			out <- msg
		}()
	}
	launch(cmd)

	timeout := time.After(waitDuration)
	for {
		select {
		case msg := <-out:
			if v, ok := msg.(T); ok {
				return v, true
			}
		case <-timeout:
			return zero, false
		}
	}
}

func mustCompiled(t *testing.T, cmd tea.Cmd) compiledMsg {
	t.Helper()
	msg, ok := findMsg[compiledMsg](cmd)
	if !ok {
		t.Fatal("expected a compile to be started")
	}
	return msg
}
