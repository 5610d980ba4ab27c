package session

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"
)

// Run performs the startup compile and then drives the interactive program
// until the user quits, the watcher fails or ctx is cancelled. extra options
// are passed to the bubbletea program.
func Run(ctx context.Context, opts Options, extra ...tea.ProgramOption) error {
	log := pslog.Ctx(ctx).With("file", opts.Path, "compiler", opts.CompilerID)
	log.Info("session starting", "execute", opts.Execute, "args", len(opts.Args))

	m := New(ctx, opts).Startup()

	popts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, extra...)
	final, err := tea.NewProgram(m, popts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("session interrupted")
			return nil
		}
		return fmt.Errorf("running terminal session: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	log.Info("session ended")
	return nil
}
