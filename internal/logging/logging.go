// Package logging sets up the session log. The terminal belongs to the UI
// while a session runs, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pslog"
)

// DefaultLogPath is $XDG_DATA_HOME/cewatch/cewatch.log, falling back to
// ~/.local/share when XDG_DATA_HOME is unset.
func DefaultLogPath() string {
	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "cewatch.log")
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "cewatch", "cewatch.log")
}

// New returns a structured logger writing to w at the named level.
func New(w io.Writer, level string) (pslog.Logger, error) {
	opts := pslog.Options{Mode: pslog.ModeStructured, NoColor: true}
	switch strings.ToLower(level) {
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "", "info":
		opts.MinLevel = pslog.InfoLevel
	case "warn", "warning":
		opts.MinLevel = pslog.WarnLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	return pslog.NewWithOptions(w, opts), nil
}

// Open appends to the log file at path, creating it and its directory as
// needed. An empty path uses DefaultLogPath. The caller closes the file.
func Open(path, level string) (pslog.Logger, io.Closer, error) {
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.ErrorLevel,
	})
}
