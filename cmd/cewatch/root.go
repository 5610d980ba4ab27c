package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/justinpbarnett/cewatch/internal/compiler"
	"github.com/justinpbarnett/cewatch/internal/config"
	"github.com/justinpbarnett/cewatch/internal/logging"
	"github.com/justinpbarnett/cewatch/internal/session"
	"github.com/justinpbarnett/cewatch/internal/termguard"
	"github.com/justinpbarnett/cewatch/internal/ui/layout"
	"github.com/justinpbarnett/cewatch/internal/watch"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cewatch FILE [-- COMPILER_FLAGS...]",
		Short: "Watch a source file and show what the compiler makes of it",
		Long: "cewatch recompiles FILE on a remote Compiler Explorer instance every time it\n" +
			"changes and shows the assembly, stdout and stderr in a terminal UI.\n" +
			"Arguments after FILE are passed to the compiler verbatim.\n" +
			"A FILE named like a subcommand is watched when it exists; ./version\n" +
			"always names the file.",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runWatch(cmd.Context(), cfg, args[0], args[1:])
		},
	}
	// Everything after FILE belongs to the compiler, including things that
	// look like our own flags.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().String("config", "", "path to config file")
	cmd.Flags().StringP("compiler", "c", "", "compiler id on the service (e.g. clang_trunk, g132)")
	cmd.Flags().StringP("url", "u", "", "compile service base URL")
	cmd.Flags().StringP("orientation", "o", "", "initial panel orientation: vertical or horizontal")
	cmd.Flags().BoolP("execute", "x", false, "run the compiled program and show its output")
	cmd.Flags().String("log", "", "log file path")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newUpdateCmd())
	return cmd
}

// fileArgs rewrites a leading argument that names both a subcommand and an
// existing file into a path, so the file is watched.
func fileArgs(root *cobra.Command, args []string) []string {
	if len(args) == 0 {
		return args
	}
	sub, _, err := root.Find(args[:1])
	if err != nil || sub == root {
		return args
	}
	if fi, err := os.Stat(args[0]); err != nil || fi.IsDir() {
		return args
	}
	return append([]string{"./" + args[0]}, args[1:]...)
}

// loadConfig layers explicitly set flags over the loaded config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fs := cmd.Flags()
	cfgPath, _ := fs.GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if fs.Changed("compiler") {
		cfg.Compiler.ID, _ = fs.GetString("compiler")
	}
	if fs.Changed("url") {
		cfg.Compiler.URL, _ = fs.GetString("url")
	}
	if fs.Changed("orientation") {
		cfg.UI.Orientation, _ = fs.GetString("orientation")
	}
	if fs.Changed("execute") {
		execute, _ := fs.GetBool("execute")
		cfg.SetExecute(execute)
	}
	if fs.Changed("log") {
		cfg.Log.Path, _ = fs.GetString("log")
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// compilerArgs appends the command-line compiler flags to the configured
// ones. A leading "--" separator is dropped.
func compilerArgs(configured, extra []string) []string {
	if len(extra) > 0 && extra[0] == "--" {
		extra = extra[1:]
	}
	out := make([]string, 0, len(configured)+len(extra))
	out = append(out, configured...)
	return append(out, extra...)
}

func runWatch(ctx context.Context, cfg *config.Config, file string, extra []string) error {
	logger, closer, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()
	ctx = pslog.ContextWithLogger(ctx, logger)
	prev := log.Writer()
	log.SetOutput(pslog.LogLogger(logger).Writer())
	defer log.SetOutput(prev)

	orientation, err := layout.ParseOrientation(cfg.UI.Orientation)
	if err != nil {
		return err
	}

	path, err := watch.Canonical(file)
	if err != nil {
		return err
	}
	w, err := watch.New(path)
	if err != nil {
		return err
	}
	defer w.Close()

	client := compiler.NewClient(cfg.Compiler.URL, cfg.Compiler.ID)
	opts := session.Options{
		Path:        path,
		Compiler:    client,
		CompilerID:  client.CompilerID(),
		Args:        compilerArgs(cfg.Compiler.Args, extra),
		Execute:     cfg.Compiler.ExecuteEnabled(),
		Events:      w.Events(),
		Orientation: orientation,
		WrapWidth:   cfg.UI.WrapWidth,
		ScrollStep:  cfg.UI.ScrollStep,
	}
	logger.Info("starting", "file", path, "compiler", cfg.Compiler.ID, "url", cfg.Compiler.URL)

	err = termguard.Do(os.Stdin, os.Stdout, func() error {
		return session.Run(ctx, opts)
	})
	if err != nil {
		logger.Error("session failed", "err", err)
		return fmt.Errorf("cewatch %s: %w", file, err)
	}
	return nil
}
