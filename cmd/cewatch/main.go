package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/justinpbarnett/cewatch/internal/config"
	"pkt.systems/pslog"
	"pkt.systems/psi"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd()
	root.SetArgs(fileArgs(root, os.Args[1:]))
	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("cewatch failed")
		return exitCode(err)
	}
	return 0
}

// exitCode is 2 for configuration problems and 1 for everything else.
func exitCode(err error) int {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		return 2
	}
	return 1
}
