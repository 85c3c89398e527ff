package main

import (
	"context"
	"log"
	"os"

	"github.com/roboco-io/spanstyle/internal/cli"
	"pkt.systems/psi"
	"pkt.systems/pslog"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

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

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("spanstyle command failed")
		return 1
	}
	return 0
}
