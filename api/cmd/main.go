package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/baechuer/mail-relay/internal/bootstrap"
	"github.com/baechuer/mail-relay/internal/config"
	"github.com/baechuer/mail-relay/internal/logger"
)

// runner abstracts the application lifecycle.
type runner interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// builder constructs the application instance and returns a cleanup function.
type builder func() (runner, func(), error)

// Run bootstraps the app, starts it, waits for a signal or a crash and then
// shuts down within stopTimeout. It returns a process exit code.
func Run(build builder, sigCh <-chan os.Signal, stopTimeout time.Duration, lg zerolog.Logger) int {
	app, cleanup, err := build()
	if err != nil {
		lg.Error().Err(err).Msg("bootstrap failed")
		return 1
	}
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		lg.Info().Msg("mail-relay starting")
		err := app.Start(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case sig := <-sigCh:
		lg.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			lg.Error().Err(err).Msg("app crashed")
			return 1
		}
		lg.Info().Msg("app stopped")
		return 0
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()

	if err := app.Stop(stopCtx); err != nil {
		lg.Error().Err(err).Msg("graceful stop failed")
		return 1
	}

	lg.Info().Msg("shutdown complete")
	return 0
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("config load failed")
	}

	lg := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Caller:  cfg.LogCaller,
		NoColor: cfg.LogNoColor,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	build := func() (runner, func(), error) {
		return bootstrap.NewAppWithConfig(cfg, lg)
	}

	os.Exit(Run(build, sigCh, cfg.ShutdownWait, lg))
}
