package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ReelRate/internal/apperrors"
	"github.com/Belphemur/ReelRate/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	if err := initSentry(cfg); err != nil {
		logger.Warn().Err(err).Msg("Sentry disabled")
	}
	defer sentry.Flush(2 * time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, closeApp := newRootCommand(cfg)
	defer func() {
		if err := closeApp(); err != nil {
			logger.Warn().Err(err).Msg("Failed to release resources")
		}
	}()

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	msg, report := describeError(err)
	if report {
		sentry.CaptureException(err)
	}
	fmt.Fprintln(os.Stderr, msg)
	return 1
}

// describeError turns a command error into the line shown to the user and
// reports whether it is unexpected enough to send to Sentry.
func describeError(err error) (string, bool) {
	var stale *apperrors.StaleSessionError
	switch {
	case errors.Is(err, &apperrors.MissingSessionError{}):
		return "No guest session stored. Run `reelrate login` first.", false
	case errors.As(err, &stale) && stale.Submitted:
		return "The guest session changed after the rating was sent. TMDB may already have recorded it " +
			"under the previous session, so check `reelrate rated` before rating again.", false
	case errors.As(err, &stale):
		return "The guest session changed while the request was running. Try again.", false
	case errors.Is(err, context.Canceled):
		return "Interrupted.", false
	default:
		return "Error: " + err.Error(), true
	}
}

func initSentry(cfg *config.Config) error {
	if cfg.Sentry.DSN == "" {
		return nil
	}
	environment := cfg.Sentry.Environment
	if environment == "" {
		environment = "production"
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      environment,
		Release:          "reelrate@" + version,
		AttachStacktrace: true,
	}); err != nil {
		return fmt.Errorf("sentry.Init: %w", err)
	}
	return nil
}
