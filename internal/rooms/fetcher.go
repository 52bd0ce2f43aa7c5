package rooms

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

//go:generate mockgen -package mocks -destination mocks/prober.go . Prober

type Prober interface {
	Probe(ctx context.Context, username string) (Status, error)
}

// Fetcher wraps a Prober with a bounded retry policy for transient failures.
type Fetcher struct {
	probe    Prober
	attempts uint
	delay    time.Duration

	log *slog.Logger
}

func NewFetcher(probe Prober, attempts uint, delay time.Duration, log *slog.Logger) *Fetcher {
	if attempts == 0 {
		attempts = 1
	}
	return &Fetcher{
		probe:    probe,
		attempts: attempts,
		delay:    delay,
		log:      log.With("component", "rooms").With("rooms", "fetcher"),
	}
}

// Fetch never fails: when every attempt is transient, or the context is done, it returns StatusError.
func (f *Fetcher) Fetch(ctx context.Context, username string) Status {
	var status Status

	err := retry.Do(
		func() error {
			var err error
			status, err = f.probe.Probe(ctx, username)
			return err
		},
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			f.log.InfoContext(ctx, "Room probe failed",
				"username", username,
				"attempt", n+1,
				"error", err)
		}),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrTransient)
		}),
	)
	if err != nil {
		f.log.WarnContext(ctx, "Giving up on room", "username", username, "attempts", f.attempts, "error", err)
		return StatusError
	}

	return status
}
