package providers

import (
	"context"
	"log/slog"
	"time"

	"draft-companion/internal/domain/players"
	"draft-companion/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retrier holds shared retry/backoff behavior for provider decorators.
// Retries apply only to the catalog and ADP fetches; the draft tracker's
// poll errors propagate to the caller undecorated.
type retrier struct {
	name        string
	logger      *slog.Logger
	recorder    *metrics.Recorder
	maxAttempts int
	backoffFn   backoffFunc
}

func newRetrier(name string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) retrier {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return retrier{
		name:        name,
		logger:      logger,
		recorder:    recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r retrier) do(ctx context.Context, op string, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := fn()
		if r.recorder != nil {
			r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn("provider fetch retry", "op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		// backoff with context awareness
		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn("provider fetch failed", "op", op, "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}

func (r retrier) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, append(args, slog.String("provider", r.name))...)
	}
}

// retryingPlayerProvider wraps a PlayerProvider with retry/backoff behavior.
type retryingPlayerProvider struct {
	inner PlayerProvider
	retrier
}

// NewRetryingPlayerProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingPlayerProvider(inner PlayerProvider, name string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) PlayerProvider {
	return &retryingPlayerProvider{
		inner:   inner,
		retrier: newRetrier(name, logger, recorder, maxAttempts, backoff),
	}
}

func (p *retryingPlayerProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	var out []players.Player
	err := p.do(ctx, "players", func() error {
		var fetchErr error
		out, fetchErr = p.inner.FetchPlayers(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// retryingADPProvider wraps an ADPProvider with retry/backoff behavior.
type retryingADPProvider struct {
	inner ADPProvider
	retrier
}

// NewRetryingADPProvider wraps the given ADP provider with retries.
func NewRetryingADPProvider(inner ADPProvider, name string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) ADPProvider {
	return &retryingADPProvider{
		inner:   inner,
		retrier: newRetrier(name, logger, recorder, maxAttempts, backoff),
	}
}

func (p *retryingADPProvider) FetchADP(ctx context.Context, format ADPFormat) ([]ADPEntry, error) {
	var out []ADPEntry
	err := p.do(ctx, "adp/"+string(format), func() error {
		var fetchErr error
		out, fetchErr = p.inner.FetchADP(ctx, format)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
