package feeds

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/logging"
)

const (
	defaultInitialInterval = 200 * time.Millisecond
	defaultMaxElapsed      = 3 * time.Second
)

// retryingFeed wraps an EventFeed with exponential backoff on transient
// failures. Expected-absence results are permanent and never retried.
type retryingFeed struct {
	inner           EventFeed
	logger          *slog.Logger
	initialInterval time.Duration
	maxElapsed      time.Duration
}

// NewRetryingFeed decorates a feed with retry/backoff. Non-positive durations
// fall back to defaults.
func NewRetryingFeed(inner EventFeed, logger *slog.Logger, initialInterval, maxElapsed time.Duration) EventFeed {
	if initialInterval <= 0 {
		initialInterval = defaultInitialInterval
	}
	if maxElapsed <= 0 {
		maxElapsed = defaultMaxElapsed
	}
	return &retryingFeed{
		inner:           inner,
		logger:          logger,
		initialInterval: initialInterval,
		maxElapsed:      maxElapsed,
	}
}

func (r *retryingFeed) Name() string {
	if r.inner == nil {
		return "retrying"
	}
	return r.inner.Name()
}

func (r *retryingFeed) ListEvents(ctx context.Context, date time.Time) ([]Event, error) {
	if r.inner == nil {
		return nil, ErrFeedUnavailable
	}

	var events []Event
	operation := func() error {
		fetched, err := r.inner.ListEvents(ctx, date)
		if err != nil {
			if domain.IsNotFound(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		events = fetched
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initialInterval
	policy.MaxElapsedTime = r.maxElapsed

	notify := func(err error, next time.Duration) {
		logging.Warn(logging.FromContext(ctx, r.logger), "feed fetch retry",
			slog.String(logging.FieldFeed, r.Name()),
			slog.Int64("next_attempt_ms", next.Milliseconds()),
			"error", err,
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify); err != nil {
		logging.Warn(logging.FromContext(ctx, r.logger), "feed fetch failed",
			slog.String(logging.FieldFeed, r.Name()),
			"error", err,
		)
		return nil, err
	}
	return events, nil
}
