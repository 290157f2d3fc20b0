package feeds

import (
	"context"
	"log/slog"
	"time"

	"gamecast-service/internal/logging"
	"gamecast-service/internal/timeutil"
)

// rateLimitedFeed wraps an EventFeed and enforces a minimum interval between
// calls. Calls block until the interval elapses to stay under upstream quotas.
type rateLimitedFeed struct {
	next     EventFeed
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedFeed returns an EventFeed that limits calls to the given interval.
func NewRateLimitedFeed(next EventFeed, interval time.Duration, logger *slog.Logger) EventFeed {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedFeed{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (f *rateLimitedFeed) Name() string {
	if f == nil || f.next == nil {
		return "rate-limited"
	}
	return f.next.Name()
}

func (f *rateLimitedFeed) ListEvents(ctx context.Context, date time.Time) ([]Event, error) {
	if f == nil || f.next == nil {
		logging.Warn(f.loggerOrNil(), "feed unavailable", slog.String(logging.FieldFeed, "rate-limited"))
		return nil, ErrFeedUnavailable
	}
	select {
	case <-ctx.Done():
		logging.Warn(f.logger, "rate-limited fetch canceled", slog.String(logging.FieldFeed, f.Name()))
		return nil, ctx.Err()
	case <-f.ticker.C:
	}
	logging.Info(f.logger, "rate-limited feed fetch",
		slog.String(logging.FieldFeed, f.Name()),
		slog.String(logging.FieldDate, timeutil.FormatDate(date)),
	)
	return f.next.ListEvents(ctx, date)
}

// Close stops the interval ticker.
func (f *rateLimitedFeed) Close() {
	if f != nil && f.ticker != nil {
		f.ticker.Stop()
	}
}

func (f *rateLimitedFeed) loggerOrNil() *slog.Logger {
	if f == nil {
		return nil
	}
	return f.logger
}
