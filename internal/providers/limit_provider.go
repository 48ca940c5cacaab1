package providers

import (
	"context"
	"time"

	"log/slog"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
)

// RateLimitedAirProvider wraps an AirQualityProvider and enforces a
// minimum interval between upstream calls. Community air quality API
// keys carry tight monthly quotas, so calls block until the interval
// elapses rather than burning through the allowance.
type RateLimitedAirProvider struct {
	next     AirQualityProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedAirProvider returns a provider that limits calls to the given interval.
func NewRateLimitedAirProvider(next AirQualityProvider, interval time.Duration, logger *slog.Logger) *RateLimitedAirProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RateLimitedAirProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *RateLimitedAirProvider) FetchAirQuality(ctx context.Context) (environment.AirQuality, error) {
	if p == nil || p.next == nil {
		return environment.AirQuality{}, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
		return environment.AirQuality{}, ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, "rate-limited", "rate-limited provider fetch")
	return p.next.FetchAirQuality(ctx)
}

// Close releases the underlying ticker.
func (p *RateLimitedAirProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
