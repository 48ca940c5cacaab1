package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/cache"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/logging"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/metrics"
)

const (
	airCacheKey  = "air_quality"
	airCacheName = "air_quality"

	defaultAirCacheTTL = 30 * time.Minute
)

// cachedAirProvider serves air quality readings from a cache, falling
// back to the wrapped provider on a miss and storing the fresh reading
// with a TTL.
type cachedAirProvider struct {
	next     AirQualityProvider
	store    cache.Cache
	ttl      time.Duration
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewCachedAirProvider wraps the given provider with a read-through cache. If ttl <= 0, a default is used.
func NewCachedAirProvider(next AirQualityProvider, store cache.Cache, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) AirQualityProvider {
	if ttl <= 0 {
		ttl = defaultAirCacheTTL
	}
	return &cachedAirProvider{
		next:     next,
		store:    store,
		ttl:      ttl,
		logger:   logger,
		recorder: recorder,
	}
}

func (p *cachedAirProvider) FetchAirQuality(ctx context.Context) (environment.AirQuality, error) {
	if p.store != nil {
		if reading, ok := p.lookup(ctx); ok {
			p.recorder.RecordCacheLookup(airCacheName, true)
			return reading, nil
		}
		p.recorder.RecordCacheLookup(airCacheName, false)
	}

	reading, err := p.next.FetchAirQuality(ctx)
	if err != nil {
		return environment.AirQuality{}, err
	}

	p.persist(ctx, reading)
	return reading, nil
}

func (p *cachedAirProvider) lookup(ctx context.Context) (environment.AirQuality, bool) {
	raw, ok, err := p.store.Get(ctx, airCacheKey)
	if err != nil {
		p.logWarn(ctx, "air quality cache read failed", "err", err)
		return environment.AirQuality{}, false
	}
	if !ok {
		return environment.AirQuality{}, false
	}

	var reading environment.AirQuality
	if err := json.Unmarshal([]byte(raw), &reading); err != nil {
		p.logWarn(ctx, "air quality cache entry corrupt", "err", err)
		return environment.AirQuality{}, false
	}
	return reading, true
}

func (p *cachedAirProvider) persist(ctx context.Context, reading environment.AirQuality) {
	if p.store == nil {
		return
	}
	raw, err := json.Marshal(reading)
	if err != nil {
		p.logWarn(ctx, "air quality cache encode failed", "err", err)
		return
	}
	if err := p.store.Set(ctx, airCacheKey, string(raw), p.ttl); err != nil {
		p.logWarn(ctx, "air quality cache write failed", "err", err)
	}
}

func (p *cachedAirProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, p.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
