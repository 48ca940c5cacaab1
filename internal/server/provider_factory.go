package server

import (
	"log/slog"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/cache"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/config"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/metrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers/iqair"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers/synthetic"
)

// providerSet holds the decorated providers plus the rate limiter
// handle so shutdown can release its ticker.
type providerSet struct {
	team       providers.TeamProvider
	air        providers.AirQualityProvider
	airLimited *providers.RateLimitedAirProvider
}

// providerFactory assembles providers with the shared decorator stack
// (retry for team data, rate limit + cache for air quality).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config, airCache cache.Cache) providerSet {
	base := selectTeamProvider(cfg, f.logger)
	team := providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)

	var airBase providers.AirQualityProvider
	if cfg.IQAir.Enabled() {
		airBase = iqair.NewClient(iqair.Config{
			BaseURL: cfg.IQAir.BaseURL,
			APIKey:  cfg.IQAir.APIKey,
			City:    cfg.IQAir.City,
			State:   cfg.IQAir.State,
			Country: cfg.IQAir.Country,
		})
	} else {
		// Without an IQAir key the synthetic generator stands in so
		// the environment endpoints still serve data.
		airBase = syntheticAirFallback(base, cfg)
	}
	limited := providers.NewRateLimitedAirProvider(airBase, cfg.IQAir.Refresh, f.logger)
	air := providers.NewCachedAirProvider(limited, airCache, cfg.IQAir.CacheTTL, f.logger, f.metrics)

	return providerSet{team: team, air: air, airLimited: limited}
}

func selectTeamProvider(cfg config.Config, logger *slog.Logger) providers.TeamProvider {
	switch cfg.Provider {
	case "synthetic", "":
		return newSynthetic(cfg)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to synthetic", slog.String("provider", cfg.Provider))
		}
		return newSynthetic(cfg)
	}
}

func newSynthetic(cfg config.Config) *synthetic.Provider {
	return synthetic.New(synthetic.Config{
		Seed:     cfg.Synthetic.Seed,
		Athletes: cfg.Synthetic.Athletes,
		Days:     cfg.Synthetic.Days,
	})
}

// syntheticAirFallback reuses the team generator when it also produces
// air readings, otherwise builds a dedicated one.
func syntheticAirFallback(base providers.TeamProvider, cfg config.Config) providers.AirQualityProvider {
	if air, ok := base.(providers.AirQualityProvider); ok {
		return air
	}
	return newSynthetic(cfg)
}
