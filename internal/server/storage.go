package server

import (
	"fmt"
	"log/slog"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/alertlog"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/cache"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/config"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/recommend"
)

// storageComponents bundles the persistence side: the SQLite alert log,
// the TTL cache backend, and the recommendation catalog engine.
type storageComponents struct {
	alerts     *alertlog.Store
	cache      cache.Cache
	cacheClose func() error
	catalog    *recommend.Engine
}

func buildStorage(cfg config.Config, logger *slog.Logger) (storageComponents, error) {
	alerts, err := alertlog.Open(cfg.Storage.AlertsDBPath)
	if err != nil {
		return storageComponents{}, fmt.Errorf("open alert log: %w", err)
	}

	var backend cache.Cache
	cacheClose := func() error { return nil }
	if cfg.Storage.RedisAddr != "" {
		redis := cache.NewRedis(cfg.Storage.RedisAddr, cfg.Storage.RedisPass)
		backend = redis
		cacheClose = redis.Close
	} else {
		backend = cache.NewMemory()
	}

	catalog, err := recommend.NewEngine(cfg.Storage.CatalogPath)
	if err != nil {
		// A broken override file should not take the service down;
		// fall back to the embedded catalog.
		if logger != nil {
			logger.Warn("catalog override load failed, using embedded catalog",
				slog.String("path", cfg.Storage.CatalogPath), "err", err)
		}
		catalog, err = recommend.NewEngine("")
		if err != nil {
			_ = alerts.Close()
			_ = cacheClose()
			return storageComponents{}, fmt.Errorf("load embedded catalog: %w", err)
		}
	}

	return storageComponents{
		alerts:     alerts,
		cache:      backend,
		cacheClose: cacheClose,
		catalog:    catalog,
	}, nil
}
