package config

// StorageConfig holds paths and addresses for the persistence side:
// the SQLite alert log, the optional Redis cache, and the supplement
// catalog override file.
type StorageConfig struct {
	AlertsDBPath string
	RedisAddr    string
	RedisPass    string
	CatalogPath  string
}

func loadStorage() StorageConfig {
	return StorageConfig{
		AlertsDBPath: envOrDefault(envAlertsDBPath, defaultAlertsDBPath),
		RedisAddr:    envOrDefault(envRedisAddr, ""),
		RedisPass:    envOrDefault(envRedisPass, ""),
		CatalogPath:  envOrDefault(envCatalogPath, ""),
	}
}
