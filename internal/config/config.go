package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Synthetic    SyntheticConfig
	IQAir        IQAirConfig
	Auth         AuthConfig
	Storage      StorageConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotSyncConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		Synthetic:    loadSynthetic(),
		IQAir:        loadIQAir(),
		Auth:         loadAuth(),
		Storage:      loadStorage(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshotSync(),
	}
}
