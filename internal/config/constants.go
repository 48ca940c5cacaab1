package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken   = "ADMIN_TOKEN"
	envJWTSecret    = "JWT_SECRET"
	envDashUser     = "DASHBOARD_USER"
	envDashPass     = "DASHBOARD_PASS"
	envTokenTTL     = "TOKEN_TTL"
	envSnapshotSync = "SNAPSHOT_SYNC_ENABLED"
	envSnapshotDays = "SNAPSHOT_SYNC_DAYS"
	envSnapshotRate = "SNAPSHOT_SYNC_INTERVAL"
	envSnapshotHour = "SNAPSHOT_DAILY_HOUR"
	envRedisAddr    = "REDIS_ADDR"
	envRedisPass    = "REDIS_PASSWORD"
	envAlertsDBPath = "ALERTS_DB_PATH"
	envCatalogPath  = "CATALOG_PATH"

	defaultPort = "8080"
	// Biometric sources refresh slowly (wearables sync a few times per hour),
	// so a relaxed default keeps upstream quotas comfortable.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultProvider     = "synthetic"
	defaultMetricsPort  = "9090"
	defaultTokenTTL     = 12 * Duration(time.Hour)
	defaultSnapshotSync = true
	defaultSnapshotDays = 7
	// Snapshot fetch cadence during backfill; spaced to leave provider headroom.
	defaultSnapshotInterval = 90 * Duration(time.Second)
	// UTC hour to run daily snapshot prune/backfill (2 AM UTC by default).
	defaultSnapshotDailyHour = 2
	defaultAlertsDBPath      = "data/alerts.db"
)
