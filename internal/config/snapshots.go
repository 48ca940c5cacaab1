package config

import "time"

// SnapshotSyncConfig controls automatic snapshot backfill/prune behavior.
type SnapshotSyncConfig struct {
	Enabled        bool
	Days           int           // how many past days to maintain
	Interval       time.Duration // delay between snapshot fetches
	DailyHourUTC   int           // hour of day (0-23) for daily prune/backfill
	RetentionDays  int           // retention window for pruning day snapshots
	SnapshotFolder string        // base path for snapshots
}

func loadSnapshotSync() SnapshotSyncConfig {
	pastDays := intEnvOrDefault(envSnapshotDays, defaultSnapshotDays)
	// Retain the rolling past window plus the crossover day.
	retentionDays := pastDays + 1

	return SnapshotSyncConfig{
		Enabled:        boolEnvOrDefault(envSnapshotSync, defaultSnapshotSync),
		Days:           pastDays,
		Interval:       durationEnvOrDefault(envSnapshotRate, defaultSnapshotInterval),
		DailyHourUTC:   intEnvOrDefault(envSnapshotHour, defaultSnapshotDailyHour),
		RetentionDays:  retentionDays,
		SnapshotFolder: "data/snapshots",
	}
}
