package config

const (
	envSyntheticSeed     = "SYNTHETIC_SEED"
	envSyntheticAthletes = "SYNTHETIC_ATHLETES"
	envSyntheticDays     = "SYNTHETIC_DAYS"

	defaultSyntheticSeed     = 1
	defaultSyntheticAthletes = 12
	defaultSyntheticDays     = 90
)

// SyntheticConfig controls the deterministic data generator.
type SyntheticConfig struct {
	Seed     int64
	Athletes int
	Days     int
}

func loadSynthetic() SyntheticConfig {
	return SyntheticConfig{
		Seed:     int64(intEnvOrDefault(envSyntheticSeed, defaultSyntheticSeed)),
		Athletes: intEnvOrDefault(envSyntheticAthletes, defaultSyntheticAthletes),
		Days:     intEnvOrDefault(envSyntheticDays, defaultSyntheticDays),
	}
}
