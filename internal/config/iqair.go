package config

import "time"

const (
	envIQAirBaseURL  = "IQAIR_BASE_URL"
	envIQAirAPIKey   = "IQAIR_API_KEY"
	envIQAirCity     = "IQAIR_CITY"
	envIQAirState    = "IQAIR_STATE"
	envIQAirCountry  = "IQAIR_COUNTRY"
	envAirCacheTTL   = "AIR_CACHE_TTL"
	envAirRefresh    = "AIR_REFRESH_INTERVAL"
	defaultIQAirBase = "https://api.airvisual.com"

	// Community-tier IQAir keys allow very few calls, so cached readings are
	// reused for a long window by default.
	defaultAirCacheTTL = 30 * Duration(time.Minute)
	defaultAirRefresh  = time.Hour
)

// IQAirConfig controls how we talk to the IQAir (AirVisual) API.
type IQAirConfig struct {
	BaseURL  string
	APIKey   string
	City     string
	State    string
	Country  string
	CacheTTL time.Duration
	Refresh  time.Duration
}

// Enabled reports whether air-quality fetching is configured.
func (c IQAirConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadIQAir() IQAirConfig {
	return IQAirConfig{
		BaseURL:  envOrDefault(envIQAirBaseURL, defaultIQAirBase),
		APIKey:   envOrDefault(envIQAirAPIKey, ""),
		City:     envOrDefault(envIQAirCity, "Stellenbosch"),
		State:    envOrDefault(envIQAirState, "Western Cape"),
		Country:  envOrDefault(envIQAirCountry, "South Africa"),
		CacheTTL: durationEnvOrDefault(envAirCacheTTL, defaultAirCacheTTL),
		Refresh:  durationEnvOrDefault(envAirRefresh, defaultAirRefresh),
	}
}
