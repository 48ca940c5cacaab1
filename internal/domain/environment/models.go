// Package environment holds air quality readings attached to team days.
package environment

import "time"

// AirQuality is a single air quality observation for the squad's training
// location, normalized from the upstream provider payload.
type AirQuality struct {
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	AQIUS       int       `json:"aqi_us"`
	MainUS      string    `json:"main_pollutant"`
	TempC       float64   `json:"temp_c"`
	HumidityPct float64   `json:"humidity_pct"`
	WindMS      float64   `json:"wind_ms"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// AQI category cutpoints follow the US EPA scale used by the provider.
const (
	AQIGoodMax          = 50
	AQIModerateMax      = 100
	AQISensitiveMax     = 150
	AQIUnhealthyMax     = 200
	AQIVeryUnhealthyMax = 300
)

// Category buckets the US AQI value into the EPA category label shown on
// the dashboard's environment card.
func (a AirQuality) Category() string {
	switch {
	case a.AQIUS <= AQIGoodMax:
		return "good"
	case a.AQIUS <= AQIModerateMax:
		return "moderate"
	case a.AQIUS <= AQISensitiveMax:
		return "unhealthy_sensitive"
	case a.AQIUS <= AQIUnhealthyMax:
		return "unhealthy"
	case a.AQIUS <= AQIVeryUnhealthyMax:
		return "very_unhealthy"
	default:
		return "hazardous"
	}
}

// TrainingAdvisory reports whether outdoor training should be flagged for
// the squad given the current AQI reading.
func (a AirQuality) TrainingAdvisory() bool {
	return a.AQIUS > AQIModerateMax
}
