package iqair

import (
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
)

func mapReading(data cityData, fetchedAt time.Time) environment.AirQuality {
	return environment.AirQuality{
		City:        data.City,
		State:       data.State,
		Country:     data.Country,
		AQIUS:       data.Current.Pollution.AQIUS,
		MainUS:      pollutantLabel(data.Current.Pollution.MainUS),
		TempC:       data.Current.Weather.Temperature,
		HumidityPct: data.Current.Weather.Humidity,
		WindMS:      data.Current.Weather.WindSpeed,
		FetchedAt:   fetchedAt,
	}
}

// pollutantLabel expands the upstream short codes into the pollutant
// names the dashboard shows. Unknown codes pass through untouched.
func pollutantLabel(code string) string {
	switch code {
	case "p2":
		return "pm2.5"
	case "p1":
		return "pm10"
	case "o3":
		return "ozone"
	case "n2":
		return "no2"
	case "s2":
		return "so2"
	case "co":
		return "co"
	default:
		return code
	}
}
