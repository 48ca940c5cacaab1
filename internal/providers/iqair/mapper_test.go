package iqair

import (
	"testing"
	"time"
)

func TestMapReadingCopiesPollutionAndWeather(t *testing.T) {
	fetched := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	data := cityData{
		City:    "Stellenbosch",
		State:   "Western Cape",
		Country: "South Africa",
		Current: currentData{
			Pollution: pollutionData{AQIUS: 142, MainUS: "o3"},
			Weather:   weatherData{Temperature: 31, Humidity: 40, WindSpeed: 7.2},
		},
	}

	reading := mapReading(data, fetched)
	if reading.City != "Stellenbosch" || reading.Country != "South Africa" {
		t.Fatalf("unexpected location %+v", reading)
	}
	if reading.AQIUS != 142 || reading.MainUS != "ozone" {
		t.Fatalf("unexpected pollution mapping %+v", reading)
	}
	if reading.TempC != 31 || reading.HumidityPct != 40 || reading.WindMS != 7.2 {
		t.Fatalf("unexpected weather mapping %+v", reading)
	}
	if !reading.FetchedAt.Equal(fetched) {
		t.Fatalf("unexpected fetched_at %s", reading.FetchedAt)
	}
	if got := reading.Category(); got != "unhealthy_sensitive" {
		t.Fatalf("expected unhealthy_sensitive category, got %s", got)
	}
}

func TestPollutantLabel(t *testing.T) {
	cases := map[string]string{
		"p2":      "pm2.5",
		"p1":      "pm10",
		"o3":      "ozone",
		"n2":      "no2",
		"s2":      "so2",
		"co":      "co",
		"unknown": "unknown",
	}
	for code, expected := range cases {
		if got := pollutantLabel(code); got != expected {
			t.Fatalf("expected %s for %s, got %s", expected, code, got)
		}
	}
}
