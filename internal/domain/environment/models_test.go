package environment

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCategoryBuckets(t *testing.T) {
	cases := []struct {
		aqi  int
		want string
	}{
		{0, "good"},
		{50, "good"},
		{51, "moderate"},
		{100, "moderate"},
		{101, "unhealthy_sensitive"},
		{150, "unhealthy_sensitive"},
		{151, "unhealthy"},
		{200, "unhealthy"},
		{201, "very_unhealthy"},
		{300, "very_unhealthy"},
		{301, "hazardous"},
	}

	for _, tc := range cases {
		a := AirQuality{AQIUS: tc.aqi}
		if got := a.Category(); got != tc.want {
			t.Fatalf("aqi %d: expected %q, got %q", tc.aqi, tc.want, got)
		}
	}
}

func TestAirQualityWireTypes(t *testing.T) {
	a := AirQuality{
		HumidityPct: 61.5,
		FetchedAt:   time.Date(2026, 3, 5, 6, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"humidity_pct":61.5`) {
		t.Fatalf("expected fractional humidity on the wire, got %s", raw)
	}
	if !strings.Contains(string(raw), `"fetched_at":"2026-03-05T06:00:00Z"`) {
		t.Fatalf("expected RFC3339 fetched_at on the wire, got %s", raw)
	}
}

func TestTrainingAdvisory(t *testing.T) {
	if (AirQuality{AQIUS: 80}).TrainingAdvisory() {
		t.Fatal("expected no advisory at moderate AQI")
	}
	if !(AirQuality{AQIUS: 130}).TrainingAdvisory() {
		t.Fatal("expected advisory above moderate AQI")
	}
}
