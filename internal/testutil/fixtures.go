package testutil

import (
	"fmt"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/bodycomp"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
)

// FPtr returns a pointer to the given float, for optional sample fields.
func FPtr(v float64) *float64 { return &v }

// SampleAthlete returns a minimal roster fixture with the provided id.
func SampleAthlete(id string) athlete.Athlete {
	return athlete.Athlete{
		ID:        id,
		Provider:  "test",
		FirstName: "Test",
		LastName:  id,
		Sport:     "rugby",
		Position:  "flanker",
		Squad:     "senior",
		Age:       24,
		HeightCm:  185,
		WeightKg:  98,
	}
}

// SampleReading returns one athlete-day wearable sample with healthy
// mid-range values.
func SampleReading(athleteID, date string) biometrics.Sample {
	return biometrics.Sample{
		AthleteID:    athleteID,
		Date:         date,
		HRVms:        FPtr(82),
		RestingHRBpm: FPtr(52),
		SleepHours:   FPtr(7.8),
		SleepQuality: FPtr(80),
		SpO2Pct:      FPtr(97.5),
		BodyTempC:    FPtr(36.6),
		TrainingLoad: FPtr(420),
		MuscleLoad:   map[string]float64{"quads": 45, "hamstrings": 38},
	}
}

// SampleSeries builds a daily series ending at endDate (YYYY-MM-DD is
// derived per day as endDate minus offset via the date strings in
// dates), one healthy sample per provided date.
func SampleSeries(athleteID string, dates []string) []biometrics.Sample {
	out := make([]biometrics.Sample, 0, len(dates))
	for _, d := range dates {
		out = append(out, SampleReading(athleteID, d))
	}
	return out
}

// SamplePanel returns a blood panel with in-range markers.
func SamplePanel(athleteID, date string) blood.Panel {
	return blood.Panel{
		AthleteID:         athleteID,
		Date:              date,
		CortisolNmolL:     FPtr(380),
		TestosteroneNmolL: FPtr(22),
		CKUL:              FPtr(210),
		CRPMgL:            FPtr(1.1),
		FerritinUgL:       FPtr(85),
		VitaminDNmolL:     FPtr(78),
		HemoglobinGdL:     FPtr(15.1),
	}
}

// SampleBodyComp returns one body-composition measurement.
func SampleBodyComp(athleteID, date string) bodycomp.Measurement {
	return bodycomp.Measurement{
		AthleteID:    athleteID,
		Date:         date,
		WeightKg:     98.0,
		HeightCm:     185,
		BodyFatPct:   FPtr(12.5),
		MuscleMassKg: FPtr(44.3),
		HydrationPct: FPtr(61.0),
	}
}

// SampleProfile returns a genetic profile with one recovery variant.
func SampleProfile(athleteID string) genetics.Profile {
	return genetics.Profile{
		AthleteID: athleteID,
		Variants: []genetics.Variant{
			{
				Gene:     "COL5A1",
				RSID:     "rs12722",
				Genotype: "TC",
				Category: genetics.CategoryInjury,
				Effect:   "intermediate soft tissue risk",
			},
		},
	}
}

// SampleAirQuality returns a moderate reading fixture.
func SampleAirQuality(date string) environment.AirQuality {
	return environment.AirQuality{
		City:        "Stellenbosch",
		State:       "Western Cape",
		Country:     "South Africa",
		AQIUS:       42,
		MainUS:      "p2",
		TempC:       19.5,
		HumidityPct: 58,
		WindMS:      3.2,
		FetchedAt:   MustParseDate(date).Add(6 * time.Hour),
	}
}

// SampleTeamData bundles a one-athlete dataset for provider stubs.
func SampleTeamData(athleteID, date string) providers.TeamData {
	return providers.TeamData{
		Athletes: []athlete.Athlete{SampleAthlete(athleteID)},
		Samples:  []biometrics.Sample{SampleReading(athleteID, date)},
		Profiles: []genetics.Profile{SampleProfile(athleteID)},
		BodyComp: []bodycomp.Measurement{SampleBodyComp(athleteID, date)},
		Panels:   []blood.Panel{SamplePanel(athleteID, date)},
	}
}

// SampleTeamDay builds a one-athlete day snapshot for the date.
func SampleTeamDay(athleteID, date string) biometrics.TeamDay {
	aq := SampleAirQuality(date)
	return biometrics.NewTeamDay(date, []biometrics.Sample{SampleReading(athleteID, date)}, &aq)
}

// DateSeq returns n consecutive YYYY-MM-DD strings ending at end.
func DateSeq(end string, n int) []string {
	t := MustParseDate(end)
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = t.AddDate(0, 0, -i).Format("2006-01-02")
	}
	return out
}

// AthleteID formats a stable synthetic-style athlete id.
func AthleteID(n int) string {
	return fmt.Sprintf("ath-%03d", n)
}
