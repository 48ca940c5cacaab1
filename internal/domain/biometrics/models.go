// Package biometrics defines the daily wearable sample model and the
// per-day team envelope produced by the poller.
package biometrics

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
)

// Sample is one athlete-day of wearable readings. Metrics the device did
// not report are nil rather than zero so downstream scoring can tell a
// missing value from a true zero.
type Sample struct {
	AthleteID       string             `json:"athlete_id"`
	Date            string             `json:"date"`
	HRVms           *float64           `json:"hrv_ms,omitempty"`
	RestingHRBpm    *float64           `json:"resting_hr_bpm,omitempty"`
	SleepHours      *float64           `json:"sleep_hours,omitempty"`
	SleepQuality    *float64           `json:"sleep_quality,omitempty"`
	SpO2Pct         *float64           `json:"spo2_pct,omitempty"`
	RespiratoryRate *float64           `json:"respiratory_rate,omitempty"`
	BodyTempC       *float64           `json:"body_temp_c,omitempty"`
	TrainingLoad    *float64           `json:"training_load,omitempty"`
	MuscleLoad      map[string]float64 `json:"muscle_load,omitempty"`
}

// Clone returns a deep copy of the sample so callers can hand out data
// without exposing shared maps.
func (s Sample) Clone() Sample {
	out := s
	out.HRVms = clonePtr(s.HRVms)
	out.RestingHRBpm = clonePtr(s.RestingHRBpm)
	out.SleepHours = clonePtr(s.SleepHours)
	out.SleepQuality = clonePtr(s.SleepQuality)
	out.SpO2Pct = clonePtr(s.SpO2Pct)
	out.RespiratoryRate = clonePtr(s.RespiratoryRate)
	out.BodyTempC = clonePtr(s.BodyTempC)
	out.TrainingLoad = clonePtr(s.TrainingLoad)
	if s.MuscleLoad != nil {
		out.MuscleLoad = make(map[string]float64, len(s.MuscleLoad))
		for k, v := range s.MuscleLoad {
			out.MuscleLoad[k] = v
		}
	}
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// TeamDay is the stored unit for one calendar day: every athlete sample
// collected for the date plus the air quality reading, when available.
type TeamDay struct {
	Date       string                  `json:"date"`
	Samples    []Sample                `json:"samples"`
	AirQuality *environment.AirQuality `json:"air_quality,omitempty"`
}

// NewTeamDay builds the envelope for a date, cloning samples so the
// caller's slice stays independent of the stored day.
func NewTeamDay(date string, samples []Sample, aq *environment.AirQuality) TeamDay {
	cloned := make([]Sample, len(samples))
	for i, s := range samples {
		cloned[i] = s.Clone()
	}
	var aqCopy *environment.AirQuality
	if aq != nil {
		c := *aq
		aqCopy = &c
	}
	return TeamDay{Date: date, Samples: cloned, AirQuality: aqCopy}
}

// ForAthlete filters the day's samples down to a single athlete.
func (d TeamDay) ForAthlete(athleteID string) []Sample {
	var out []Sample
	for _, s := range d.Samples {
		if s.AthleteID == athleteID {
			out = append(out, s.Clone())
		}
	}
	return out
}
