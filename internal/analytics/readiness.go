package analytics

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

// Readiness component weights. When a component is missing the
// remaining weights are renormalized so the score stays on 0-100.
const (
	ReadinessWeightHRV   = 0.35
	ReadinessWeightRHR   = 0.25
	ReadinessWeightSleep = 0.25
	ReadinessWeightSpO2  = 0.15
)

// ComponentScore is one metric's contribution to a composite score.
type ComponentScore struct {
	Metric string  `json:"metric"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// ReadinessResult is the morning readiness score with its breakdown.
type ReadinessResult struct {
	Score      float64          `json:"score"`
	Band       string           `json:"band"`
	Components []ComponentScore `json:"components"`
}

// Readiness scores the latest sample in the window against the
// athlete's baseline. ok is false when the window is empty or the
// latest sample carries none of the scored metrics.
func Readiness(samples []biometrics.Sample) (ReadinessResult, bool) {
	day, ok := latest(samples)
	if !ok {
		return ReadinessResult{}, false
	}
	baseline := ComputeBaseline(history(samples))

	var components []ComponentScore
	if day.HRVms != nil {
		components = append(components, ComponentScore{
			Metric: "hrv",
			Score:  hrvComponent(*day.HRVms, baseline),
			Weight: ReadinessWeightHRV,
		})
	}
	if day.RestingHRBpm != nil {
		components = append(components, ComponentScore{
			Metric: "resting_hr",
			Score:  restingHRComponent(*day.RestingHRBpm, baseline),
			Weight: ReadinessWeightRHR,
		})
	}
	if day.SleepHours != nil {
		components = append(components, ComponentScore{
			Metric: "sleep",
			Score:  sleepComponent(*day.SleepHours, day.SleepQuality),
			Weight: ReadinessWeightSleep,
		})
	}
	if day.SpO2Pct != nil {
		components = append(components, ComponentScore{
			Metric: "spo2",
			Score:  spo2Component(*day.SpO2Pct),
			Weight: ReadinessWeightSpO2,
		})
	}
	if len(components) == 0 {
		return ReadinessResult{}, false
	}

	var weightSum, weighted float64
	for _, c := range components {
		weightSum += c.Weight
		weighted += c.Score * c.Weight
	}
	score := clamp(weighted/weightSum, 0, 100)

	return ReadinessResult{
		Score:      score,
		Band:       ScoreBand(score),
		Components: components,
	}, true
}

// hrvComponent scores today's HRV against the baseline ratio, falling
// back to absolute bounds for athletes without an established baseline.
func hrvComponent(hrvMs float64, baseline Baseline) float64 {
	if baseline.OK && baseline.HRVms > 0 {
		ratio := hrvMs / baseline.HRVms
		switch {
		case ratio >= 1.05:
			return 100
		case ratio >= 0.95:
			return 90
		case ratio >= 0.85:
			return 75
		case ratio >= 0.75:
			return 55
		case ratio >= 0.60:
			return 35
		default:
			return 15
		}
	}
	switch {
	case hrvMs >= 90:
		return 95
	case hrvMs >= 70:
		return 85
	case hrvMs >= 55:
		return 70
	case hrvMs >= 45:
		return 50
	case hrvMs >= 35:
		return 35
	default:
		return 20
	}
}

// restingHRComponent scores today's resting heart rate against the
// baseline delta, falling back to absolute bounds.
func restingHRComponent(bpm float64, baseline Baseline) float64 {
	if baseline.OK && baseline.RHRBpm > 0 {
		delta := bpm - baseline.RHRBpm
		switch {
		case delta <= 0:
			return 100
		case delta <= 3:
			return 85
		case delta <= 6:
			return 70
		case delta <= 10:
			return 50
		default:
			return 25
		}
	}
	switch {
	case bpm < 50:
		return 95
	case bpm < 58:
		return 85
	case bpm < 65:
		return 70
	case bpm < 72:
		return 50
	case bpm < 80:
		return 35
	default:
		return 20
	}
}

// sleepComponent scores sleep duration, blending in the device's
// quality percentage when reported.
func sleepComponent(hours float64, quality *float64) float64 {
	var duration float64
	switch {
	case hours >= 8:
		duration = 100
	case hours >= 7:
		duration = 85
	case hours >= 6:
		duration = 65
	case hours >= 5:
		duration = 40
	default:
		duration = 20
	}
	if quality == nil {
		return duration
	}
	return clamp(0.7*duration+0.3*clamp(*quality, 0, 100), 0, 100)
}

func spo2Component(pct float64) float64 {
	switch {
	case pct >= 97:
		return 100
	case pct >= 95:
		return 90
	case pct >= 94:
		return 70
	case pct >= 92:
		return 45
	default:
		return 20
	}
}
