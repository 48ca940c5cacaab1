package analytics

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

// Recovery component weights.
const (
	RecoveryWeightHRV   = 0.50
	RecoveryWeightSleep = 0.30
	RecoveryWeightLoad  = 0.20

	// Score used for the load component when no training history
	// exists yet.
	NeutralLoadScore = 70.0
)

// RecoveryResult is the recovery score with its component breakdown.
type RecoveryResult struct {
	Score      float64          `json:"score"`
	Band       string           `json:"band"`
	Components []ComponentScore `json:"components"`
}

// Recovery scores how well the athlete has absorbed recent training:
// half HRV against baseline, a third sleep duration, the rest inverse
// training load. ok is false when the window is empty or the latest
// sample has neither HRV nor sleep.
func Recovery(samples []biometrics.Sample) (RecoveryResult, bool) {
	day, ok := latest(samples)
	if !ok {
		return RecoveryResult{}, false
	}
	if day.HRVms == nil && day.SleepHours == nil {
		return RecoveryResult{}, false
	}
	baseline := ComputeBaseline(history(samples))

	var components []ComponentScore
	if day.HRVms != nil {
		components = append(components, ComponentScore{
			Metric: "hrv",
			Score:  hrvComponent(*day.HRVms, baseline),
			Weight: RecoveryWeightHRV,
		})
	}
	if day.SleepHours != nil {
		components = append(components, ComponentScore{
			Metric: "sleep",
			Score:  sleepComponent(*day.SleepHours, day.SleepQuality),
			Weight: RecoveryWeightSleep,
		})
	}
	components = append(components, ComponentScore{
		Metric: "training_load",
		Score:  loadComponent(samples),
		Weight: RecoveryWeightLoad,
	})

	var weightSum, weighted float64
	for _, c := range components {
		weightSum += c.Weight
		weighted += c.Score * c.Weight
	}
	score := clamp(weighted/weightSum, 0, 100)

	return RecoveryResult{
		Score:      score,
		Band:       ScoreBand(score),
		Components: components,
	}, true
}

// loadComponent scores yesterday's session load against the athlete's
// chronic mean. Light days score high; spikes pull recovery down.
func loadComponent(samples []biometrics.Sample) float64 {
	hist := history(samples)
	yesterday, ok := latest(hist)
	if !ok || yesterday.TrainingLoad == nil {
		return NeutralLoadScore
	}
	chronic, ok := meanOf(hist, BaselineWindowDays, func(s biometrics.Sample) *float64 {
		return s.TrainingLoad
	})
	if !ok || chronic <= 0 {
		return NeutralLoadScore
	}

	ratio := *yesterday.TrainingLoad / chronic
	switch {
	case ratio <= 0.8:
		return 100
	case ratio <= 1.0:
		return 85
	case ratio <= 1.2:
		return 70
	case ratio <= 1.5:
		return 50
	default:
		return 30
	}
}
