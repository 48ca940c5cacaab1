package analytics

import (
	"math"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

// Sleep metric parameters.
const (
	SleepTargetHours     = 8.0
	SleepDebtWindowDays  = 7
	consistencyStdFactor = 20.0
)

// SleepSummary aggregates a window of nightly sleep readings.
type SleepSummary struct {
	Nights      int     `json:"nights"`
	MeanHours   float64 `json:"mean_hours"`
	MeanQuality float64 `json:"mean_quality"`
	DebtHours   float64 `json:"debt_hours"`
	Consistency float64 `json:"consistency"`
	Band        Band    `json:"band"`
}

// SleepMetrics summarises up to days nights of sleep: mean duration and
// quality, accumulated debt against the 8 hour target over the last
// week, and a consistency score that punishes night-to-night variance.
// ok is false when the window holds no sleep readings.
func SleepMetrics(samples []biometrics.Sample, days int) (SleepSummary, bool) {
	if days <= 0 {
		days = SleepDebtWindowDays
	}
	window := lastN(samples, days)

	var hours []float64
	var qualitySum float64
	var qualityN int
	for _, s := range window {
		if s.SleepHours != nil {
			hours = append(hours, *s.SleepHours)
		}
		if s.SleepQuality != nil {
			qualitySum += *s.SleepQuality
			qualityN++
		}
	}
	if len(hours) == 0 {
		return SleepSummary{}, false
	}

	var sum float64
	for _, h := range hours {
		sum += h
	}
	mean := sum / float64(len(hours))

	// Debt accrues only over the trailing week regardless of the
	// requested window.
	var debt float64
	for _, s := range lastN(window, SleepDebtWindowDays) {
		if s.SleepHours != nil && *s.SleepHours < SleepTargetHours {
			debt += SleepTargetHours - *s.SleepHours
		}
	}

	summary := SleepSummary{
		Nights:      len(hours),
		MeanHours:   mean,
		DebtHours:   debt,
		Consistency: consistencyScore(hours, mean),
		Band:        SleepBand(mean),
	}
	if qualityN > 0 {
		summary.MeanQuality = qualitySum / float64(qualityN)
	}
	return summary, true
}

func consistencyScore(hours []float64, mean float64) float64 {
	if len(hours) < 2 {
		return 100
	}
	var ss float64
	for _, h := range hours {
		d := h - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(hours)))
	return clamp(100-consistencyStdFactor*std, 0, 100)
}
