package analytics

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

// Baseline windows, in days of history.
const (
	BaselineWindowDays = 28
	MinBaselineSamples = 14
)

// Baseline carries an athlete's rolling reference values. OK is set
// once enough history exists for baseline-relative classification.
type Baseline struct {
	HRVms   float64 `json:"hrv_ms"`
	RHRBpm  float64 `json:"resting_hr_bpm"`
	Samples int     `json:"samples"`
	OK      bool    `json:"established"`
}

// ComputeBaseline derives the rolling baseline from a sample window,
// using at most the trailing 28 days. The baseline is established when
// at least 14 HRV readings contribute.
func ComputeBaseline(samples []biometrics.Sample) Baseline {
	window := lastN(samples, BaselineWindowDays)

	var hrvSum, rhrSum float64
	var hrvN, rhrN int
	for _, s := range window {
		if s.HRVms != nil {
			hrvSum += *s.HRVms
			hrvN++
		}
		if s.RestingHRBpm != nil {
			rhrSum += *s.RestingHRBpm
			rhrN++
		}
	}

	b := Baseline{Samples: hrvN}
	if hrvN > 0 {
		b.HRVms = hrvSum / float64(hrvN)
	}
	if rhrN > 0 {
		b.RHRBpm = rhrSum / float64(rhrN)
	}
	b.OK = hrvN >= MinBaselineSamples
	return b
}

// lastN returns the trailing n elements of a sample window.
func lastN(samples []biometrics.Sample, n int) []biometrics.Sample {
	if len(samples) <= n {
		return samples
	}
	return samples[len(samples)-n:]
}

// latest returns the newest sample in the window.
func latest(samples []biometrics.Sample) (biometrics.Sample, bool) {
	if len(samples) == 0 {
		return biometrics.Sample{}, false
	}
	return samples[len(samples)-1], true
}

// history returns the window with the newest sample removed, so
// baselines do not include the day being scored.
func history(samples []biometrics.Sample) []biometrics.Sample {
	if len(samples) == 0 {
		return nil
	}
	return samples[:len(samples)-1]
}

// meanOf averages the non-nil values produced by pick over the trailing
// n samples. ok is false when no sample in the slice carried the metric.
func meanOf(samples []biometrics.Sample, n int, pick func(biometrics.Sample) *float64) (float64, bool) {
	window := lastN(samples, n)
	var sum float64
	var count int
	for _, s := range window {
		if v := pick(s); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
