package analytics

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

// Overtraining detection parameters: a fortnight of falling HRV paired
// with climbing resting heart rate.
const (
	OvertrainingWindowDays = 14
	OvertrainingHRVSlope   = -1.5
	OvertrainingRHRSlope   = 0.4
	ProjectionHorizonDays  = 7
	minTrendPoints         = 3
)

// Trend is a least-squares fit over (day index, value) points.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
	Points    int     `json:"points"`
}

// LinearTrend fits a least-squares line through the values, one point
// per day. ok is false with fewer than three points.
func LinearTrend(values []float64) (Trend, bool) {
	n := len(values)
	if n < minTrendPoints {
		return Trend{}, false
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		return Trend{}, false
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	meanY := sumY / fn
	var ssTot, ssRes float64
	for i, y := range values {
		fit := intercept + slope*float64(i)
		ssRes += (y - fit) * (y - fit)
		ssTot += (y - meanY) * (y - meanY)
	}
	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	return Trend{Slope: slope, Intercept: intercept, R2: r2, Points: n}, true
}

// MetricTrend fits a trend over the trailing days of one sample metric,
// skipping days the metric was not reported.
func MetricTrend(samples []biometrics.Sample, days int, pick func(biometrics.Sample) *float64) (Trend, bool) {
	window := lastN(samples, days)
	var values []float64
	for _, s := range window {
		if v := pick(s); v != nil {
			values = append(values, *v)
		}
	}
	return LinearTrend(values)
}

// ProjectScore extends a 0-100 score along its slope for the projection
// horizon, clamped to the score range.
func ProjectScore(current, slopePerDay float64) float64 {
	return clamp(current+slopePerDay*ProjectionHorizonDays, 0, 100)
}

// OvertrainingResult reports the paired HRV and resting heart rate
// trends behind the overtraining flag.
type OvertrainingResult struct {
	Flagged  bool  `json:"flagged"`
	HRVTrend Trend `json:"hrv_trend"`
	RHRTrend Trend `json:"rhr_trend"`
}

// Overtraining flags a sustained fortnight pattern of falling HRV and
// rising resting heart rate. Both trends must be fittable for the flag
// to fire.
func Overtraining(samples []biometrics.Sample) OvertrainingResult {
	hrv, hrvOK := MetricTrend(samples, OvertrainingWindowDays, func(s biometrics.Sample) *float64 {
		return s.HRVms
	})
	rhr, rhrOK := MetricTrend(samples, OvertrainingWindowDays, func(s biometrics.Sample) *float64 {
		return s.RestingHRBpm
	})

	return OvertrainingResult{
		Flagged:  hrvOK && rhrOK && hrv.Slope < OvertrainingHRVSlope && rhr.Slope > OvertrainingRHRSlope,
		HRVTrend: hrv,
		RHRTrend: rhr,
	}
}
