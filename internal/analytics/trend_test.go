package analytics

import (
	"math"
	"testing"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

func TestLinearTrendPerfectLine(t *testing.T) {
	trend, ok := LinearTrend([]float64{10, 12, 14, 16, 18})
	if !ok {
		t.Fatal("expected a fit")
	}
	if math.Abs(trend.Slope-2) > 1e-9 {
		t.Fatalf("expected slope 2, got %v", trend.Slope)
	}
	if math.Abs(trend.Intercept-10) > 1e-9 {
		t.Fatalf("expected intercept 10, got %v", trend.Intercept)
	}
	if math.Abs(trend.R2-1) > 1e-9 {
		t.Fatalf("expected r2 1, got %v", trend.R2)
	}
}

func TestLinearTrendFlatLine(t *testing.T) {
	trend, ok := LinearTrend([]float64{7, 7, 7, 7})
	if !ok {
		t.Fatal("expected a fit")
	}
	if trend.Slope != 0 {
		t.Fatalf("expected slope 0, got %v", trend.Slope)
	}
	// Zero total variance: the fit is exact.
	if trend.R2 != 1 {
		t.Fatalf("expected r2 1, got %v", trend.R2)
	}
}

func TestLinearTrendTooFewPoints(t *testing.T) {
	if _, ok := LinearTrend([]float64{1, 2}); ok {
		t.Fatal("expected no fit with two points")
	}
	if _, ok := LinearTrend(nil); ok {
		t.Fatal("expected no fit with no points")
	}
}

func TestProjectScoreClamps(t *testing.T) {
	if got := ProjectScore(95, 2); got != 100 {
		t.Fatalf("expected clamp to 100, got %v", got)
	}
	if got := ProjectScore(10, -3); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := ProjectScore(50, 1); got != 57 {
		t.Fatalf("expected 57, got %v", got)
	}
}

func TestOvertrainingFlagged(t *testing.T) {
	samples := flatWindow(14, 80, 55)
	for i := range samples {
		samples[i].HRVms = ptr(80 - 2.0*float64(i))
		samples[i].RestingHRBpm = ptr(55 + 0.6*float64(i))
	}

	result := Overtraining(samples)
	if !result.Flagged {
		t.Fatalf("expected flag, hrv slope %v rhr slope %v", result.HRVTrend.Slope, result.RHRTrend.Slope)
	}
}

func TestOvertrainingNotFlaggedOnHRVAlone(t *testing.T) {
	samples := flatWindow(14, 80, 55)
	for i := range samples {
		samples[i].HRVms = ptr(80 - 2.0*float64(i))
	}

	result := Overtraining(samples)
	if result.Flagged {
		t.Fatal("falling hrv with flat rhr should not flag")
	}
}

func TestOvertrainingTooLittleData(t *testing.T) {
	result := Overtraining(flatWindow(2, 80, 55))
	if result.Flagged {
		t.Fatal("expected no flag with two days of data")
	}
}

func TestMetricTrendSkipsMissing(t *testing.T) {
	samples := flatWindow(6, 80, 55)
	samples[2].HRVms = nil

	trend, ok := MetricTrend(samples, 14, func(s biometrics.Sample) *float64 { return s.HRVms })
	if !ok {
		t.Fatal("expected a fit")
	}
	if trend.Points != 5 {
		t.Fatalf("expected 5 points, got %d", trend.Points)
	}
}
