package analytics

import (
	"math"
	"testing"
)

func TestACWRFlatLoad(t *testing.T) {
	samples := withLoad(flatWindow(28, 80, 55), 400)

	ratio, ok := ACWR(samples)
	if !ok {
		t.Fatal("expected a ratio")
	}
	if math.Abs(ratio-1.0) > 1e-9 {
		t.Fatalf("expected 1.0, got %v", ratio)
	}
}

func TestACWRSpike(t *testing.T) {
	samples := withLoad(flatWindow(28, 80, 55), 300)
	for i := len(samples) - 7; i < len(samples); i++ {
		samples[i].TrainingLoad = ptr(600.0)
	}

	ratio, ok := ACWR(samples)
	if !ok {
		t.Fatal("expected a ratio")
	}
	if ratio <= ACWRSpike {
		t.Fatalf("expected ratio above %v, got %v", ACWRSpike, ratio)
	}
}

func TestACWRTooLittleHistory(t *testing.T) {
	samples := withLoad(flatWindow(6, 80, 55), 400)
	if _, ok := ACWR(samples); ok {
		t.Fatal("expected no ratio with under a week of history")
	}
}

func TestACWRZeroChronicLoad(t *testing.T) {
	samples := flatWindow(28, 80, 55)
	if _, ok := ACWR(samples); ok {
		t.Fatal("expected no ratio with zero chronic load")
	}
}

func TestACWRMissingDaysCountAsRest(t *testing.T) {
	samples := withLoad(flatWindow(28, 80, 55), 400)
	for i := len(samples) - 7; i < len(samples); i++ {
		samples[i].TrainingLoad = nil
	}

	ratio, ok := ACWR(samples)
	if !ok {
		t.Fatal("expected a ratio")
	}
	if ratio != 0 {
		t.Fatalf("expected 0 acute over rest week, got %v", ratio)
	}
}
