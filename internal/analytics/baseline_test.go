package analytics

import (
	"testing"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

func TestComputeBaseline(t *testing.T) {
	samples := flatWindow(20, 80, 55)
	b := ComputeBaseline(samples)

	if !b.OK {
		t.Fatal("expected established baseline with 20 samples")
	}
	if b.HRVms != 80 {
		t.Fatalf("expected hrv baseline 80, got %v", b.HRVms)
	}
	if b.RHRBpm != 55 {
		t.Fatalf("expected rhr baseline 55, got %v", b.RHRBpm)
	}
	if b.Samples != 20 {
		t.Fatalf("expected 20 contributing samples, got %d", b.Samples)
	}
}

func TestComputeBaselineTooFewSamples(t *testing.T) {
	b := ComputeBaseline(flatWindow(10, 80, 55))
	if b.OK {
		t.Fatal("expected baseline not established with 10 samples")
	}
	if b.HRVms != 80 {
		t.Fatalf("means still computed, expected 80, got %v", b.HRVms)
	}
}

func TestComputeBaselineUsesTrailingWindow(t *testing.T) {
	old := flatWindow(30, 100, 50)
	recent := flatWindow(28, 60, 60)
	samples := append(old, recent...)

	b := ComputeBaseline(samples)
	if b.HRVms != 60 {
		t.Fatalf("expected baseline over trailing 28 days only, got %v", b.HRVms)
	}
}

func TestComputeBaselineSkipsMissing(t *testing.T) {
	samples := flatWindow(20, 80, 55)
	samples[3].HRVms = nil
	samples[7].HRVms = nil

	b := ComputeBaseline(samples)
	if b.Samples != 18 {
		t.Fatalf("expected 18 contributing samples, got %d", b.Samples)
	}
	if b.HRVms != 80 {
		t.Fatalf("expected mean unchanged, got %v", b.HRVms)
	}
}

func TestComputeBaselineEmpty(t *testing.T) {
	b := ComputeBaseline(nil)
	if b.OK {
		t.Fatal("expected no baseline from empty window")
	}
	if b.HRVms != 0 || b.RHRBpm != 0 {
		t.Fatal("expected zero means from empty window")
	}
}

func TestMeanOf(t *testing.T) {
	samples := []biometrics.Sample{
		{SleepHours: ptr(6)},
		{SleepHours: ptr(8)},
		{SleepHours: nil},
	}
	mean, ok := meanOf(samples, 3, func(s biometrics.Sample) *float64 { return s.SleepHours })
	if !ok {
		t.Fatal("expected ok")
	}
	if mean != 7 {
		t.Fatalf("expected 7, got %v", mean)
	}

	if _, ok := meanOf(nil, 3, func(s biometrics.Sample) *float64 { return s.SleepHours }); ok {
		t.Fatal("expected not ok for empty window")
	}
}
