package bodycomp

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestBMI(t *testing.T) {
	m := Measurement{WeightKg: 80, HeightCm: 180}
	got := m.BMI()
	want := 80.0 / (1.8 * 1.8)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBMIMissingHeight(t *testing.T) {
	if got := (Measurement{WeightKg: 80}).BMI(); got != 0 {
		t.Fatalf("expected 0 for missing height, got %v", got)
	}
}

func TestArmAsymmetryPct(t *testing.T) {
	m := Measurement{LeanMassLeftArm: ptr(3.8), LeanMassRightArm: ptr(4.0)}
	got := m.ArmAsymmetryPct()
	want := 0.2 / 4.0 * 100
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAsymmetryMissingSide(t *testing.T) {
	m := Measurement{LeanMassLeftLeg: ptr(9.1)}
	if got := m.LegAsymmetryPct(); got != 0 {
		t.Fatalf("expected 0 with a missing side, got %v", got)
	}
}

func TestMeasurementCloneIsDeep(t *testing.T) {
	m := Measurement{AthleteID: "ath-1", Date: "2025-03-01", WeightKg: 80, BodyFatPct: ptr(12.5)}
	c := m.Clone()

	*c.BodyFatPct = 40
	if *m.BodyFatPct != 12.5 {
		t.Fatalf("clone shares body fat pointer, got %v", *m.BodyFatPct)
	}
	if c.HydrationPct != nil {
		t.Fatal("expected nil fields to stay nil")
	}
}
