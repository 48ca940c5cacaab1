// Package bodycomp defines body composition scan results.
package bodycomp

// Measurement is one body composition scan for an athlete. Segmental
// fields carry the lean mass split used by the muscle balance view.
type Measurement struct {
	AthleteID        string   `json:"athlete_id"`
	Date             string   `json:"date"`
	WeightKg         float64  `json:"weight_kg"`
	HeightCm         float64  `json:"height_cm"`
	BodyFatPct       *float64 `json:"body_fat_pct,omitempty"`
	MuscleMassKg     *float64 `json:"muscle_mass_kg,omitempty"`
	HydrationPct     *float64 `json:"hydration_pct,omitempty"`
	VisceralFatLevel *float64 `json:"visceral_fat_level,omitempty"`
	LeanMassLeftArm  *float64 `json:"lean_mass_left_arm_kg,omitempty"`
	LeanMassRightArm *float64 `json:"lean_mass_right_arm_kg,omitempty"`
	LeanMassLeftLeg  *float64 `json:"lean_mass_left_leg_kg,omitempty"`
	LeanMassRightLeg *float64 `json:"lean_mass_right_leg_kg,omitempty"`
	LeanMassTrunk    *float64 `json:"lean_mass_trunk_kg,omitempty"`
}

// Clone returns a deep copy of the measurement so callers can hand out
// data without exposing shared field pointers.
func (m Measurement) Clone() Measurement {
	out := m
	out.BodyFatPct = clonePtr(m.BodyFatPct)
	out.MuscleMassKg = clonePtr(m.MuscleMassKg)
	out.HydrationPct = clonePtr(m.HydrationPct)
	out.VisceralFatLevel = clonePtr(m.VisceralFatLevel)
	out.LeanMassLeftArm = clonePtr(m.LeanMassLeftArm)
	out.LeanMassRightArm = clonePtr(m.LeanMassRightArm)
	out.LeanMassLeftLeg = clonePtr(m.LeanMassLeftLeg)
	out.LeanMassRightLeg = clonePtr(m.LeanMassRightLeg)
	out.LeanMassTrunk = clonePtr(m.LeanMassTrunk)
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// BMI computes body mass index from the scan's weight and height.
// Returns 0 when height is missing.
func (m Measurement) BMI() float64 {
	if m.HeightCm <= 0 {
		return 0
	}
	h := m.HeightCm / 100
	return m.WeightKg / (h * h)
}

// ArmAsymmetryPct returns the percent difference between arm lean mass,
// relative to the larger side. Returns 0 when either side is missing.
func (m Measurement) ArmAsymmetryPct() float64 {
	return asymmetryPct(m.LeanMassLeftArm, m.LeanMassRightArm)
}

// LegAsymmetryPct returns the percent difference between leg lean mass,
// relative to the larger side. Returns 0 when either side is missing.
func (m Measurement) LegAsymmetryPct() float64 {
	return asymmetryPct(m.LeanMassLeftLeg, m.LeanMassRightLeg)
}

func asymmetryPct(left, right *float64) float64 {
	if left == nil || right == nil {
		return 0
	}
	l, r := *left, *right
	larger := l
	if r > larger {
		larger = r
	}
	if larger <= 0 {
		return 0
	}
	diff := l - r
	if diff < 0 {
		diff = -diff
	}
	return diff / larger * 100
}
