package analytics

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
)

// HormonalState labels the cortisol:testosterone balance.
type HormonalState string

const (
	HormonalCatabolic HormonalState = "catabolic"
	HormonalAnabolic  HormonalState = "anabolic"
	HormonalBalanced  HormonalState = "balanced"
)

// Cortisol:testosterone ratio cutpoints, both markers in nmol/L.
const (
	CTRatioCatabolic = 30.0
	CTRatioAnabolic  = 15.0
)

// HormonalResult is the cortisol:testosterone ratio and its state.
type HormonalResult struct {
	Ratio float64       `json:"ratio"`
	State HormonalState `json:"state"`
}

// HormonalBalance computes the cortisol:testosterone ratio from a blood
// panel. A high ratio means breakdown dominates; a low one favours
// building. ok is false when either marker is missing.
func HormonalBalance(p blood.Panel) (HormonalResult, bool) {
	if p.CortisolNmolL == nil || p.TestosteroneNmolL == nil || *p.TestosteroneNmolL <= 0 {
		return HormonalResult{}, false
	}

	ratio := *p.CortisolNmolL / *p.TestosteroneNmolL
	state := HormonalBalanced
	switch {
	case ratio > CTRatioCatabolic:
		state = HormonalCatabolic
	case ratio < CTRatioAnabolic:
		state = HormonalAnabolic
	}
	return HormonalResult{Ratio: ratio, State: state}, true
}
