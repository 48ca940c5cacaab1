package analytics

import (
	"fmt"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
)

// Injury risk factor points. The score is the clamped sum of every
// factor that fires.
const (
	riskPointsACWRSpike     = 35.0
	riskPointsACWRElevated  = 20.0
	riskPointsUndertraining = 10.0
	riskPointsHRVLow        = 20.0
	riskPointsHRVDip        = 10.0
	riskPointsSleepShort    = 15.0
	riskPointsRHRElevated   = 10.0
	riskPointsCKHigh        = 15.0
	riskPointsCRPHigh       = 10.0
	riskPointsGenotype      = 10.0
)

// RiskFactor is one contributor to the injury risk score.
type RiskFactor struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
	Detail string  `json:"detail"`
}

// InjuryRiskResult is the composite injury risk with the factors that
// fired. A result with no factors scores zero.
type InjuryRiskResult struct {
	Score   float64      `json:"score"`
	Band    string       `json:"band"`
	Factors []RiskFactor `json:"factors"`
}

// InjuryRisk scores soft tissue injury risk from workload, recovery
// state, blood markers, and genotype. Panel and profile may be nil when
// no draw or test exists.
func InjuryRisk(samples []biometrics.Sample, panel *blood.Panel, profile *genetics.Profile) InjuryRiskResult {
	var factors []RiskFactor

	if ratio, ok := ACWR(samples); ok {
		switch {
		case ratio > ACWRSpike:
			factors = append(factors, RiskFactor{
				Name:   "acwr_spike",
				Points: riskPointsACWRSpike,
				Detail: fmt.Sprintf("acute:chronic workload %.2f exceeds %.1f", ratio, ACWRSpike),
			})
		case ratio >= ACWRElevated:
			factors = append(factors, RiskFactor{
				Name:   "acwr_elevated",
				Points: riskPointsACWRElevated,
				Detail: fmt.Sprintf("acute:chronic workload %.2f in the elevated range", ratio),
			})
		case ratio < ACWRUndertraining:
			factors = append(factors, RiskFactor{
				Name:   "undertraining",
				Points: riskPointsUndertraining,
				Detail: fmt.Sprintf("acute:chronic workload %.2f below %.1f", ratio, ACWRUndertraining),
			})
		}
	}

	day, hasDay := latest(samples)
	baseline := ComputeBaseline(history(samples))

	if hasDay && day.HRVms != nil && baseline.OK && baseline.HRVms > 0 {
		ratio := *day.HRVms / baseline.HRVms
		switch {
		case ratio < HRVSuppressedRatio:
			factors = append(factors, RiskFactor{
				Name:   "hrv_suppressed",
				Points: riskPointsHRVLow,
				Detail: fmt.Sprintf("hrv at %.0f%% of baseline", ratio*100),
			})
		case ratio < HRVDipRatio:
			factors = append(factors, RiskFactor{
				Name:   "hrv_dip",
				Points: riskPointsHRVDip,
				Detail: fmt.Sprintf("hrv at %.0f%% of baseline", ratio*100),
			})
		}
	}

	if mean, ok := meanOf(samples, SleepShortWindowDays, func(s biometrics.Sample) *float64 {
		return s.SleepHours
	}); ok && mean < SleepLowHours {
		factors = append(factors, RiskFactor{
			Name:   "sleep_short",
			Points: riskPointsSleepShort,
			Detail: fmt.Sprintf("3-day mean sleep %.1fh under %.0fh", mean, SleepLowHours),
		})
	}

	if hasDay && day.RestingHRBpm != nil && baseline.OK && baseline.RHRBpm > 0 {
		if *day.RestingHRBpm >= baseline.RHRBpm+RHRRiskDeltaBpm {
			factors = append(factors, RiskFactor{
				Name:   "rhr_elevated",
				Points: riskPointsRHRElevated,
				Detail: fmt.Sprintf("resting hr %.0f bpm, %.0f over baseline", *day.RestingHRBpm, *day.RestingHRBpm-baseline.RHRBpm),
			})
		}
	}

	if panel != nil {
		if panel.CKUL != nil && *panel.CKUL > blood.CKHighUL {
			factors = append(factors, RiskFactor{
				Name:   "ck_high",
				Points: riskPointsCKHigh,
				Detail: fmt.Sprintf("creatine kinase %.0f U/L", *panel.CKUL),
			})
		}
		if panel.CRPMgL != nil && *panel.CRPMgL > blood.CRPHighMgL {
			factors = append(factors, RiskFactor{
				Name:   "crp_high",
				Points: riskPointsCRPHigh,
				Detail: fmt.Sprintf("crp %.1f mg/L", *panel.CRPMgL),
			})
		}
	}

	if profile != nil && profile.HasRiskGenotype() {
		factors = append(factors, RiskFactor{
			Name:   "genotype",
			Points: riskPointsGenotype,
			Detail: "soft tissue risk genotype",
		})
	}

	var score float64
	for _, f := range factors {
		score += f.Points
	}
	score = clamp(score, 0, 100)

	return InjuryRiskResult{
		Score:   score,
		Band:    RiskBand(score),
		Factors: factors,
	}
}

// HRV baseline ratios and companion thresholds used by the risk model.
const (
	HRVSuppressedRatio = 0.75
	HRVDipRatio        = 0.85

	SleepShortWindowDays = 3
	RHRRiskDeltaBpm      = 8.0
)
