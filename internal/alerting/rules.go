package alerting

import (
	"fmt"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/analytics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/alerts"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
)

// Rule thresholds not already owned by the analytics or blood packages.
const (
	hrvCriticalRatio  = 0.60
	hrvWarningRatio   = 0.75
	rhrDeltaBpm       = 10.0
	rhrAbsoluteBpm    = 75.0
	spo2WarningPct    = 94.0
	tempWarningC      = 37.6
	aqiAlertThreshold = 150
)

// candidate is a rule hit before dedupe and persistence.
type candidate struct {
	metric         string
	severity       alerts.Severity
	title          string
	message        string
	recommendation string
	value          *float64
	threshold      *float64
}

func ptr(v float64) *float64 { return &v }

// evaluateRules runs every rule for one athlete and returns the hits.
func evaluateRules(samples []biometrics.Sample, panel *blood.Panel, profile *genetics.Profile, air *environment.AirQuality) []candidate {
	var out []candidate

	out = append(out, biometricRules(samples)...)
	if panel != nil {
		out = append(out, bloodRules(*panel)...)
	}
	out = append(out, riskRules(samples, panel, profile)...)
	if air != nil && air.AQIUS > aqiAlertThreshold {
		out = append(out, candidate{
			metric:         "poor_air_quality",
			severity:       alerts.SeverityWarning,
			title:          "Poor air quality at training venue",
			message:        fmt.Sprintf("US AQI %d (%s)", air.AQIUS, air.Category()),
			recommendation: "move conditioning sessions indoors",
			value:          ptr(float64(air.AQIUS)),
			threshold:      ptr(float64(aqiAlertThreshold)),
		})
	}

	return out
}

func biometricRules(samples []biometrics.Sample) []candidate {
	var out []candidate

	if len(samples) == 0 {
		return nil
	}
	day := samples[len(samples)-1]
	baseline := analytics.ComputeBaseline(samples[:len(samples)-1])

	if day.HRVms != nil && baseline.OK && baseline.HRVms > 0 {
		ratio := *day.HRVms / baseline.HRVms
		switch {
		case ratio < hrvCriticalRatio:
			out = append(out, candidate{
				metric:         "hrv_drop",
				severity:       alerts.SeverityCritical,
				title:          "HRV collapsed",
				message:        fmt.Sprintf("hrv %.0f ms is %.0f%% of baseline", *day.HRVms, ratio*100),
				recommendation: "pull from training and screen for illness",
				value:          ptr(ratio),
				threshold:      ptr(hrvCriticalRatio),
			})
		case ratio < hrvWarningRatio:
			out = append(out, candidate{
				metric:         "hrv_drop",
				severity:       alerts.SeverityWarning,
				title:          "HRV well below baseline",
				message:        fmt.Sprintf("hrv %.0f ms is %.0f%% of baseline", *day.HRVms, ratio*100),
				recommendation: "downgrade today's session to recovery work",
				value:          ptr(ratio),
				threshold:      ptr(hrvWarningRatio),
			})
		}
	}

	if day.RestingHRBpm != nil {
		rhr := *day.RestingHRBpm
		if baseline.OK && baseline.RHRBpm > 0 {
			if rhr >= baseline.RHRBpm+rhrDeltaBpm {
				out = append(out, candidate{
					metric:         "rhr_elevated",
					severity:       alerts.SeverityWarning,
					title:          "Resting heart rate elevated",
					message:        fmt.Sprintf("resting hr %.0f bpm, %.0f over baseline", rhr, rhr-baseline.RHRBpm),
					recommendation: "check hydration and overnight recovery",
					value:          ptr(rhr),
					threshold:      ptr(baseline.RHRBpm + rhrDeltaBpm),
				})
			}
		} else if rhr >= rhrAbsoluteBpm {
			out = append(out, candidate{
				metric:         "rhr_elevated",
				severity:       alerts.SeverityWarning,
				title:          "Resting heart rate elevated",
				message:        fmt.Sprintf("resting hr %.0f bpm", rhr),
				recommendation: "check hydration and overnight recovery",
				value:          ptr(rhr),
				threshold:      ptr(rhrAbsoluteBpm),
			})
		}
	}

	if day.SpO2Pct != nil {
		spo2 := *day.SpO2Pct
		switch {
		case spo2 < analytics.SpO2CriticalPct:
			out = append(out, candidate{
				metric:         "spo2_low",
				severity:       alerts.SeverityCritical,
				title:          "Blood oxygen critically low",
				message:        fmt.Sprintf("spo2 %.1f%%", spo2),
				recommendation: "refer for medical review today",
				value:          ptr(spo2),
				threshold:      ptr(analytics.SpO2CriticalPct),
			})
		case spo2 < spo2WarningPct:
			out = append(out, candidate{
				metric:         "spo2_low",
				severity:       alerts.SeverityWarning,
				title:          "Blood oxygen low",
				message:        fmt.Sprintf("spo2 %.1f%%", spo2),
				recommendation: "re-measure at rest and monitor",
				value:          ptr(spo2),
				threshold:      ptr(spo2WarningPct),
			})
		}
	}

	if mean, ok := meanSleep(samples); ok && mean < analytics.SleepLowHours {
		out = append(out, candidate{
			metric:         "sleep_short",
			severity:       alerts.SeverityWarning,
			title:          "Sleep consistently short",
			message:        fmt.Sprintf("3-day mean sleep %.1fh", mean),
			recommendation: "enforce an earlier lights-out this week",
			value:          ptr(mean),
			threshold:      ptr(analytics.SleepLowHours),
		})
	}

	if day.BodyTempC != nil {
		temp := *day.BodyTempC
		switch {
		case temp >= analytics.BodyTempFeverC:
			out = append(out, candidate{
				metric:         "body_temp",
				severity:       alerts.SeverityCritical,
				title:          "Fever",
				message:        fmt.Sprintf("body temperature %.1f°C", temp),
				recommendation: "isolate and refer for medical review",
				value:          ptr(temp),
				threshold:      ptr(analytics.BodyTempFeverC),
			})
		case temp >= tempWarningC:
			out = append(out, candidate{
				metric:         "body_temp",
				severity:       alerts.SeverityWarning,
				title:          "Body temperature elevated",
				message:        fmt.Sprintf("body temperature %.1f°C", temp),
				recommendation: "hold off intense sessions and re-check",
				value:          ptr(temp),
				threshold:      ptr(tempWarningC),
			})
		}
	}

	return out
}

func bloodRules(panel blood.Panel) []candidate {
	var out []candidate

	if panel.CortisolNmolL != nil && *panel.CortisolNmolL > blood.CortisolHighNmolL {
		out = append(out, candidate{
			metric:         "high_cortisol",
			severity:       alerts.SeverityWarning,
			title:          "Cortisol high",
			message:        fmt.Sprintf("cortisol %.0f nmol/L", *panel.CortisolNmolL),
			recommendation: "reduce training stress and review sleep",
			value:          panel.CortisolNmolL,
			threshold:      ptr(blood.CortisolHighNmolL),
		})
	}

	if result, ok := analytics.HormonalBalance(panel); ok && result.State == analytics.HormonalCatabolic {
		out = append(out, candidate{
			metric:         "catabolic_state",
			severity:       alerts.SeverityWarning,
			title:          "Catabolic hormone balance",
			message:        fmt.Sprintf("cortisol:testosterone ratio %.1f", result.Ratio),
			recommendation: "deload and prioritise protein intake",
			value:          ptr(result.Ratio),
			threshold:      ptr(analytics.CTRatioCatabolic),
		})
	}

	if panel.CKUL != nil {
		ck := *panel.CKUL
		switch {
		case ck > blood.CKCriticalUL:
			out = append(out, candidate{
				metric:         "ck_high",
				severity:       alerts.SeverityCritical,
				title:          "Creatine kinase very high",
				message:        fmt.Sprintf("ck %.0f U/L", ck),
				recommendation: "stop loading and refer for medical review",
				value:          ptr(ck),
				threshold:      ptr(blood.CKCriticalUL),
			})
		case ck > blood.CKHighUL:
			out = append(out, candidate{
				metric:         "ck_high",
				severity:       alerts.SeverityWarning,
				title:          "Creatine kinase high",
				message:        fmt.Sprintf("ck %.0f U/L", ck),
				recommendation: "schedule recovery work before the next hard session",
				value:          ptr(ck),
				threshold:      ptr(blood.CKHighUL),
			})
		}
	}

	if panel.CRPMgL != nil && *panel.CRPMgL > blood.CRPHighMgL {
		out = append(out, candidate{
			metric:         "crp_high",
			severity:       alerts.SeverityWarning,
			title:          "Inflammation marker elevated",
			message:        fmt.Sprintf("crp %.1f mg/L", *panel.CRPMgL),
			recommendation: "screen for infection or unresolved muscle damage",
			value:          panel.CRPMgL,
			threshold:      ptr(blood.CRPHighMgL),
		})
	}

	if panel.FerritinUgL != nil && *panel.FerritinUgL < blood.FerritinLowUgL {
		out = append(out, candidate{
			metric:         "low_ferritin",
			severity:       alerts.SeverityWarning,
			title:          "Ferritin low",
			message:        fmt.Sprintf("ferritin %.0f µg/L", *panel.FerritinUgL),
			recommendation: "review iron intake with the nutritionist",
			value:          panel.FerritinUgL,
			threshold:      ptr(blood.FerritinLowUgL),
		})
	}

	if panel.VitaminDNmolL != nil && *panel.VitaminDNmolL < blood.VitaminDLowNmolL {
		out = append(out, candidate{
			metric:         "low_vitamin_d",
			severity:       alerts.SeverityInfo,
			title:          "Vitamin D low",
			message:        fmt.Sprintf("vitamin d %.0f nmol/L", *panel.VitaminDNmolL),
			recommendation: "consider supplementation per the catalog",
			value:          panel.VitaminDNmolL,
			threshold:      ptr(blood.VitaminDLowNmolL),
		})
	}

	return out
}

func riskRules(samples []biometrics.Sample, panel *blood.Panel, profile *genetics.Profile) []candidate {
	var out []candidate

	if ratio, ok := analytics.ACWR(samples); ok && ratio > analytics.ACWRSpike {
		out = append(out, candidate{
			metric:         "acwr_spike",
			severity:       alerts.SeverityWarning,
			title:          "Workload spike",
			message:        fmt.Sprintf("acute:chronic workload %.2f", ratio),
			recommendation: "cap this week's volume near the chronic mean",
			value:          ptr(ratio),
			threshold:      ptr(analytics.ACWRSpike),
		})
	}

	risk := analytics.InjuryRisk(samples, panel, profile)
	switch risk.Band {
	case "critical":
		out = append(out, candidate{
			metric:         "injury_risk",
			severity:       alerts.SeverityCritical,
			title:          "Injury risk critical",
			message:        fmt.Sprintf("injury risk score %.0f", risk.Score),
			recommendation: "individualise this week's plan with medical staff",
			value:          ptr(risk.Score),
			threshold:      ptr(analytics.RiskHighMax),
		})
	case "high":
		out = append(out, candidate{
			metric:         "injury_risk",
			severity:       alerts.SeverityWarning,
			title:          "Injury risk high",
			message:        fmt.Sprintf("injury risk score %.0f", risk.Score),
			recommendation: "trim high-speed volume until markers settle",
			value:          ptr(risk.Score),
			threshold:      ptr(analytics.RiskModerateMax),
		})
	}

	return out
}

func meanSleep(samples []biometrics.Sample) (float64, bool) {
	summary, ok := analytics.SleepMetrics(samples, analytics.SleepShortWindowDays)
	if !ok {
		return 0, false
	}
	return summary.MeanHours, true
}
