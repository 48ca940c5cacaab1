// Package analytics holds the pure scoring and classification functions
// behind the dashboard: metric bands, readiness, recovery, injury risk,
// hormonal balance, sleep metrics, workload ratios, and trend
// projections. Functions take sample windows sorted ascending by date,
// one sample per day, and report ok=false instead of panicking when the
// input is too thin to score.
package analytics

// Band labels a metric value against its reference range.
type Band string

const (
	BandLow      Band = "low"
	BandNormal   Band = "normal"
	BandHigh     Band = "high"
	BandElevated Band = "elevated"
	BandFever    Band = "fever"
	BandCritical Band = "critical"
)

// Resting heart rate cutpoints, bpm.
const (
	RestingHRLowBpm  = 40.0
	RestingHRHighBpm = 65.0
)

// RestingHRBand classifies a resting heart rate reading.
func RestingHRBand(bpm float64) Band {
	switch {
	case bpm < RestingHRLowBpm:
		return BandLow
	case bpm >= RestingHRHighBpm:
		return BandHigh
	default:
		return BandNormal
	}
}

// HRV cutpoints. Baseline-relative ratios apply when a baseline is
// established; the absolute bounds are the fallback for new athletes.
const (
	HRVLowRatio  = 0.80
	HRVHighRatio = 1.20
	HRVLowAbsMs  = 50.0
	HRVHighAbsMs = 100.0
)

// HRVBand classifies an rMSSD reading, relative to the athlete's
// baseline when one is established.
func HRVBand(hrvMs float64, baseline Baseline) Band {
	if baseline.OK && baseline.HRVms > 0 {
		ratio := hrvMs / baseline.HRVms
		switch {
		case ratio < HRVLowRatio:
			return BandLow
		case ratio > HRVHighRatio:
			return BandHigh
		default:
			return BandNormal
		}
	}
	switch {
	case hrvMs < HRVLowAbsMs:
		return BandLow
	case hrvMs > HRVHighAbsMs:
		return BandHigh
	default:
		return BandNormal
	}
}

// SpO2 cutpoints, percent.
const (
	SpO2CriticalPct = 92.0
	SpO2LowPct      = 95.0
)

// SpO2Band classifies a blood oxygen reading.
func SpO2Band(pct float64) Band {
	switch {
	case pct < SpO2CriticalPct:
		return BandCritical
	case pct < SpO2LowPct:
		return BandLow
	default:
		return BandNormal
	}
}

// Sleep duration cutpoints, hours.
const (
	SleepLowHours  = 6.0
	SleepHighHours = 9.0
)

// SleepBand classifies nightly sleep duration.
func SleepBand(hours float64) Band {
	switch {
	case hours < SleepLowHours:
		return BandLow
	case hours > SleepHighHours:
		return BandHigh
	default:
		return BandNormal
	}
}

// Body temperature cutpoints, Celsius.
const (
	BodyTempLowC      = 35.5
	BodyTempElevatedC = 37.5
	BodyTempFeverC    = 38.0
)

// BodyTempBand classifies a body temperature reading.
func BodyTempBand(tempC float64) Band {
	switch {
	case tempC < BodyTempLowC:
		return BandLow
	case tempC >= BodyTempFeverC:
		return BandFever
	case tempC > BodyTempElevatedC:
		return BandElevated
	default:
		return BandNormal
	}
}

// BMI cutpoints.
const (
	BMIUnderweightMax = 18.5
	BMINormalMax      = 25.0
	BMIOverweightMax  = 30.0
)

// BMIStatus buckets a body mass index value.
func BMIStatus(bmi float64) string {
	switch {
	case bmi < BMIUnderweightMax:
		return "underweight"
	case bmi < BMINormalMax:
		return "normal"
	case bmi < BMIOverweightMax:
		return "overweight"
	default:
		return "obese"
	}
}

// Readiness and recovery score band cutpoints.
const (
	ScorePoorMax     = 50.0
	ScoreModerateMax = 70.0
	ScoreGoodMax     = 85.0
)

// ScoreBand buckets a 0-100 readiness or recovery score.
func ScoreBand(score float64) string {
	switch {
	case score < ScorePoorMax:
		return "poor"
	case score < ScoreModerateMax:
		return "moderate"
	case score < ScoreGoodMax:
		return "good"
	default:
		return "optimal"
	}
}

// Injury risk band cutpoints.
const (
	RiskLowMax      = 25.0
	RiskModerateMax = 50.0
	RiskHighMax     = 75.0
)

// RiskBand buckets a 0-100 injury risk score.
func RiskBand(score float64) string {
	switch {
	case score < RiskLowMax:
		return "low"
	case score < RiskModerateMax:
		return "moderate"
	case score < RiskHighMax:
		return "high"
	default:
		return "critical"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
