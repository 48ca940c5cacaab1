package analytics

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

// ACWR windows, in days.
const (
	AcuteWindowDays   = 7
	ChronicWindowDays = 28
)

// ACWR thresholds used by the risk model and alert rules. The sweet
// spot sits between the undertraining floor and the spike ceiling.
const (
	ACWRUndertraining = 0.8
	ACWRElevated      = 1.3
	ACWRSpike         = 1.5
)

// ACWR computes the acute:chronic workload ratio, 7-day mean load over
// 28-day mean load. ok is false with under a week of history or when
// the chronic mean is zero. Samples without a load reading count as
// rest days.
func ACWR(samples []biometrics.Sample) (float64, bool) {
	if len(samples) < AcuteWindowDays {
		return 0, false
	}

	acute := meanLoad(lastN(samples, AcuteWindowDays))
	chronic := meanLoad(lastN(samples, ChronicWindowDays))
	if chronic <= 0 {
		return 0, false
	}
	return acute / chronic, true
}

// meanLoad averages load across the window, counting missing readings
// as zero-load rest days.
func meanLoad(samples []biometrics.Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		if s.TrainingLoad != nil {
			sum += *s.TrainingLoad
		}
	}
	return sum / float64(len(samples))
}
