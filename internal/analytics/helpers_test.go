package analytics

import (
	"fmt"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

func ptr(v float64) *float64 { return &v }

// flatWindow builds n days of samples with constant HRV and resting HR,
// dated sequentially so the newest sample is last.
func flatWindow(n int, hrv, rhr float64) []biometrics.Sample {
	out := make([]biometrics.Sample, n)
	for i := 0; i < n; i++ {
		out[i] = biometrics.Sample{
			AthleteID:    "ath-1",
			Date:         fmt.Sprintf("2025-03-%02d", i+1),
			HRVms:        ptr(hrv),
			RestingHRBpm: ptr(rhr),
		}
	}
	return out
}

// withLoad sets a constant training load across the window.
func withLoad(samples []biometrics.Sample, load float64) []biometrics.Sample {
	for i := range samples {
		samples[i].TrainingLoad = ptr(load)
	}
	return samples
}

// withSleep sets a constant sleep duration across the window.
func withSleep(samples []biometrics.Sample, hours float64) []biometrics.Sample {
	for i := range samples {
		samples[i].SleepHours = ptr(hours)
	}
	return samples
}
