package synthetic

import (
	"math"
	"math/rand"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

var muscleRegions = []string{
	"neck", "shoulders", "chest", "lower_back",
	"glutes", "quadriceps", "hamstrings", "calves",
}

func (p *Provider) sampleSeries(i int, id string, end time.Time) []biometrics.Sample {
	samples := make([]biometrics.Sample, 0, p.days)
	for d := p.days - 1; d >= 0; d-- {
		day := end.AddDate(0, 0, -d)
		samples = append(samples, p.sample(i, id, day))
	}
	return samples
}

func (p *Provider) sample(i int, id string, day time.Time) biometrics.Sample {
	base := p.baselinesFor(i)
	rng := p.rng("sample", id, day.Format(dateLayout))

	wave := math.Sin(2 * math.Pi * float64(day.YearDay()) / 7)
	depth := episodeDepth(i, day)

	hrv := clamp(base.hrv*(1-0.28*depth)+3.5*wave+rng.NormFloat64()*3, 20, 140)
	rhr := clamp(base.rhr*(1+0.16*depth)-1.5*wave+rng.NormFloat64()*1.8, 35, 90)
	sleep := clamp(base.sleep-1.4*depth+0.3*wave+rng.NormFloat64()*0.5, 3.5, 10)
	quality := clamp(base.quality-18*depth+rng.NormFloat64()*6, 30, 98)
	spo2 := clamp(base.spo2-1.8*depth+rng.NormFloat64()*0.4, 90, 99.5)
	resp := clamp(13.5+2.2*depth+rng.NormFloat64()*0.8, 10, 24)

	temp := 36.55 + 0.5*depth + rng.NormFloat64()*0.12
	if depth >= 0.9 {
		temp += 0.9
	}

	s := biometrics.Sample{
		AthleteID:       id,
		Date:            day.Format(dateLayout),
		HRVms:           ptr(round1(hrv)),
		RestingHRBpm:    ptr(round1(rhr)),
		SleepHours:      ptr(round1(sleep)),
		SleepQuality:    ptr(round1(quality)),
		SpO2Pct:         ptr(round1(spo2)),
		RespiratoryRate: ptr(round1(resp)),
		BodyTempC:       ptr(round1(temp)),
	}

	// Sunday is the squad rest day: no session, no load.
	if day.Weekday() != time.Sunday {
		load := base.load * (1 + 0.25*wave) * (1 + 0.35*depth)
		if day.Weekday() == time.Saturday {
			load *= 1.3 // match day
		}
		load = clamp(load+rng.NormFloat64()*30, 50, 1200)
		s.TrainingLoad = ptr(round1(load))
		s.MuscleLoad = p.muscleLoad(rng, load, base.load)
	}

	return s
}

func (p *Provider) muscleLoad(rng *rand.Rand, load, baseLoad float64) map[string]float64 {
	factor := load / baseLoad
	out := make(map[string]float64, len(muscleRegions))
	for _, region := range muscleRegions {
		out[region] = round1(clamp(18+40*factor+rng.Float64()*24, 5, 95))
	}
	return out
}

// episodeDepth returns how deep athlete i is into an overload episode
// on the given day, in [0, 1]. Episodes recur on a 45-day cycle and
// ramp up then down over ten days; athletes outside fatigueAthletes
// never have one.
func episodeDepth(i int, day time.Time) float64 {
	if !fatigueAthletes[i] {
		return 0
	}
	pos := (day.YearDay() + i*17) % 45
	if pos >= 10 {
		return 0
	}
	return 1 - math.Abs(float64(pos)-5)/5
}
