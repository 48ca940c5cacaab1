package synthetic

import (
	"fmt"
	"math"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/bodycomp"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
)

const geneticTestDate = "2024-11-05"

// bodyCompSeries produces one scan per Monday in the window. Weight and
// body fat drift on a slow seasonal curve around the athlete's base.
func (p *Provider) bodyCompSeries(i int, a athlete.Athlete, end time.Time) []bodycomp.Measurement {
	baseFat := p.baseBodyFat(i)
	var scans []bodycomp.Measurement

	for d := p.days - 1; d >= 0; d-- {
		day := end.AddDate(0, 0, -d)
		if day.Weekday() != time.Monday {
			continue
		}
		rng := p.rng("bodycomp", a.ID, day.Format(dateLayout))

		weight := a.WeightKg + 1.5*math.Sin(2*math.Pi*float64(day.YearDay())/180) + rng.NormFloat64()*0.5
		fat := clamp(baseFat+0.8*math.Sin(2*math.Pi*(float64(day.YearDay())+30)/180)+rng.NormFloat64()*0.3, 6, 25)
		lean := weight * (1 - fat/100)
		muscle := lean * 0.55

		armLeft := lean * 0.058
		armRight := lean * 0.058 * (1 + rng.NormFloat64()*0.01)
		legLeft := lean * 0.168
		legRight := lean * 0.168 * (1 + rng.NormFloat64()*0.01)
		if i%5 == 1 {
			legRight *= 0.92 // persistent imbalance for the muscle balance view
		}

		scans = append(scans, bodycomp.Measurement{
			AthleteID:        a.ID,
			Date:             day.Format(dateLayout),
			WeightKg:         round1(weight),
			HeightCm:         a.HeightCm,
			BodyFatPct:       ptr(round1(fat)),
			MuscleMassKg:     ptr(round1(muscle)),
			HydrationPct:     ptr(round1(53 + rng.Float64()*9)),
			VisceralFatLevel: ptr(round1(clamp(3+rng.Float64()*4+(weight-90)/10, 1, 15))),
			LeanMassLeftArm:  ptr(round1(armLeft)),
			LeanMassRightArm: ptr(round1(armRight)),
			LeanMassLeftLeg:  ptr(round1(legLeft)),
			LeanMassRightLeg: ptr(round1(legRight)),
			LeanMassTrunk:    ptr(round1(lean * 0.46)),
		})
	}
	return scans
}

// bloodPanels produces a draw every 14 days, staggered per athlete so
// the whole squad is never in the lab on the same morning.
func (p *Provider) bloodPanels(i int, id string, end time.Time) []blood.Panel {
	var panels []blood.Panel

	for d := p.days - 1; d >= 0; d-- {
		day := end.AddDate(0, 0, -d)
		if day.YearDay()%14 != (i*3)%14 {
			continue
		}
		rng := p.rng("panel", id, day.Format(dateLayout))
		depth := episodeDepth(i, day)

		cortisol := clamp(310+255*depth+rng.NormFloat64()*38, 150, 700)
		testo := clamp(23-6.5*depth+rng.NormFloat64()*2.2, 8, 38)
		ck := clamp(210+520*depth+rng.NormFloat64()*55, 60, 1400)
		crp := clamp(1.1+4.6*depth+rng.NormFloat64()*0.5, 0.2, 12)
		ferritin := clamp(p.ferritinBase(i)+rng.NormFloat64()*4, 8, 300)
		vitD := clamp(p.vitaminDBase(i)+rng.NormFloat64()*3, 20, 160)
		hb := clamp(14.1+float64(i%3)*0.4+rng.NormFloat64()*0.5, 11, 18.5)

		panels = append(panels, blood.Panel{
			AthleteID:         id,
			Date:              day.Format(dateLayout),
			CortisolNmolL:     ptr(round1(cortisol)),
			TestosteroneNmolL: ptr(round1(testo)),
			CKUL:              ptr(round1(ck)),
			CRPMgL:            ptr(round1(crp)),
			FerritinUgL:       ptr(round1(ferritin)),
			VitaminDNmolL:     ptr(round1(vitD)),
			HemoglobinGdL:     ptr(round1(hb)),
		})
	}
	return panels
}

// ferritinBase spreads the squad across the reference range and leaves
// the first athlete persistently low so the deficiency paths fire.
func (p *Provider) ferritinBase(i int) float64 {
	return 28 + float64((i*37)%90)
}

func (p *Provider) vitaminDBase(i int) float64 {
	return 35 + float64((i*23)%55)
}

func (p *Provider) baseBodyFat(i int) float64 {
	rng := p.rng("bodyfat", fmt.Sprintf("%d", i))
	return 9 + rng.Float64()*8
}

// geneticProfile assigns one genotype per panel gene. Profiles are
// stable per athlete and never vary by fetch date.
func (p *Provider) geneticProfile(i int, id string) genetics.Profile {
	rng := p.rng("genetics", fmt.Sprintf("%d", i))

	variants := make([]genetics.Variant, 0, len(genetics.Panel))
	for _, gene := range genetics.Panel {
		genotype := gene.Genotypes[rng.Intn(len(gene.Genotypes))]
		variants = append(variants, genetics.Variant{
			Gene:     gene.Gene,
			RSID:     gene.RSID,
			Genotype: genotype,
			Category: gene.Category,
			Effect:   gene.Effects[genotype],
		})
	}

	return genetics.Profile{
		AthleteID: id,
		TestDate:  geneticTestDate,
		Variants:  variants,
	}
}
