package synthetic

import (
	"fmt"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
)

type squadMember struct {
	first    string
	last     string
	position string
	heightCm float64
	weightKg float64
}

// squad is the base roster. Indexes matter: the fatigue episodes and
// lab baselines key off the athlete's position in this list.
var squad = []squadMember{
	{"Thabo", "Mokoena", "Scrum-half", 176, 82},
	{"Pieter", "van der Merwe", "Lock", 200, 112},
	{"Sipho", "Ndlovu", "Wing", 183, 90},
	{"Johan", "Botha", "Prop", 188, 118},
	{"Lwazi", "Dlamini", "Flanker", 190, 104},
	{"Ruan", "Pretorius", "Fly-half", 180, 88},
	{"Tumelo", "Khumalo", "Centre", 186, 98},
	{"Daniel", "Fourie", "Hooker", 183, 108},
	{"Sibusiso", "Zulu", "Number 8", 193, 110},
	{"Heinrich", "Meyer", "Fullback", 185, 92},
	{"Andile", "Mthembu", "Wing", 181, 88},
	{"Christiaan", "de Villiers", "Lock", 198, 115},
}

// fatigueAthletes carry recurring overload episodes so the readiness,
// injury risk, and alerting paths always have something to flag.
var fatigueAthletes = map[int]bool{2: true, 7: true}

func (p *Provider) buildRoster() []athlete.Athlete {
	roster := make([]athlete.Athlete, 0, p.athletes)
	for i := 0; i < p.athletes; i++ {
		member := memberAt(i)
		rng := p.rng("athlete", fmt.Sprintf("%d", i))
		roster = append(roster, athlete.Athlete{
			ID:        fmt.Sprintf("sam-%03d", i+1),
			Provider:  "synthetic",
			FirstName: member.first,
			LastName:  member.last,
			Sport:     "rugby",
			Position:  member.position,
			Squad:     "senior",
			Age:       19 + rng.Intn(15),
			HeightCm:  member.heightCm,
			WeightKg:  member.weightKg,
		})
	}
	return roster
}

func memberAt(i int) squadMember {
	if i < len(squad) {
		return squad[i]
	}
	positions := []string{"Prop", "Lock", "Flanker", "Centre", "Wing"}
	return squadMember{
		first:    "Squad",
		last:     fmt.Sprintf("Player %d", i+1),
		position: positions[i%len(positions)],
		heightCm: 180 + float64(i%5)*4,
		weightKg: 90 + float64(i%7)*4,
	}
}

// baselines are the per-athlete resting values daily noise moves
// around. They come from the athlete sub-seed so the roster size never
// reshuffles existing athletes.
type baselines struct {
	hrv     float64
	rhr     float64
	sleep   float64
	quality float64
	spo2    float64
	load    float64
}

func (p *Provider) baselinesFor(i int) baselines {
	rng := p.rng("baseline", fmt.Sprintf("%d", i))
	return baselines{
		hrv:     55 + rng.Float64()*40,
		rhr:     45 + rng.Float64()*15,
		sleep:   7 + rng.Float64()*1.5,
		quality: 70 + rng.Float64()*15,
		spo2:    96.5 + rng.Float64()*1.5,
		load:    320 + rng.Float64()*160,
	}
}
