// Package athletes exposes per-athlete read operations over the memory
// store: roster lookups, metric windows, and the derived scores the
// dashboard renders for a single athlete.
package athletes

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/analytics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/bodycomp"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
)

// DefaultWindowDays is the biometric window returned when the request
// does not name one.
const DefaultWindowDays = 30

// Muscle load cutpoints for the digital-twin region map.
const (
	muscleLoadedMin     = 40.0
	muscleOverloadedMin = 70.0
)

// Store is the read surface the service needs from the memory store.
type Store interface {
	ListAthletes() []athlete.Athlete
	GetAthlete(id string) (athlete.Athlete, bool)
	Samples(athleteID string, days int) []biometrics.Sample
	LatestSample(athleteID string) (biometrics.Sample, bool)
	Profile(athleteID string) (genetics.Profile, bool)
	BodyComp(athleteID string, days int) []bodycomp.Measurement
	LatestBodyComp(athleteID string) (bodycomp.Measurement, bool)
	Panels(athleteID string) []blood.Panel
	LatestPanel(athleteID string) (blood.Panel, bool)
	WindowDays() int
}

// Service answers per-athlete queries from store state.
type Service struct {
	store Store
}

// NewService constructs a Service over the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns the current roster.
func (s *Service) List() []athlete.Athlete {
	return s.store.ListAthletes()
}

// Get returns a single athlete if present.
func (s *Service) Get(id string) (athlete.Athlete, bool) {
	return s.store.GetAthlete(id)
}

// ClampDays normalizes a requested window: zero falls back to the
// default, anything beyond the stored window is clamped to it.
func (s *Service) ClampDays(days int) int {
	if days <= 0 {
		days = DefaultWindowDays
	}
	if max := s.store.WindowDays(); max > 0 && days > max {
		days = max
	}
	return days
}

// Window returns the athlete's biometric samples for the last days
// days, oldest first. ok is false for an unknown athlete.
func (s *Service) Window(id string, days int) ([]biometrics.Sample, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return nil, false
	}
	return s.store.Samples(id, s.ClampDays(days)), true
}

// Genetics returns the athlete's genetic profile. ok is false for an
// unknown athlete; a known athlete without a test yields an empty
// profile carrying the athlete id.
func (s *Service) Genetics(id string) (genetics.Profile, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return genetics.Profile{}, false
	}
	profile, ok := s.store.Profile(id)
	if !ok {
		return genetics.Profile{AthleteID: id}, true
	}
	return profile, true
}

// BodyComp returns the athlete's body composition history for the last
// days days. ok is false for an unknown athlete.
func (s *Service) BodyComp(id string, days int) ([]bodycomp.Measurement, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return nil, false
	}
	return s.store.BodyComp(id, s.ClampDays(days)), true
}

// Panels returns the athlete's blood panels, oldest first. ok is false
// for an unknown athlete.
func (s *Service) Panels(id string) ([]blood.Panel, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return nil, false
	}
	return s.store.Panels(id), true
}

// ScoreSummary bundles the derived scores shown on the profile header.
type ScoreSummary struct {
	Readiness  *analytics.ReadinessResult `json:"readiness,omitempty"`
	Recovery   *analytics.RecoveryResult  `json:"recovery,omitempty"`
	InjuryRisk analytics.InjuryRiskResult `json:"injury_risk"`
	Hormonal   *analytics.HormonalResult  `json:"hormonal_balance,omitempty"`
}

// ProfileView is the athlete profile payload: identity, the latest
// reading of each collection, and the derived score summary.
type ProfileView struct {
	Athlete        athlete.Athlete      `json:"athlete"`
	LatestSample   *biometrics.Sample   `json:"latest_sample,omitempty"`
	LatestBodyComp *bodycomp.Measurement `json:"latest_body_composition,omitempty"`
	LatestPanel    *blood.Panel         `json:"latest_blood_panel,omitempty"`
	Scores         ScoreSummary         `json:"scores"`
}

// Profile assembles the profile view for an athlete. ok is false for an
// unknown athlete.
func (s *Service) Profile(id string) (ProfileView, bool) {
	a, ok := s.store.GetAthlete(id)
	if !ok {
		return ProfileView{}, false
	}

	view := ProfileView{Athlete: a}
	if sample, ok := s.store.LatestSample(id); ok {
		view.LatestSample = &sample
	}
	if bc, ok := s.store.LatestBodyComp(id); ok {
		view.LatestBodyComp = &bc
	}

	samples := s.store.Samples(id, s.store.WindowDays())
	if res, ok := analytics.Readiness(samples); ok {
		view.Scores.Readiness = &res
	}
	if res, ok := analytics.Recovery(samples); ok {
		view.Scores.Recovery = &res
	}

	var panel *blood.Panel
	if p, ok := s.store.LatestPanel(id); ok {
		view.LatestPanel = &p
		panel = &p
		if res, ok := analytics.HormonalBalance(p); ok {
			view.Scores.Hormonal = &res
		}
	}
	var profile *genetics.Profile
	if gp, ok := s.store.Profile(id); ok {
		profile = &gp
	}
	view.Scores.InjuryRisk = analytics.InjuryRisk(samples, panel, profile)

	return view, true
}

// Readiness scores the athlete's full window. The second return is
// false for an unknown athlete; scoreOK is false when the window holds
// nothing scorable.
func (s *Service) Readiness(id string) (analytics.ReadinessResult, bool, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return analytics.ReadinessResult{}, false, false
	}
	res, scoreOK := analytics.Readiness(s.store.Samples(id, s.store.WindowDays()))
	return res, true, scoreOK
}

// Recovery scores the athlete's full window, same contract as Readiness.
func (s *Service) Recovery(id string) (analytics.RecoveryResult, bool, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return analytics.RecoveryResult{}, false, false
	}
	res, scoreOK := analytics.Recovery(s.store.Samples(id, s.store.WindowDays()))
	return res, true, scoreOK
}

// InjuryRisk scores the athlete's injury risk. ok is false for an
// unknown athlete; a known athlete with no data scores zero.
func (s *Service) InjuryRisk(id string) (analytics.InjuryRiskResult, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return analytics.InjuryRiskResult{}, false
	}
	samples := s.store.Samples(id, s.store.WindowDays())
	var panel *blood.Panel
	if p, ok := s.store.LatestPanel(id); ok {
		panel = &p
	}
	var profile *genetics.Profile
	if gp, ok := s.store.Profile(id); ok {
		profile = &gp
	}
	return analytics.InjuryRisk(samples, panel, profile), true
}

// Sleep summarises the athlete's sleep over the last days nights. ok is
// false for an unknown athlete; summaryOK is false with no sleep data.
func (s *Service) Sleep(id string, days int) (analytics.SleepSummary, bool, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return analytics.SleepSummary{}, false, false
	}
	res, summaryOK := analytics.SleepMetrics(s.store.Samples(id, s.ClampDays(days)), days)
	return res, true, summaryOK
}

// BodyLoadView is the latest muscle-load region map with a status label
// per region, driving the digital-twin avatar shading.
type BodyLoadView struct {
	AthleteID string             `json:"athlete_id"`
	Date      string             `json:"date"`
	Regions   map[string]float64 `json:"regions"`
	Status    map[string]string  `json:"status"`
}

// BodyLoad returns the latest region load map. ok is false for an
// unknown athlete; a known athlete without readings gets empty maps.
func (s *Service) BodyLoad(id string) (BodyLoadView, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return BodyLoadView{}, false
	}
	view := BodyLoadView{
		AthleteID: id,
		Regions:   map[string]float64{},
		Status:    map[string]string{},
	}
	sample, ok := s.store.LatestSample(id)
	if !ok {
		return view, true
	}
	view.Date = sample.Date
	for region, load := range sample.MuscleLoad {
		view.Regions[region] = load
		view.Status[region] = muscleLoadStatus(load)
	}
	return view, true
}

func muscleLoadStatus(load float64) string {
	switch {
	case load >= muscleOverloadedMin:
		return "overloaded"
	case load >= muscleLoadedMin:
		return "loaded"
	default:
		return "fresh"
	}
}

// PredictionView carries the trend outputs for the predictive screen:
// fitted metric trends, the projected readiness a week out, the current
// workload ratio, and the overtraining flag.
type PredictionView struct {
	AthleteID      string                       `json:"athlete_id"`
	ReadinessTrend *analytics.Trend             `json:"readiness_trend,omitempty"`
	ProjectedScore *float64                     `json:"projected_readiness,omitempty"`
	ACWR           *float64                     `json:"acwr,omitempty"`
	Overtraining   analytics.OvertrainingResult `json:"overtraining"`
}

// Predictions builds the predictive-analytics view. ok is false for an
// unknown athlete.
func (s *Service) Predictions(id string) (PredictionView, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return PredictionView{}, false
	}
	samples := s.store.Samples(id, s.store.WindowDays())
	view := PredictionView{
		AthleteID:    id,
		Overtraining: analytics.Overtraining(samples),
	}

	if ratio, ok := analytics.ACWR(samples); ok {
		view.ACWR = &ratio
	}

	scores := dailyReadiness(samples, analytics.OvertrainingWindowDays)
	if trend, ok := analytics.LinearTrend(scores); ok {
		view.ReadinessTrend = &trend
		if current, ok := analytics.Readiness(samples); ok {
			projected := analytics.ProjectScore(current.Score, trend.Slope)
			view.ProjectedScore = &projected
		}
	}
	return view, true
}

// dailyReadiness scores each of the last days days using only the
// history available up to that day, producing the series the trend is
// fitted over.
func dailyReadiness(samples []biometrics.Sample, days int) []float64 {
	start := len(samples) - days
	if start < 0 {
		start = 0
	}
	var scores []float64
	for i := start; i < len(samples); i++ {
		if res, ok := analytics.Readiness(samples[:i+1]); ok {
			scores = append(scores, res.Score)
		}
	}
	return scores
}
