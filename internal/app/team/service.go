// Package team computes the squad-wide overview: per-athlete derived
// scores, open alert counts, and team averages.
package team

import (
	"context"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/analytics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/alerts"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
)

// Store is the read surface the overview needs.
type Store interface {
	ListAthletes() []athlete.Athlete
	Samples(athleteID string, days int) []biometrics.Sample
	LatestPanel(athleteID string) (blood.Panel, bool)
	Profile(athleteID string) (genetics.Profile, bool)
	AirQuality() (environment.AirQuality, bool)
	WindowDays() int
}

// AlertReader supplies open alerts for the per-athlete counts.
type AlertReader interface {
	ListOpen(ctx context.Context) ([]alerts.Alert, error)
}

// Service assembles team-level views.
type Service struct {
	store  Store
	alerts AlertReader
}

// NewService constructs a Service. alerts may be nil; counts then stay
// zero.
func NewService(store Store, alerts AlertReader) *Service {
	return &Service{store: store, alerts: alerts}
}

// AthleteStatus is one roster row of the overview.
type AthleteStatus struct {
	AthleteID  string   `json:"athlete_id"`
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	Readiness  *float64 `json:"readiness,omitempty"`
	Recovery   *float64 `json:"recovery,omitempty"`
	RiskScore  float64  `json:"injury_risk"`
	RiskBand   string   `json:"risk_band"`
	OpenAlerts int      `json:"open_alerts"`
}

// Averages are team means over athletes with a scorable value.
type Averages struct {
	Readiness  float64 `json:"readiness"`
	Recovery   float64 `json:"recovery"`
	InjuryRisk float64 `json:"injury_risk"`
}

// Overview is the team dashboard payload.
type Overview struct {
	Date       string                  `json:"date"`
	Athletes   []AthleteStatus         `json:"athletes"`
	Averages   Averages                `json:"averages"`
	AirQuality *environment.AirQuality `json:"air_quality,omitempty"`
}

// Current builds the overview from live store state.
func (s *Service) Current(ctx context.Context, date string) Overview {
	counts := s.openAlertCounts(ctx)
	overview := Overview{Date: date}
	if aq, ok := s.store.AirQuality(); ok {
		overview.AirQuality = &aq
	}

	window := s.store.WindowDays()
	for _, a := range s.store.ListAthletes() {
		samples := s.store.Samples(a.ID, window)
		row := s.statusRow(a, samples)
		row.OpenAlerts = counts[a.ID]
		overview.Athletes = append(overview.Athletes, row)
	}
	overview.Averages = computeAverages(overview.Athletes)
	return overview
}

// ForDay builds the overview from a persisted day snapshot. Scores fall
// back to absolute bands since a single day carries no baseline
// history, and open-alert counts are omitted: the log reflects the
// present, not the requested date.
func (s *Service) ForDay(day biometrics.TeamDay) Overview {
	overview := Overview{Date: day.Date, AirQuality: day.AirQuality}
	for _, a := range s.store.ListAthletes() {
		row := s.statusRow(a, day.ForAthlete(a.ID))
		overview.Athletes = append(overview.Athletes, row)
	}
	overview.Averages = computeAverages(overview.Athletes)
	return overview
}

// AirQuality returns the latest stored reading.
func (s *Service) AirQuality() (environment.AirQuality, bool) {
	return s.store.AirQuality()
}

func (s *Service) statusRow(a athlete.Athlete, samples []biometrics.Sample) AthleteStatus {
	row := AthleteStatus{
		AthleteID: a.ID,
		Name:      a.FullName(),
		Position:  a.Position,
	}
	if res, ok := analytics.Readiness(samples); ok {
		score := res.Score
		row.Readiness = &score
	}
	if res, ok := analytics.Recovery(samples); ok {
		score := res.Score
		row.Recovery = &score
	}

	var panel *blood.Panel
	if p, ok := s.store.LatestPanel(a.ID); ok {
		panel = &p
	}
	var profile *genetics.Profile
	if gp, ok := s.store.Profile(a.ID); ok {
		profile = &gp
	}
	risk := analytics.InjuryRisk(samples, panel, profile)
	row.RiskScore = risk.Score
	row.RiskBand = risk.Band
	return row
}

func (s *Service) openAlertCounts(ctx context.Context) map[string]int {
	counts := map[string]int{}
	if s.alerts == nil {
		return counts
	}
	open, err := s.alerts.ListOpen(ctx)
	if err != nil {
		return counts
	}
	for _, a := range open {
		counts[a.AthleteID]++
	}
	return counts
}

func computeAverages(rows []AthleteStatus) Averages {
	var avg Averages
	var readinessN, recoveryN, riskN int
	for _, row := range rows {
		if row.Readiness != nil {
			avg.Readiness += *row.Readiness
			readinessN++
		}
		if row.Recovery != nil {
			avg.Recovery += *row.Recovery
			recoveryN++
		}
		avg.InjuryRisk += row.RiskScore
		riskN++
	}
	if readinessN > 0 {
		avg.Readiness /= float64(readinessN)
	}
	if recoveryN > 0 {
		avg.Recovery /= float64(recoveryN)
	}
	if riskN > 0 {
		avg.InjuryRisk /= float64(riskN)
	}
	return avg
}
