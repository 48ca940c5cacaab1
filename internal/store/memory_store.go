// Package store keeps the authoritative in-memory team state the API
// serves from.
package store

import (
	"sort"
	"sync"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/bodycomp"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
)

// DefaultWindowDays caps each athlete's rolling biometric window.
const DefaultWindowDays = 90

// MemoryStore keeps a thread-safe snapshot of the team in memory:
// roster, rolling biometric windows, genetic profiles, body composition
// history, blood panels, and the latest air quality reading.
type MemoryStore struct {
	mu         sync.RWMutex
	windowDays int

	athletes map[string]athlete.Athlete
	order    []string

	samples  map[string][]biometrics.Sample
	profiles map[string]genetics.Profile
	bodycomp map[string][]bodycomp.Measurement
	panels   map[string][]blood.Panel

	air *environment.AirQuality
}

// NewMemoryStore constructs an empty MemoryStore with the given rolling
// window. Non-positive windows fall back to the default.
func NewMemoryStore(windowDays int) *MemoryStore {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &MemoryStore{
		windowDays: windowDays,
		athletes:   make(map[string]athlete.Athlete),
		samples:    make(map[string][]biometrics.Sample),
		profiles:   make(map[string]genetics.Profile),
		bodycomp:   make(map[string][]bodycomp.Measurement),
		panels:     make(map[string][]blood.Panel),
	}
}

// WindowDays reports the rolling window cap.
func (s *MemoryStore) WindowDays() int {
	return s.windowDays
}

// SetAthletes replaces the roster, preserving the given order.
func (s *MemoryStore) SetAthletes(roster []athlete.Athlete) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.athletes = make(map[string]athlete.Athlete, len(roster))
	s.order = make([]string, 0, len(roster))
	for _, a := range roster {
		if _, seen := s.athletes[a.ID]; !seen {
			s.order = append(s.order, a.ID)
		}
		s.athletes[a.ID] = a
	}
}

// ListAthletes returns a copy of the roster in roster order.
func (s *MemoryStore) ListAthletes() []athlete.Athlete {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]athlete.Athlete, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.athletes[id])
	}
	return result
}

// GetAthlete retrieves a roster entry by ID.
func (s *MemoryStore) GetAthlete(id string) (athlete.Athlete, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.athletes[id]
	return a, ok
}

// SetSamples replaces every athlete's biometric window with the new
// snapshot, sorting by date and trimming to the rolling window.
func (s *MemoryStore) SetSamples(samples []biometrics.Sample) {
	grouped := make(map[string][]biometrics.Sample)
	for _, sample := range samples {
		grouped[sample.AthleteID] = append(grouped[sample.AthleteID], sample.Clone())
	}
	for id := range grouped {
		w := grouped[id]
		sort.Slice(w, func(i, j int) bool { return w[i].Date < w[j].Date })
		if len(w) > s.windowDays {
			w = w[len(w)-s.windowDays:]
		}
		grouped[id] = w
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = grouped
}

// Samples returns up to days of an athlete's window, oldest first.
// days <= 0 returns the whole window.
func (s *MemoryStore) Samples(athleteID string, days int) []biometrics.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := s.samples[athleteID]
	if days > 0 && len(window) > days {
		window = window[len(window)-days:]
	}
	result := make([]biometrics.Sample, len(window))
	for i, sample := range window {
		result[i] = sample.Clone()
	}
	return result
}

// LatestSample returns the newest sample in an athlete's window.
func (s *MemoryStore) LatestSample(athleteID string) (biometrics.Sample, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := s.samples[athleteID]
	if len(window) == 0 {
		return biometrics.Sample{}, false
	}
	return window[len(window)-1].Clone(), true
}

// SamplesOn returns every athlete's sample for one date, in roster
// order.
func (s *MemoryStore) SamplesOn(date string) []biometrics.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []biometrics.Sample
	for _, id := range s.order {
		for _, sample := range s.samples[id] {
			if sample.Date == date {
				result = append(result, sample.Clone())
			}
		}
	}
	return result
}

// SetProfiles replaces the genetic profiles.
func (s *MemoryStore) SetProfiles(profiles []genetics.Profile) {
	next := make(map[string]genetics.Profile, len(profiles))
	for _, p := range profiles {
		next[p.AthleteID] = cloneProfile(p)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = next
}

// Profile retrieves an athlete's genetic profile.
func (s *MemoryStore) Profile(athleteID string) (genetics.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[athleteID]
	if !ok {
		return genetics.Profile{}, false
	}
	return cloneProfile(p), true
}

// SetBodyComp replaces the body composition history, sorted by date.
func (s *MemoryStore) SetBodyComp(measurements []bodycomp.Measurement) {
	grouped := make(map[string][]bodycomp.Measurement)
	for _, m := range measurements {
		grouped[m.AthleteID] = append(grouped[m.AthleteID], m.Clone())
	}
	for id := range grouped {
		h := grouped[id]
		sort.Slice(h, func(i, j int) bool { return h[i].Date < h[j].Date })
		grouped[id] = h
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodycomp = grouped
}

// BodyComp returns up to days of an athlete's scans, oldest first.
// days <= 0 returns the whole history.
func (s *MemoryStore) BodyComp(athleteID string, days int) []bodycomp.Measurement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.bodycomp[athleteID]
	if days > 0 && len(history) > days {
		history = history[len(history)-days:]
	}
	result := make([]bodycomp.Measurement, len(history))
	for i, m := range history {
		result[i] = m.Clone()
	}
	return result
}

// LatestBodyComp returns an athlete's newest scan.
func (s *MemoryStore) LatestBodyComp(athleteID string) (bodycomp.Measurement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.bodycomp[athleteID]
	if len(history) == 0 {
		return bodycomp.Measurement{}, false
	}
	return history[len(history)-1].Clone(), true
}

// SetPanels replaces the blood panel history, sorted by date.
func (s *MemoryStore) SetPanels(panels []blood.Panel) {
	grouped := make(map[string][]blood.Panel)
	for _, p := range panels {
		grouped[p.AthleteID] = append(grouped[p.AthleteID], p.Clone())
	}
	for id := range grouped {
		h := grouped[id]
		sort.Slice(h, func(i, j int) bool { return h[i].Date < h[j].Date })
		grouped[id] = h
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.panels = grouped
}

// Panels returns an athlete's blood panels, oldest first.
func (s *MemoryStore) Panels(athleteID string) []blood.Panel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.panels[athleteID]
	result := make([]blood.Panel, len(history))
	for i, p := range history {
		result[i] = p.Clone()
	}
	return result
}

// LatestPanel returns an athlete's newest blood panel.
func (s *MemoryStore) LatestPanel(athleteID string) (blood.Panel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.panels[athleteID]
	if len(history) == 0 {
		return blood.Panel{}, false
	}
	return history[len(history)-1].Clone(), true
}

// SetAirQuality replaces the latest air quality reading.
func (s *MemoryStore) SetAirQuality(aq environment.AirQuality) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reading := aq
	s.air = &reading
}

// AirQuality returns the latest air quality reading, if one has been
// fetched.
func (s *MemoryStore) AirQuality() (environment.AirQuality, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.air == nil {
		return environment.AirQuality{}, false
	}
	return *s.air, true
}

func cloneProfile(p genetics.Profile) genetics.Profile {
	out := p
	out.Variants = make([]genetics.Variant, len(p.Variants))
	copy(out.Variants, p.Variants)
	return out
}
