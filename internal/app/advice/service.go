// Package advice connects athlete state to the recommendation engine.
package advice

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/recommend"
)

// Store is the read surface recommendations derive from.
type Store interface {
	GetAthlete(id string) (athlete.Athlete, bool)
	Samples(athleteID string, days int) []biometrics.Sample
	LatestPanel(athleteID string) (blood.Panel, bool)
	Profile(athleteID string) (genetics.Profile, bool)
	WindowDays() int
}

// Recommender matches derived triggers against the catalog.
type Recommender interface {
	Recommend(in recommend.Input) []recommend.Recommendation
}

// Service builds recommendation inputs from store state.
type Service struct {
	store  Store
	engine Recommender
}

// NewService constructs a Service.
func NewService(store Store, engine Recommender) *Service {
	return &Service{store: store, engine: engine}
}

// ForAthlete returns the matched recommendations. ok is false for an
// unknown athlete; a known athlete may legitimately match nothing.
func (s *Service) ForAthlete(id string) ([]recommend.Recommendation, bool) {
	if _, ok := s.store.GetAthlete(id); !ok {
		return nil, false
	}
	in := recommend.Input{
		Samples: s.store.Samples(id, s.store.WindowDays()),
	}
	if p, ok := s.store.LatestPanel(id); ok {
		in.Panel = &p
	}
	if gp, ok := s.store.Profile(id); ok {
		in.Profile = &gp
	}
	return s.engine.Recommend(in), true
}
