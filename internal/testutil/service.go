package testutil

import (
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/store"
)

// NewStoreWithTeam builds a memory store preloaded with the one-athlete
// fixture dataset, ready for app services to wrap.
func NewStoreWithTeam(athleteID, date string, windowDays int) *store.MemoryStore {
	ms := store.NewMemoryStore(windowDays)
	data := SampleTeamData(athleteID, date)
	ms.SetAthletes(data.Athletes)
	ms.SetSamples(data.Samples)
	ms.SetProfiles(data.Profiles)
	ms.SetBodyComp(data.BodyComp)
	ms.SetPanels(data.Panels)
	return ms
}
