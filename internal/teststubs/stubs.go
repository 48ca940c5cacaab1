package teststubs

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
)

// StubTeamProvider is a test double for providers.TeamProvider.
type StubTeamProvider struct {
	Data   providers.TeamData
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchTeamData returns configured data and error while tracking calls.
func (s *StubTeamProvider) FetchTeamData(ctx context.Context, date string) (providers.TeamData, error) {
	_ = ctx
	_ = date
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Data, s.Err
}

// StubAirProvider is a test double for providers.AirQualityProvider.
type StubAirProvider struct {
	Reading environment.AirQuality
	Err     error
	Calls   atomic.Int32
}

// FetchAirQuality returns the configured reading and error while tracking calls.
func (s *StubAirProvider) FetchAirQuality(ctx context.Context) (environment.AirQuality, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Reading, s.Err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Days    map[string]biometrics.TeamDay // keyed by date
	LoadErr error
}

// LoadDay returns the team day for the given date if present in the Days map.
func (s *StubSnapshotStore) LoadDay(date string) (biometrics.TeamDay, error) {
	if s.LoadErr != nil {
		return biometrics.TeamDay{}, s.LoadErr
	}
	if s.Days == nil {
		return biometrics.TeamDay{}, errors.New("snapshot not found")
	}
	day, ok := s.Days[date]
	if !ok {
		return biometrics.TeamDay{}, errors.New("snapshot not found")
	}
	return day, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter. The
// mutex matters: the poller goroutine may still be writing after Stop
// returns while the test reads back what was written.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	written map[string]biometrics.TeamDay // keyed by date
	Err     error
}

// WriteDaySnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteDaySnapshot(date string, snapshot biometrics.TeamDay) error {
	if w.Err != nil {
		return w.Err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written == nil {
		w.written = make(map[string]biometrics.TeamDay)
	}
	w.written[date] = snapshot
	return nil
}

// Snapshot returns the recorded snapshot for the date, if any.
func (w *StubSnapshotWriter) Snapshot(date string) (biometrics.TeamDay, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	snap, ok := w.written[date]
	return snap, ok
}
