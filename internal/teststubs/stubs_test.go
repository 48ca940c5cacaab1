package teststubs

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
)

func TestStubTeamProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubTeamProvider{Data: providers.TeamData{}, Err: err}
	if _, got := p.FetchTeamData(context.Background(), "2024-01-01"); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubAirProviderTracksCalls(t *testing.T) {
	p := &StubAirProvider{}
	if _, err := p.FetchAirQuality(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubSnapshotStore(t *testing.T) {
	date := "2024-01-01"
	s := &StubSnapshotStore{
		Days: map[string]biometrics.TeamDay{
			date: {Date: date, Samples: []biometrics.Sample{{AthleteID: "ath-1", Date: date}}},
		},
	}

	day, err := s.LoadDay(date)
	if err != nil || day.Date != date {
		t.Fatalf("expected loaded day, got %v err %v", day, err)
	}

	if _, err := s.LoadDay("missing"); err == nil {
		t.Fatalf("expected error for missing date")
	}
}

func TestStubSnapshotWriter(t *testing.T) {
	date := "2024-01-01"
	w := &StubSnapshotWriter{}
	err := w.WriteDaySnapshot(date, biometrics.TeamDay{Date: date})
	if err != nil {
		t.Fatalf("expected write success, got %v", err)
	}
	if snap, ok := w.Snapshot(date); !ok || snap.Date != date {
		t.Fatalf("expected recorded snapshot for %s, got %+v ok=%v", date, snap, ok)
	}

	w.Err = errors.New("write error")
	err = w.WriteDaySnapshot("2024-01-02", biometrics.TeamDay{Date: "2024-01-02"})
	if err == nil {
		t.Fatalf("expected write error")
	}
	if _, ok := w.Snapshot("2024-01-02"); ok {
		t.Fatalf("expected failed write not to be recorded")
	}
}

func TestStubSnapshotWriterConcurrentWrites(t *testing.T) {
	w := &StubSnapshotWriter{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = w.WriteDaySnapshot("2024-01-01", biometrics.TeamDay{Date: "2024-01-01"})
		}()
	}
	wg.Wait()

	if _, ok := w.Snapshot("2024-01-01"); !ok {
		t.Fatalf("expected snapshot recorded after concurrent writes")
	}
}
