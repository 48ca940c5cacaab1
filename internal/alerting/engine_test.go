package alerting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/alerts"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/metrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/store"
)

type fakeLog struct {
	inserted  []alerts.Alert
	open      []alerts.Alert
	insertErr error
}

func (f *fakeLog) Insert(_ context.Context, a alerts.Alert) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, a)
	return nil
}

func (f *fakeLog) ListOpen(context.Context) ([]alerts.Alert, error) {
	return f.open, nil
}

func newTestEngine(log *fakeLog, team TeamReader) *Engine {
	e := NewEngine(log, team, nil, nil)
	e.now = func() time.Time { return time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC) }
	var n int
	e.newID = func() string {
		n++
		return fmt.Sprintf("alert-%d", n)
	}
	return e
}

// suppressedTeam builds a store whose single athlete has HRV far below
// an established baseline.
func suppressedTeam(hrvToday float64) *store.MemoryStore {
	s := store.NewMemoryStore(90)
	s.SetAthletes([]athlete.Athlete{{ID: "ath-1", FirstName: "Thandi"}})

	samples := make([]biometrics.Sample, 0, 21)
	for i := 0; i < 20; i++ {
		hrv := 80.0
		rhr := 55.0
		sleep := 8.0
		samples = append(samples, biometrics.Sample{
			AthleteID:    "ath-1",
			Date:         fmt.Sprintf("2025-02-%02d", i+1),
			HRVms:        &hrv,
			RestingHRBpm: &rhr,
			SleepHours:   &sleep,
		})
	}
	rhr := 55.0
	sleep := 8.0
	samples = append(samples, biometrics.Sample{
		AthleteID:    "ath-1",
		Date:         "2025-03-10",
		HRVms:        &hrvToday,
		RestingHRBpm: &rhr,
		SleepHours:   &sleep,
	})
	s.SetSamples(samples)
	return s
}

func TestEvaluateRaisesHRVWarning(t *testing.T) {
	log := &fakeLog{}
	e := newTestEngine(log, suppressedTeam(56)) // 70% of baseline

	raised := e.Evaluate(context.Background(), "2025-03-10")

	if len(raised) != 1 {
		t.Fatalf("expected 1 alert, got %d: %+v", len(raised), raised)
	}
	a := raised[0]
	if a.Metric != "hrv_drop" {
		t.Fatalf("expected hrv_drop, got %s", a.Metric)
	}
	if a.Severity != alerts.SeverityWarning {
		t.Fatalf("expected warning, got %s", a.Severity)
	}
	if a.AthleteID != "ath-1" || a.Date != "2025-03-10" {
		t.Fatalf("unexpected alert %+v", a)
	}
	if len(log.inserted) != 1 {
		t.Fatalf("expected persistence, got %d inserts", len(log.inserted))
	}
}

func TestEvaluateDedupesSameDay(t *testing.T) {
	log := &fakeLog{}
	e := newTestEngine(log, suppressedTeam(56))

	first := e.Evaluate(context.Background(), "2025-03-10")
	second := e.Evaluate(context.Background(), "2025-03-10")

	if len(first) != 1 {
		t.Fatalf("expected 1 alert on first pass, got %d", len(first))
	}
	if len(second) != 0 {
		t.Fatalf("expected dedupe on second pass, got %d", len(second))
	}
}

func TestEvaluateEscalationRefires(t *testing.T) {
	log := &fakeLog{}
	e := newTestEngine(log, suppressedTeam(56)) // 70% of baseline

	if got := e.Evaluate(context.Background(), "2025-03-10"); len(got) != 1 {
		t.Fatalf("expected warning raised, got %d", len(got))
	}

	e.team = suppressedTeam(44) // 55% of baseline
	raised := e.Evaluate(context.Background(), "2025-03-10")
	if len(raised) != 1 {
		t.Fatalf("expected escalation to re-fire, got %d", len(raised))
	}
	if raised[0].Severity != alerts.SeverityCritical {
		t.Fatalf("expected critical, got %s", raised[0].Severity)
	}

	// A later downgrade back to warning must stay suppressed.
	e.team = suppressedTeam(56)
	if got := e.Evaluate(context.Background(), "2025-03-10"); len(got) != 0 {
		t.Fatalf("expected downgrade suppressed, got %d", len(got))
	}
}

func TestEvaluateNewDayRefires(t *testing.T) {
	log := &fakeLog{}
	e := newTestEngine(log, suppressedTeam(56))

	if got := e.Evaluate(context.Background(), "2025-03-10"); len(got) != 1 {
		t.Fatalf("expected alert on day one, got %d", len(got))
	}
	if got := e.Evaluate(context.Background(), "2025-03-11"); len(got) != 1 {
		t.Fatalf("expected alert on day two, got %d", len(got))
	}
}

func TestWarmStartSuppressesRefire(t *testing.T) {
	log := &fakeLog{
		open: []alerts.Alert{{
			ID:        "existing",
			AthleteID: "ath-1",
			Metric:    "hrv_drop",
			Severity:  alerts.SeverityWarning,
			Date:      "2025-03-10",
		}},
	}
	e := newTestEngine(log, suppressedTeam(56))
	if err := e.WarmStart(context.Background()); err != nil {
		t.Fatalf("warm start failed: %v", err)
	}

	raised := e.Evaluate(context.Background(), "2025-03-10")
	if len(raised) != 0 {
		t.Fatalf("expected warm-started dedupe, got %d", len(raised))
	}
}

func TestInsertFailureAllowsRetry(t *testing.T) {
	log := &fakeLog{insertErr: errors.New("disk full")}
	e := newTestEngine(log, suppressedTeam(56))

	if got := e.Evaluate(context.Background(), "2025-03-10"); len(got) != 0 {
		t.Fatalf("expected no alerts while persistence fails, got %d", len(got))
	}

	log.insertErr = nil
	if got := e.Evaluate(context.Background(), "2025-03-10"); len(got) != 1 {
		t.Fatalf("expected retry to raise, got %d", len(got))
	}
}

func TestEvaluateHealthyTeamRaisesNothing(t *testing.T) {
	log := &fakeLog{}
	e := newTestEngine(log, suppressedTeam(80)) // at baseline

	if got := e.Evaluate(context.Background(), "2025-03-10"); len(got) != 0 {
		t.Fatalf("expected no alerts, got %+v", got)
	}
}

func TestEvaluateRecordsSeverityMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	e := NewEngine(&fakeLog{}, suppressedTeam(56), nil, rec)
	e.now = func() time.Time { return time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC) }

	if got := e.Evaluate(context.Background(), "2025-03-10"); len(got) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(got))
	}
	if got := rec.AlertsRaised("warning"); got != 1 {
		t.Fatalf("expected 1 warning recorded, got %d", got)
	}
}
