package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
)

func TestFSStoreLoadDay(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "days"), 0o755); err != nil {
		t.Fatalf("failed to create days dir: %v", err)
	}

	snap := simpleDay("2024-01-02")
	data, _ := json.Marshal(snap)
	if err := os.WriteFile(filepath.Join(dir, "days", "2024-01-02.json"), data, 0o644); err != nil {
		t.Fatalf("failed to write day snapshot: %v", err)
	}

	store := NewFSStore(dir)
	got, err := store.LoadDay("2024-01-02")
	if err != nil {
		t.Fatalf("failed to load day: %v", err)
	}
	if got.Date != "2024-01-02" || len(got.Samples) != 1 || got.Samples[0].AthleteID != "ath-1" {
		t.Fatalf("unexpected day snapshot: %+v", got)
	}
}

func TestFSStoreFillsMissingDate(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "days"), 0o755); err != nil {
		t.Fatalf("failed to create days dir: %v", err)
	}
	data, _ := json.Marshal(biometrics.TeamDay{Samples: []biometrics.Sample{{AthleteID: "ath-1"}}})
	if err := os.WriteFile(filepath.Join(dir, "days", "2024-01-03.json"), data, 0o644); err != nil {
		t.Fatalf("failed to write day snapshot: %v", err)
	}

	got, err := NewFSStore(dir).LoadDay("2024-01-03")
	if err != nil {
		t.Fatalf("failed to load day: %v", err)
	}
	if got.Date != "2024-01-03" {
		t.Fatalf("expected date backfilled from filename, got %q", got.Date)
	}
}

func TestFSStoreLoadRosterAndLabs(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)
	w.now = func() time.Time { return time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC) }
	if err := w.WriteRosterSnapshot("2024-01-02", RosterSnapshot{Athletes: []athlete.Athlete{{ID: "ath-1"}}}); err != nil {
		t.Fatalf("failed to write roster: %v", err)
	}
	if err := w.WriteLabsSnapshot("2024-01-02", LabsSnapshot{Panels: []blood.Panel{{AthleteID: "ath-1", Date: "2024-01-01"}}}); err != nil {
		t.Fatalf("failed to write labs: %v", err)
	}

	store := NewFSStore(dir)
	roster, err := store.LoadRoster("2024-01-02")
	if err != nil || len(roster.Athletes) != 1 {
		t.Fatalf("unexpected roster load: %+v err %v", roster, err)
	}
	labs, err := store.LoadLabs("2024-01-02")
	if err != nil || len(labs.Panels) != 1 {
		t.Fatalf("unexpected labs load: %+v err %v", labs, err)
	}

	m, err := store.Manifest()
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	if len(m.Roster.Dates) != 1 || len(m.Labs.Dates) != 1 {
		t.Fatalf("expected manifest to track roster and labs dates, got %+v", m)
	}
}

func TestFSStoreErrors(t *testing.T) {
	store := NewFSStore(t.TempDir())
	if _, err := store.LoadDay("2024-01-01"); err == nil {
		t.Fatalf("expected error for missing day snapshot")
	}
	if _, err := store.LoadDay(""); err == nil {
		t.Fatalf("expected error for empty date")
	}
	var nilStore *FSStore
	if _, err := nilStore.LoadDay("2024-01-01"); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if _, err := nilStore.Manifest(); err == nil {
		t.Fatalf("expected error for nil store manifest")
	}
}

func TestDecodeFileError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "days", "bad.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{bad json"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	store := NewFSStore(dir)
	if err := store.decodeFile(path, &biometrics.TeamDay{}); err == nil {
		t.Fatalf("expected decode error")
	}
}
