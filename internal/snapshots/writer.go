package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/bodycomp"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/timeutil"
)

type snapshotKind string

const (
	kindDays   snapshotKind = "days"
	kindRoster snapshotKind = "roster"
	kindLabs   snapshotKind = "labs"
)

// RosterSnapshot captures the squad roster plus genetic profiles, which
// change rarely and refresh on a slow cadence.
type RosterSnapshot struct {
	Date     string             `json:"date"`
	Athletes []athlete.Athlete  `json:"athletes"`
	Profiles []genetics.Profile `json:"profiles,omitempty"`
}

// LabsSnapshot captures body composition scans and blood panels, which
// accumulate on a faster cadence than the roster.
type LabsSnapshot struct {
	Date     string                 `json:"date"`
	BodyComp []bodycomp.Measurement `json:"body_comp,omitempty"`
	Panels   []blood.Panel          `json:"panels,omitempty"`
}

// Writer persists snapshots and manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

func (w *Writer) snapshotPath(kind snapshotKind, date string) string {
	switch kind {
	case kindDays:
		return DaySnapshotPath(w.basePath, date)
	default:
		return filepath.Join(w.basePath, string(kind), fmt.Sprintf("%s.json", date))
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteDaySnapshot writes the team-day snapshot for the given date (YYYY-MM-DD)
// and prunes old snapshots.
func (w *Writer) WriteDaySnapshot(date string, snapshot biometrics.TeamDay) error {
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	sort.Slice(snapshot.Samples, func(i, j int) bool {
		return snapshot.Samples[i].AthleteID < snapshot.Samples[j].AthleteID
	})
	return w.writeSnapshot(kindDays, date, snapshot)
}

// WriteRosterSnapshot writes the roster snapshot for the given date.
func (w *Writer) WriteRosterSnapshot(date string, snapshot RosterSnapshot) error {
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	sort.Slice(snapshot.Athletes, func(i, j int) bool {
		return snapshot.Athletes[i].ID < snapshot.Athletes[j].ID
	})
	sort.Slice(snapshot.Profiles, func(i, j int) bool {
		return snapshot.Profiles[i].AthleteID < snapshot.Profiles[j].AthleteID
	})
	return w.writeSnapshot(kindRoster, date, snapshot)
}

// WriteLabsSnapshot writes the labs snapshot for the given date.
func (w *Writer) WriteLabsSnapshot(date string, snapshot LabsSnapshot) error {
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	sort.Slice(snapshot.BodyComp, func(i, j int) bool {
		a, b := snapshot.BodyComp[i], snapshot.BodyComp[j]
		if a.AthleteID != b.AthleteID {
			return a.AthleteID < b.AthleteID
		}
		return a.Date < b.Date
	})
	sort.Slice(snapshot.Panels, func(i, j int) bool {
		a, b := snapshot.Panels[i], snapshot.Panels[j]
		if a.AthleteID != b.AthleteID {
			return a.AthleteID < b.AthleteID
		}
		return a.Date < b.Date
	})
	return w.writeSnapshot(kindLabs, date, snapshot)
}

func (w *Writer) writeSnapshot(kind snapshotKind, date string, payload any) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}

	target := w.snapshotPath(kind, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	tmp := target + ".tmp"
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(kind, date)
	}

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(kind, date)
}

func (w *Writer) updateManifest(kind snapshotKind, date string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	now := w.now().UTC()

	dates, err := w.listDates(kind)
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned, err := w.pruneOldSnapshots(kind, dates)
	if err != nil {
		return err
	}

	switch kind {
	case kindDays:
		m.Days.Dates = pruned
		m.Days.LastRefreshed = now
		m.Retention.Days = w.retentionDays
	case kindRoster:
		m.Roster.Dates = pruned
		m.Roster.LastRefreshed = now
	case kindLabs:
		m.Labs.Dates = pruned
		m.Labs.LastRefreshed = now
	}

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates(kind snapshotKind) ([]string, error) {
	dir := filepath.Join(w.basePath, string(kind))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var (
		dates []string
		seen  = make(map[string]struct{})
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		base := name[:len(name)-len(".json")]
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		dates = append(dates, base)
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(kind snapshotKind, dates []string) ([]string, error) {
	now := w.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			path := w.snapshotPath(kind, d)
			_ = os.Remove(path)
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}
