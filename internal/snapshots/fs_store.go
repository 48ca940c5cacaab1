package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

// Store defines how day snapshots are loaded.
type Store interface {
	LoadDay(date string) (biometrics.TeamDay, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadDay reads a team-day snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/days/{date}.json with a TeamDay payload.
func (s *FSStore) LoadDay(date string) (biometrics.TeamDay, error) {
	var payload biometrics.TeamDay
	if err := s.load(kindDays, date, &payload); err != nil {
		return biometrics.TeamDay{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// LoadRoster reads a roster snapshot for the given date from disk.
func (s *FSStore) LoadRoster(date string) (RosterSnapshot, error) {
	var payload RosterSnapshot
	if err := s.load(kindRoster, date, &payload); err != nil {
		return RosterSnapshot{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// LoadLabs reads a labs snapshot for the given date from disk.
func (s *FSStore) LoadLabs(date string) (LabsSnapshot, error) {
	var payload LabsSnapshot
	if err := s.load(kindLabs, date, &payload); err != nil {
		return LabsSnapshot{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// Manifest reads the snapshot manifest, so callers can discover which
// dates are available for restore.
func (s *FSStore) Manifest() (Manifest, error) {
	if s == nil {
		return Manifest{}, errors.New("snapshot store not configured")
	}
	return readManifest(filepath.Join(s.basePath, "manifest.json"), 0)
}

func (s *FSStore) load(kind snapshotKind, date string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if date == "" {
		return errors.New("snapshot date required")
	}
	path := filepath.Join(s.basePath, string(kind), fmt.Sprintf("%s.json", date))
	return s.decodeFile(path, payload)
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
