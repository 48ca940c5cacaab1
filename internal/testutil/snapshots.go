package testutil

import (
	"testing"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteDaySnapshot writes a one-athlete day snapshot for the date.
func WriteDaySnapshot(t *testing.T, w *snapshots.Writer, athleteID, date string) {
	t.Helper()
	if err := w.WriteDaySnapshot(date, SampleTeamDay(athleteID, date)); err != nil {
		t.Fatalf("failed to write day snapshot %s: %v", date, err)
	}
}

// DaySnapshotPath returns the expected file path for a day snapshot date.
func DaySnapshotPath(w *snapshots.Writer, date string) string {
	return snapshots.DaySnapshotPath(w.BasePath(), date)
}
