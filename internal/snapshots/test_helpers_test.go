package snapshots

import (
	"os"
	"path/filepath"
	"testing"

	"log/slog"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
)

func simpleDay(date string) biometrics.TeamDay {
	hrv := 72.0
	return biometrics.TeamDay{
		Date: date,
		Samples: []biometrics.Sample{
			{AthleteID: "ath-1", Date: date, HRVms: &hrv},
		},
	}
}

func writeDay(t *testing.T, w *Writer, date string, snap biometrics.TeamDay) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	if err := w.WriteDaySnapshot(date, snap); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

func writeSimpleDay(t *testing.T, w *Writer, date string) {
	t.Helper()
	writeDay(t, w, date, simpleDay(date))
}

func requireDayExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil when asserting snapshot for %s", date)
	}
	path := filepath.Join(w.BasePath(), "days", date+".json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

// testLogger returns a debug-level logger writing to stdout.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
