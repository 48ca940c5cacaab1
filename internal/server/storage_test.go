package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/testutil"
)

func TestBuildStorageDefaults(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	storage, err := buildStorage(testConfig(t), logger)
	if err != nil {
		t.Fatalf("failed to build storage: %v", err)
	}
	defer func() {
		_ = storage.alerts.Close()
		_ = storage.cacheClose()
	}()

	if storage.alerts == nil || storage.cache == nil || storage.catalog == nil {
		t.Fatal("expected all storage components")
	}
}

func TestBuildStorageBadCatalogFallsBackToEmbedded(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	cfg := testConfig(t)
	broken := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(broken, []byte("supplements: ["), 0o644); err != nil {
		t.Fatalf("failed to write broken catalog: %v", err)
	}
	cfg.Storage.CatalogPath = broken

	storage, err := buildStorage(cfg, logger)
	if err != nil {
		t.Fatalf("expected embedded fallback, got %v", err)
	}
	defer func() {
		_ = storage.alerts.Close()
		_ = storage.cacheClose()
	}()

	if storage.catalog == nil {
		t.Fatal("expected the embedded catalog")
	}
	if buf.Len() == 0 {
		t.Fatal("expected a warning about the broken override")
	}
}

func TestBuildStorageEmptyAlertPathFails(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	cfg := testConfig(t)
	cfg.Storage.AlertsDBPath = ""

	if _, err := buildStorage(cfg, logger); err == nil {
		t.Fatal("expected an error for a blank alert log path")
	}
}
