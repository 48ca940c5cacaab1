package recommend

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
)

func ptr(v float64) *float64 { return &v }

func TestEmbeddedCatalogLoads(t *testing.T) {
	e, err := NewEngine("")
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	if len(e.Entries()) == 0 {
		t.Fatal("expected embedded entries")
	}
}

func TestEmbeddedCatalogTriggersResolve(t *testing.T) {
	known := map[string]bool{
		TriggerLowVitaminD:      true,
		TriggerLowFerritin:      true,
		TriggerCatabolicState:   true,
		TriggerMuscleDamage:     true,
		TriggerInflammation:     true,
		TriggerSleepDebt:        true,
		TriggerWorkloadSpike:    true,
		TriggerOvertraining:     true,
		TriggerRHRElevated:      true,
		TriggerSlowCaffeine:     true,
		TriggerFolateConversion: true,
		TriggerVDRReduced:       true,
		TriggerInflammationGene: true,
		TriggerSoftTissueRisk:   true,
		TriggerEveningType:      true,
	}

	e, err := NewEngine("")
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	for _, entry := range e.Entries() {
		for _, trigger := range entry.Triggers {
			if !known[trigger] {
				t.Fatalf("entry %s references unknown trigger %s", entry.ID, trigger)
			}
		}
	}
}

func TestRecommendVitaminD(t *testing.T) {
	e, err := NewEngine("")
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}

	got := e.Recommend(Input{Panel: &blood.Panel{VitaminDNmolL: ptr(32)}})
	if len(got) == 0 {
		t.Fatal("expected a recommendation")
	}
	if got[0].ID != "vitamin_d3" {
		t.Fatalf("expected vitamin_d3, got %s", got[0].ID)
	}
	if got[0].Triggers[0] != TriggerLowVitaminD {
		t.Fatalf("expected matched trigger recorded, got %v", got[0].Triggers)
	}
}

func TestRecommendGeneticTriggers(t *testing.T) {
	e, err := NewEngine("")
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}

	profile := &genetics.Profile{Variants: []genetics.Variant{
		{Gene: "CYP1A2", Genotype: "CC"},
		{Gene: "COL5A1", Genotype: "CC"},
	}}
	got := e.Recommend(Input{Profile: profile})

	ids := map[string]bool{}
	for _, r := range got {
		ids[r.ID] = true
	}
	if !ids["caffeine_cutoff"] {
		t.Fatalf("expected caffeine_cutoff, got %v", ids)
	}
	if !ids["collagen_vitc"] {
		t.Fatalf("expected collagen_vitc, got %v", ids)
	}
}

func TestRecommendSleepDebt(t *testing.T) {
	e, err := NewEngine("")
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}

	var samples []biometrics.Sample
	for i := 0; i < 7; i++ {
		samples = append(samples, biometrics.Sample{
			AthleteID:  "ath-1",
			Date:       fmt.Sprintf("2025-03-%02d", i+1),
			SleepHours: ptr(6.0),
		})
	}

	got := e.Recommend(Input{Samples: samples})
	ids := map[string]bool{}
	for _, r := range got {
		ids[r.ID] = true
	}
	// 14 hours of debt fires both the supplement and the routine.
	if !ids["sleep_routine"] || !ids["magnesium_glycinate"] {
		t.Fatalf("expected sleep entries, got %v", ids)
	}
}

func TestRecommendHealthyAthleteEmpty(t *testing.T) {
	e, err := NewEngine("")
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}

	if got := e.Recommend(Input{}); len(got) != 0 {
		t.Fatalf("expected no recommendations, got %v", got)
	}
}

func TestFileOverrideAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	override := `entries:
  - id: custom
    kind: supplement
    name: Custom entry
    guidance: take as directed
    rationale: test override
    triggers: [low_vitamin_d]
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatalf("write override failed: %v", err)
	}

	e, err := NewEngine(path)
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}
	if entries := e.Entries(); len(entries) != 1 || entries[0].ID != "custom" {
		t.Fatalf("expected override catalog, got %v", entries)
	}

	// Rewrite the file and reload.
	updated := `entries:
  - id: custom2
    kind: supplement
    name: Updated entry
    guidance: take as directed
    rationale: test reload
    triggers: [low_ferritin]
`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}
	if err := e.Reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if entries := e.Entries(); len(entries) != 1 || entries[0].ID != "custom2" {
		t.Fatalf("expected reloaded catalog, got %v", entries)
	}
}

func TestBrokenOverrideRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("entries: []"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := NewEngine(path); err == nil {
		t.Fatal("expected empty catalog to be rejected")
	}
}
