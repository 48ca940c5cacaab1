package recommend

import (
	"fmt"
	"sync"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/analytics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
)

// Trigger names produced by state derivation and referenced by catalog
// entries.
const (
	TriggerLowVitaminD      = "low_vitamin_d"
	TriggerLowFerritin      = "low_ferritin"
	TriggerCatabolicState   = "catabolic_state"
	TriggerMuscleDamage     = "muscle_damage"
	TriggerInflammation     = "inflammation"
	TriggerSleepDebt        = "sleep_debt"
	TriggerWorkloadSpike    = "workload_spike"
	TriggerOvertraining     = "overtraining"
	TriggerRHRElevated      = "rhr_elevated"
	TriggerSlowCaffeine     = "slow_caffeine"
	TriggerFolateConversion = "folate_conversion"
	TriggerVDRReduced       = "vdr_reduced"
	TriggerInflammationGene = "inflammation_prone"
	TriggerSoftTissueRisk   = "soft_tissue_risk"
	TriggerEveningType      = "evening_chronotype"
)

// Sleep debt above this many hours over the trailing week fires the
// sleep trigger.
const sleepDebtTriggerHours = 5.0

// Input is the athlete state the engine derives triggers from.
type Input struct {
	Samples []biometrics.Sample
	Panel   *blood.Panel
	Profile *genetics.Profile
}

// Recommendation is one catalog entry matched for an athlete.
type Recommendation struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Name      string   `json:"name"`
	Guidance  string   `json:"guidance"`
	Rationale string   `json:"rationale"`
	Triggers  []string `json:"triggers"`
}

// Engine matches derived triggers against the loaded catalog.
type Engine struct {
	mu      sync.RWMutex
	catalog Catalog
	path    string
}

// NewEngine loads the embedded catalog, then applies the on-disk
// override when path is set.
func NewEngine(path string) (*Engine, error) {
	catalog, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	e := &Engine{catalog: catalog, path: path}
	if path != "" {
		if err := e.Reload(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Reload re-reads the on-disk catalog override. Without an override
// path it restores the embedded catalog.
func (e *Engine) Reload() error {
	var (
		catalog Catalog
		err     error
	)
	if e.path == "" {
		catalog, err = loadEmbedded()
	} else {
		catalog, err = loadFile(e.path)
	}
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.catalog = catalog
	e.mu.Unlock()
	return nil
}

// Entries returns the loaded catalog entries.
func (e *Engine) Entries() []Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Entry, len(e.catalog.Entries))
	copy(out, e.catalog.Entries)
	return out
}

// Recommend derives triggers from the athlete's state and returns the
// catalog entries they fire, in catalog order.
func (e *Engine) Recommend(in Input) []Recommendation {
	fired := deriveTriggers(in)
	if len(fired) == 0 {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []Recommendation
	for _, entry := range e.catalog.Entries {
		var matched []string
		for _, trigger := range entry.Triggers {
			if fired[trigger] {
				matched = append(matched, trigger)
			}
		}
		if len(matched) == 0 {
			continue
		}
		out = append(out, Recommendation{
			ID:        entry.ID,
			Kind:      entry.Kind,
			Name:      entry.Name,
			Guidance:  entry.Guidance,
			Rationale: entry.Rationale,
			Triggers:  matched,
		})
	}
	return out
}

// deriveTriggers inspects biometric, blood, and genetic state and
// reports which triggers fire.
func deriveTriggers(in Input) map[string]bool {
	fired := make(map[string]bool)

	if in.Panel != nil {
		p := *in.Panel
		if p.VitaminDStatus() == blood.StatusLow {
			fired[TriggerLowVitaminD] = true
		}
		if p.FerritinStatus() == blood.StatusLow {
			fired[TriggerLowFerritin] = true
		}
		if p.CKStatus() == blood.StatusHigh {
			fired[TriggerMuscleDamage] = true
		}
		if p.CRPStatus() == blood.StatusHigh {
			fired[TriggerInflammation] = true
		}
		if result, ok := analytics.HormonalBalance(p); ok && result.State == analytics.HormonalCatabolic {
			fired[TriggerCatabolicState] = true
		}
	}

	if len(in.Samples) > 0 {
		if summary, ok := analytics.SleepMetrics(in.Samples, analytics.SleepDebtWindowDays); ok && summary.DebtHours > sleepDebtTriggerHours {
			fired[TriggerSleepDebt] = true
		}
		if ratio, ok := analytics.ACWR(in.Samples); ok && ratio >= analytics.ACWRElevated {
			fired[TriggerWorkloadSpike] = true
		}
		if analytics.Overtraining(in.Samples).Flagged {
			fired[TriggerOvertraining] = true
		}

		day := in.Samples[len(in.Samples)-1]
		baseline := analytics.ComputeBaseline(in.Samples[:len(in.Samples)-1])
		if day.RestingHRBpm != nil && baseline.OK && baseline.RHRBpm > 0 &&
			*day.RestingHRBpm >= baseline.RHRBpm+analytics.RHRRiskDeltaBpm {
			fired[TriggerRHRElevated] = true
		}
	}

	if in.Profile != nil {
		p := *in.Profile
		if p.Genotype("CYP1A2") == "CC" {
			fired[TriggerSlowCaffeine] = true
		}
		if p.Genotype("MTHFR") == "TT" {
			fired[TriggerFolateConversion] = true
		}
		if p.Genotype("VDR") == "ff" {
			fired[TriggerVDRReduced] = true
		}
		if p.Genotype("IL6") == "GG" || p.Genotype("TNF") == "AA" {
			fired[TriggerInflammationGene] = true
		}
		if p.HasRiskGenotype() {
			fired[TriggerSoftTissueRisk] = true
		}
		if p.Genotype("CLOCK") == "CC" {
			fired[TriggerEveningType] = true
		}
	}

	return fired
}
