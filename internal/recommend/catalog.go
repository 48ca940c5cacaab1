// Package recommend maps athlete state to supplement and nutrition
// advice through a YAML catalog. A default catalog is baked into the
// binary; deployments can override it on disk and reload it at runtime.
package recommend

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Entry is one catalog item matched against fired triggers.
type Entry struct {
	ID        string   `yaml:"id" json:"id"`
	Kind      string   `yaml:"kind" json:"kind"`
	Name      string   `yaml:"name" json:"name"`
	Guidance  string   `yaml:"guidance" json:"guidance"`
	Rationale string   `yaml:"rationale" json:"rationale"`
	Triggers  []string `yaml:"triggers" json:"triggers"`
}

// Catalog is the full advice catalog.
type Catalog struct {
	Entries []Entry `yaml:"entries"`
}

// loadEmbedded parses the catalog baked into the binary.
func loadEmbedded() (Catalog, error) {
	return parseCatalog(embeddedCatalog)
}

// loadFile parses a catalog override from disk.
func loadFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return parseCatalog(raw)
}

func parseCatalog(raw []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Entries) == 0 {
		return Catalog{}, fmt.Errorf("catalog has no entries")
	}
	for i, e := range c.Entries {
		if e.ID == "" || e.Name == "" {
			return Catalog{}, fmt.Errorf("catalog entry %d missing id or name", i)
		}
		if len(e.Triggers) == 0 {
			return Catalog{}, fmt.Errorf("catalog entry %s has no triggers", e.ID)
		}
	}
	return c, nil
}
