// Package genetics defines athlete genetic profiles and the gene panel
// metadata used to interpret them.
package genetics

// Category groups genes by what they inform on the dashboard.
type Category string

const (
	CategoryPower     Category = "power"
	CategoryEndurance Category = "endurance"
	CategoryInjury    Category = "injury"
	CategoryRecovery  Category = "recovery"
	CategoryNutrition Category = "nutrition"
)

// Variant is a single genotyped marker in an athlete's profile.
type Variant struct {
	Gene     string   `json:"gene"`
	RSID     string   `json:"rsid,omitempty"`
	Genotype string   `json:"genotype"`
	Category Category `json:"category"`
	Effect   string   `json:"effect,omitempty"`
}

// Profile is the full genotyped panel for one athlete.
type Profile struct {
	AthleteID string    `json:"athlete_id"`
	TestDate  string    `json:"test_date"`
	Variants  []Variant `json:"variants"`
}

// Variant returns the genotype entry for a gene, matching by symbol.
func (p Profile) Variant(gene string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Gene == gene {
			return v, true
		}
	}
	return Variant{}, false
}

// Genotype is a convenience lookup returning just the genotype string,
// empty when the gene was not tested.
func (p Profile) Genotype(gene string) string {
	v, ok := p.Variant(gene)
	if !ok {
		return ""
	}
	return v.Genotype
}

// HasRiskGenotype reports whether the profile carries a genotype tied to
// elevated soft tissue injury risk.
func (p Profile) HasRiskGenotype() bool {
	if p.Genotype("COL5A1") == "CC" {
		return true
	}
	if p.Genotype("COL1A1") == "TT" {
		return true
	}
	return false
}

// ByCategory returns the profile's variants for one category, in panel
// order.
func (p Profile) ByCategory(c Category) []Variant {
	var out []Variant
	for _, v := range p.Variants {
		if v.Category == c {
			out = append(out, v)
		}
	}
	return out
}

// PanelGene describes one gene in the supported test panel. Effects map
// genotype to the interpretation shown on the dashboard.
type PanelGene struct {
	Gene      string
	RSID      string
	Category  Category
	Genotypes []string
	Effects   map[string]string
}

// Panel lists the genes the synthetic provider genotypes and the
// interpretation engine understands.
var Panel = []PanelGene{
	{
		Gene: "ACTN3", RSID: "rs1815739", Category: CategoryPower,
		Genotypes: []string{"RR", "RX", "XX"},
		Effects: map[string]string{
			"RR": "fast-twitch dominant, sprint and power oriented",
			"RX": "mixed fibre profile",
			"XX": "endurance oriented, reduced explosive capacity",
		},
	},
	{
		Gene: "ACE", RSID: "rs4646994", Category: CategoryEndurance,
		Genotypes: []string{"II", "ID", "DD"},
		Effects: map[string]string{
			"II": "endurance advantage, efficient oxygen use",
			"ID": "balanced endurance and power response",
			"DD": "power response, faster strength gains",
		},
	},
	{
		Gene: "PPARGC1A", RSID: "rs8192678", Category: CategoryEndurance,
		Genotypes: []string{"GG", "GA", "AA"},
		Effects: map[string]string{
			"GG": "strong mitochondrial response to aerobic training",
			"GA": "moderate aerobic trainability",
			"AA": "reduced aerobic trainability",
		},
	},
	{
		Gene: "COL5A1", RSID: "rs12722", Category: CategoryInjury,
		Genotypes: []string{"CC", "TC", "TT"},
		Effects: map[string]string{
			"CC": "elevated tendinopathy risk",
			"TC": "intermediate connective tissue risk",
			"TT": "typical connective tissue risk",
		},
	},
	{
		Gene: "COL1A1", RSID: "rs1800012", Category: CategoryInjury,
		Genotypes: []string{"GG", "GT", "TT"},
		Effects: map[string]string{
			"GG": "typical ligament integrity",
			"GT": "intermediate ligament risk",
			"TT": "elevated ligament rupture risk",
		},
	},
	{
		Gene: "IL6", RSID: "rs1800795", Category: CategoryRecovery,
		Genotypes: []string{"GG", "GC", "CC"},
		Effects: map[string]string{
			"GG": "stronger inflammatory response, slower recovery",
			"GC": "moderate inflammatory response",
			"CC": "attenuated inflammatory response",
		},
	},
	{
		Gene: "TNF", RSID: "rs1800629", Category: CategoryRecovery,
		Genotypes: []string{"GG", "GA", "AA"},
		Effects: map[string]string{
			"GG": "typical inflammatory signalling",
			"GA": "elevated baseline inflammation",
			"AA": "high baseline inflammation, extend recovery windows",
		},
	},
	{
		Gene: "CLOCK", RSID: "rs1801260", Category: CategoryRecovery,
		Genotypes: []string{"TT", "TC", "CC"},
		Effects: map[string]string{
			"TT": "morning chronotype, schedule hard sessions early",
			"TC": "intermediate chronotype",
			"CC": "evening chronotype, delayed sleep phase",
		},
	},
	{
		Gene: "CYP1A2", RSID: "rs762551", Category: CategoryNutrition,
		Genotypes: []string{"AA", "AC", "CC"},
		Effects: map[string]string{
			"AA": "fast caffeine metaboliser",
			"AC": "intermediate caffeine metaboliser",
			"CC": "slow caffeine metaboliser, avoid late caffeine",
		},
	},
	{
		Gene: "VDR", RSID: "rs2228570", Category: CategoryNutrition,
		Genotypes: []string{"FF", "Ff", "ff"},
		Effects: map[string]string{
			"FF": "typical vitamin D receptor activity",
			"Ff": "intermediate receptor activity",
			"ff": "reduced receptor activity, monitor vitamin D closely",
		},
	},
	{
		Gene: "MTHFR", RSID: "rs1801133", Category: CategoryNutrition,
		Genotypes: []string{"CC", "CT", "TT"},
		Effects: map[string]string{
			"CC": "typical folate metabolism",
			"CT": "mildly reduced folate conversion",
			"TT": "reduced folate conversion, prefer methylated folate",
		},
	},
	{
		Gene: "FTO", RSID: "rs9939609", Category: CategoryNutrition,
		Genotypes: []string{"TT", "TA", "AA"},
		Effects: map[string]string{
			"TT": "typical satiety signalling",
			"TA": "mildly elevated appetite drive",
			"AA": "elevated appetite drive, structure meal timing",
		},
	},
}

// PanelGeneByName returns the panel metadata for a gene symbol.
func PanelGeneByName(gene string) (PanelGene, bool) {
	for _, g := range Panel {
		if g.Gene == gene {
			return g, true
		}
	}
	return PanelGene{}, false
}
