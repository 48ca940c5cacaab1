// Package blood defines blood panel results and per-marker reference
// range classification.
package blood

// Panel is one blood draw for an athlete. Markers absent from the draw
// are nil.
type Panel struct {
	AthleteID         string   `json:"athlete_id"`
	Date              string   `json:"date"`
	CortisolNmolL     *float64 `json:"cortisol_nmol_l,omitempty"`
	TestosteroneNmolL *float64 `json:"testosterone_nmol_l,omitempty"`
	CKUL              *float64 `json:"ck_u_l,omitempty"`
	CRPMgL            *float64 `json:"crp_mg_l,omitempty"`
	FerritinUgL       *float64 `json:"ferritin_ug_l,omitempty"`
	VitaminDNmolL     *float64 `json:"vitamin_d_nmol_l,omitempty"`
	HemoglobinGdL     *float64 `json:"hemoglobin_g_dl,omitempty"`
}

// Clone returns a deep copy of the panel so callers can hand out data
// without exposing shared marker pointers.
func (p Panel) Clone() Panel {
	out := p
	out.CortisolNmolL = clonePtr(p.CortisolNmolL)
	out.TestosteroneNmolL = clonePtr(p.TestosteroneNmolL)
	out.CKUL = clonePtr(p.CKUL)
	out.CRPMgL = clonePtr(p.CRPMgL)
	out.FerritinUgL = clonePtr(p.FerritinUgL)
	out.VitaminDNmolL = clonePtr(p.VitaminDNmolL)
	out.HemoglobinGdL = clonePtr(p.HemoglobinGdL)
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Reference range bounds for the markers the dashboard classifies.
const (
	CortisolLowNmolL  = 140.0
	CortisolHighNmolL = 550.0

	TestosteroneLowNmolL  = 10.0
	TestosteroneHighNmolL = 35.0

	CKHighUL         = 500.0
	CKCriticalUL     = 1000.0
	CRPHighMgL       = 5.0
	FerritinLowUgL   = 30.0
	VitaminDLowNmolL = 50.0

	HemoglobinLowGdL  = 13.0
	HemoglobinHighGdL = 17.5
)

// MarkerStatus reports how a marker value sits against its reference
// range.
type MarkerStatus string

const (
	StatusLow     MarkerStatus = "low"
	StatusNormal  MarkerStatus = "normal"
	StatusHigh    MarkerStatus = "high"
	StatusUnknown MarkerStatus = "unknown"
)

// CortisolStatus classifies the panel's cortisol against the resting
// reference range.
func (p Panel) CortisolStatus() MarkerStatus {
	return classify(p.CortisolNmolL, CortisolLowNmolL, CortisolHighNmolL)
}

// TestosteroneStatus classifies total testosterone against the lab's
// reference range.
func (p Panel) TestosteroneStatus() MarkerStatus {
	return classify(p.TestosteroneNmolL, TestosteroneLowNmolL, TestosteroneHighNmolL)
}

// CKStatus flags muscle damage range creatine kinase. CK has no low
// band.
func (p Panel) CKStatus() MarkerStatus {
	if p.CKUL == nil {
		return StatusUnknown
	}
	if *p.CKUL > CKHighUL {
		return StatusHigh
	}
	return StatusNormal
}

// CRPStatus flags systemic inflammation range CRP. CRP has no low band.
func (p Panel) CRPStatus() MarkerStatus {
	if p.CRPMgL == nil {
		return StatusUnknown
	}
	if *p.CRPMgL > CRPHighMgL {
		return StatusHigh
	}
	return StatusNormal
}

// FerritinStatus flags iron stores below the endurance athlete floor.
func (p Panel) FerritinStatus() MarkerStatus {
	if p.FerritinUgL == nil {
		return StatusUnknown
	}
	if *p.FerritinUgL < FerritinLowUgL {
		return StatusLow
	}
	return StatusNormal
}

// VitaminDStatus flags deficient vitamin D.
func (p Panel) VitaminDStatus() MarkerStatus {
	if p.VitaminDNmolL == nil {
		return StatusUnknown
	}
	if *p.VitaminDNmolL < VitaminDLowNmolL {
		return StatusLow
	}
	return StatusNormal
}

// HemoglobinStatus classifies hemoglobin against the adult reference
// range.
func (p Panel) HemoglobinStatus() MarkerStatus {
	return classify(p.HemoglobinGdL, HemoglobinLowGdL, HemoglobinHighGdL)
}

func classify(v *float64, low, high float64) MarkerStatus {
	if v == nil {
		return StatusUnknown
	}
	switch {
	case *v < low:
		return StatusLow
	case *v > high:
		return StatusHigh
	default:
		return StatusNormal
	}
}
