package blood

import "testing"

func ptr(v float64) *float64 { return &v }

func TestCortisolStatus(t *testing.T) {
	cases := []struct {
		value *float64
		want  MarkerStatus
	}{
		{nil, StatusUnknown},
		{ptr(100), StatusLow},
		{ptr(140), StatusNormal},
		{ptr(550), StatusNormal},
		{ptr(551), StatusHigh},
	}

	for _, tc := range cases {
		p := Panel{CortisolNmolL: tc.value}
		if got := p.CortisolStatus(); got != tc.want {
			t.Fatalf("value %v: expected %s, got %s", tc.value, tc.want, got)
		}
	}
}

func TestCKStatus(t *testing.T) {
	if got := (Panel{CKUL: ptr(480)}).CKStatus(); got != StatusNormal {
		t.Fatalf("expected normal, got %s", got)
	}
	if got := (Panel{CKUL: ptr(620)}).CKStatus(); got != StatusHigh {
		t.Fatalf("expected high, got %s", got)
	}
	if got := (Panel{}).CKStatus(); got != StatusUnknown {
		t.Fatalf("expected unknown, got %s", got)
	}
}

func TestCRPStatus(t *testing.T) {
	if got := (Panel{CRPMgL: ptr(2.1)}).CRPStatus(); got != StatusNormal {
		t.Fatalf("expected normal, got %s", got)
	}
	if got := (Panel{CRPMgL: ptr(7.4)}).CRPStatus(); got != StatusHigh {
		t.Fatalf("expected high, got %s", got)
	}
}

func TestLowOnlyMarkers(t *testing.T) {
	if got := (Panel{FerritinUgL: ptr(18)}).FerritinStatus(); got != StatusLow {
		t.Fatalf("expected low ferritin, got %s", got)
	}
	if got := (Panel{VitaminDNmolL: ptr(44)}).VitaminDStatus(); got != StatusLow {
		t.Fatalf("expected low vitamin d, got %s", got)
	}
	if got := (Panel{VitaminDNmolL: ptr(80)}).VitaminDStatus(); got != StatusNormal {
		t.Fatalf("expected normal vitamin d, got %s", got)
	}
}

func TestHemoglobinStatus(t *testing.T) {
	if got := (Panel{HemoglobinGdL: ptr(12.1)}).HemoglobinStatus(); got != StatusLow {
		t.Fatalf("expected low, got %s", got)
	}
	if got := (Panel{HemoglobinGdL: ptr(15.0)}).HemoglobinStatus(); got != StatusNormal {
		t.Fatalf("expected normal, got %s", got)
	}
}

func TestPanelCloneIsDeep(t *testing.T) {
	p := Panel{AthleteID: "ath-1", Date: "2025-03-01", CortisolNmolL: ptr(420), FerritinUgL: ptr(55)}
	c := p.Clone()

	*c.CortisolNmolL = 999
	if *p.CortisolNmolL != 420 {
		t.Fatalf("clone shares cortisol pointer, got %v", *p.CortisolNmolL)
	}
	if c.CKUL != nil {
		t.Fatal("expected nil markers to stay nil")
	}
}
