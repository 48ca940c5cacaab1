package providers

import "testing"

func TestResolveTimezoneValid(t *testing.T) {
	loc := ResolveTimezone("Africa/Johannesburg")
	if loc == nil || loc.String() != "Africa/Johannesburg" {
		t.Fatalf("expected Africa/Johannesburg, got %v", loc)
	}
}

func TestResolveTimezoneInvalid(t *testing.T) {
	if loc := ResolveTimezone("Not/AZone"); loc != nil {
		t.Fatalf("expected nil for invalid timezone, got %v", loc)
	}
}

func TestResolveTimezoneEmpty(t *testing.T) {
	if loc := ResolveTimezone(""); loc != nil {
		t.Fatalf("expected nil for empty timezone")
	}
}
