package alerts

import "testing"

func TestSeverityRank(t *testing.T) {
	if SeverityCritical.Rank() <= SeverityWarning.Rank() {
		t.Fatal("critical should outrank warning")
	}
	if SeverityWarning.Rank() <= SeverityInfo.Rank() {
		t.Fatal("warning should outrank info")
	}
	if Severity("bogus").Rank() >= SeverityInfo.Rank() {
		t.Fatal("unknown severity should rank below info")
	}
}

func TestDedupeKey(t *testing.T) {
	a := Alert{AthleteID: "ath-7", Metric: "hrv_drop", Date: "2025-03-10"}
	want := "ath-7|hrv_drop|2025-03-10"
	if got := a.DedupeKey(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDedupeKeyDistinguishesBuckets(t *testing.T) {
	base := Alert{AthleteID: "ath-7", Metric: "hrv_drop", Date: "2025-03-10"}
	otherMetric := Alert{AthleteID: "ath-7", Metric: "high_cortisol", Date: "2025-03-10"}
	otherDay := Alert{AthleteID: "ath-7", Metric: "hrv_drop", Date: "2025-03-11"}

	if base.DedupeKey() == otherMetric.DedupeKey() {
		t.Fatal("metric should change the key")
	}
	if base.DedupeKey() == otherDay.DedupeKey() {
		t.Fatal("date should change the key")
	}
}
