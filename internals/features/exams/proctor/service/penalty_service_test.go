package service

import "testing"

func TestPenaltyFor(t *testing.T) {
	cases := []struct {
		severity string
		want     int
	}{
		{SeverityLow, 2},
		{SeverityMedium, 5},
		{SeverityHigh, 10},
		{SeverityCritical, 20},
		{"bogus", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := PenaltyFor(tc.severity); got != tc.want {
			t.Errorf("PenaltyFor(%q) = %d, want %d", tc.severity, got, tc.want)
		}
	}
}

func TestApplyPenaltyClampsAtZero(t *testing.T) {
	cases := []struct {
		score   int
		penalty int
		want    int
	}{
		{100, 5, 95},
		{10, 10, 0},
		{3, 20, 0},
		{0, 2, 0},
		{50, 0, 50},
	}
	for _, tc := range cases {
		if got := ApplyPenalty(tc.score, tc.penalty); got != tc.want {
			t.Errorf("ApplyPenalty(%d, %d) = %d, want %d", tc.score, tc.penalty, got, tc.want)
		}
	}
}

func TestApplyEvent(t *testing.T) {
	cases := []struct {
		name         string
		score        int
		switches     int
		eventType    string
		severity     string
		wantScore    int
		wantSwitches int
		wantPenalty  int
	}{
		{"tab switch bumps counter", 100, 0, EventTabSwitch, SeverityMedium, 95, 1, 5},
		{"second tab switch", 95, 1, EventTabSwitch, SeverityMedium, 90, 2, 5},
		{"face loss leaves counter alone", 100, 3, "face_not_visible", SeverityHigh, 90, 3, 10},
		{"copy attempt leaves counter alone", 80, 0, "copy_attempt", SeverityLow, 78, 0, 2},
		{"critical clamps at zero", 15, 2, "screen_share", SeverityCritical, 0, 2, 20},
		{"unknown severity is free", 50, 0, "noise", "bogus", 50, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score, switches, penalty := ApplyEvent(tc.score, tc.switches, tc.eventType, tc.severity)
			if score != tc.wantScore {
				t.Errorf("score = %d, want %d", score, tc.wantScore)
			}
			if switches != tc.wantSwitches {
				t.Errorf("tab switches = %d, want %d", switches, tc.wantSwitches)
			}
			if penalty != tc.wantPenalty {
				t.Errorf("penalty = %d, want %d", penalty, tc.wantPenalty)
			}
		})
	}
}

func TestIsKnownSeverity(t *testing.T) {
	for _, s := range []string{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical} {
		if !IsKnownSeverity(s) {
			t.Errorf("IsKnownSeverity(%q) = false, want true", s)
		}
	}
	if IsKnownSeverity("LOW") {
		t.Error("severities are lowercase only")
	}
}
