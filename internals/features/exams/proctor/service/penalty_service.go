package service

// Violation severities and their security-score penalties.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// EventTabSwitch additionally bumps the attempt's tab-switch counter.
const EventTabSwitch = "tab_switch"

var severityPenalties = map[string]int{
	SeverityLow:      2,
	SeverityMedium:   5,
	SeverityHigh:     10,
	SeverityCritical: 20,
}

// PenaltyFor returns the score deduction for a severity, 0 for unknown ones.
func PenaltyFor(severity string) int {
	return severityPenalties[severity]
}

// ApplyPenalty deducts a penalty from a security score, clamped at 0.
func ApplyPenalty(score, penalty int) int {
	score -= penalty
	if score < 0 {
		return 0
	}
	return score
}

// IsKnownSeverity reports whether severity is one of the accepted levels.
func IsKnownSeverity(severity string) bool {
	_, ok := severityPenalties[severity]
	return ok
}

// ApplyEvent folds one violation into the attempt's counters: the severity
// penalty comes off the security score (floored at 0) and tab_switch events
// bump the switch counter by exactly one.
func ApplyEvent(score, tabSwitches int, eventType, severity string) (newScore, newTabSwitches, penalty int) {
	penalty = PenaltyFor(severity)
	newScore = ApplyPenalty(score, penalty)
	newTabSwitches = tabSwitches
	if eventType == EventTabSwitch {
		newTabSwitches++
	}
	return newScore, newTabSwitches, penalty
}
