// Package classify derives triage severity and priority for hazard reports
// from keywords in the citizen's description. The heuristics are intentionally
// simple substring matches; reports carry no structured hazard taxonomy.
package classify

import "strings"

// Severity grades a report for map display.
type Severity string

// Priority grades a report for the admin triage queue.
type Priority string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"

	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var (
	severityHigh   = []string{"dangerous", "emergency", "severe"}
	severityMedium = []string{"warning", "caution", "moderate"}

	priorityCritical = []string{"emergency", "dangerous", "critical"}
	priorityHigh     = []string{"severe", "warning"}
	priorityMedium   = []string{"moderate", "caution"}
)

// SeverityOf returns the display severity for a report description.
func SeverityOf(description string) Severity {
	desc := strings.ToLower(description)
	switch {
	case containsAny(desc, severityHigh):
		return SeverityHigh
	case containsAny(desc, severityMedium):
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// PriorityOf returns the triage priority for a report description.
func PriorityOf(description string) Priority {
	desc := strings.ToLower(description)
	switch {
	case containsAny(desc, priorityCritical):
		return PriorityCritical
	case containsAny(desc, priorityHigh):
		return PriorityHigh
	case containsAny(desc, priorityMedium):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ValidPriority reports whether s names a known priority level.
func ValidPriority(s string) bool {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
