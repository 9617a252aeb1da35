package match

import "strings"

// StatusCategory is the normalized lifecycle category of a free-text ticket
// status. All status string comparison happens here, once, instead of being
// scattered through the fix-suggestion heuristics.
type StatusCategory int

const (
	StatusOther StatusCategory = iota
	StatusOpen
	StatusInProgress
	StatusResolved
)

// String returns the human-readable category name.
func (s StatusCategory) String() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusInProgress:
		return "In Progress"
	case StatusResolved:
		return "Resolved"
	default:
		return "Other"
	}
}

// NormalizeStatus maps a free-text status value to its category. Unknown
// statuses are Other.
func NormalizeStatus(status string) StatusCategory {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "closed", "resolved", "done", "successfully deployed":
		return StatusResolved
	case "in progress", "ready for qa":
		return StatusInProgress
	case "open":
		return StatusOpen
	default:
		return StatusOther
	}
}
