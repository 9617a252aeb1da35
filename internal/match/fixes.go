package match

import (
	"strings"

	"deja/internal/jira"
)

// FixSuggestion is the per-result enrichment: whether a matched ticket
// carries a reusable fix, the extracted solution/workaround/root-cause text,
// and a rough applicability estimate. It never affects ranking or inclusion.
type FixSuggestion struct {
	HasFix            bool    `json:"has_fix"`
	FixType           string  `json:"fix_type,omitempty"`
	SuggestedSolution string  `json:"suggested_solution,omitempty"`
	Workaround        string  `json:"workaround,omitempty"`
	RootCause         string  `json:"root_cause,omitempty"`
	Applicable        bool    `json:"applicable"`
	Confidence        float64 `json:"confidence"`
}

// Keyword groups scanned in a resolved ticket's description. Within a group
// the first keyword present wins the context window.
var fixPatternGroups = []struct {
	name     string
	keywords []string
}{
	{"configuration", []string{"config", "setting", "parameter", "environment variable", "env var"}},
	{"code_change", []string{"code", "fix", "patch", "update", "modification", "change"}},
	{"workaround", []string{"workaround", "temporary", "interim", "bypass", "alternative"}},
	{"root_cause", []string{"root cause", "cause", "reason", "due to", "because"}},
	{"solution", []string{"solution", "resolution", "fix", "resolve", "address"}},
}

// Technology keywords whose presence in both tickets marks a fix applicable.
var sharedTechKeywords = []string{
	"dialoggpt", "chunks", "searchai", "orchestration", "embedding", "vector", "generation",
}

// Problem phrasing compared between candidate and target; two or more shared
// phrases mark a fix applicable.
var problemPatterns = []string{
	"not getting", "not generated", "failed", "error", "intermittent",
	"timeout", "slow", "hanging", "broken", "not working",
}

// workaroundMarkers flag an unresolved ticket as carrying an interim fix.
var workaroundMarkers = []string{"workaround", "temporary", "interim", "bypass"}

// contextRadius is the number of characters kept on each side of a matched
// fix keyword.
const contextRadius = 100

// ExtractFixSuggestion inspects a matched candidate for resolution or
// workaround text the target could reuse.
//
// Resolved candidates always have a fix; their descriptions are scanned for
// the fix pattern groups and confidence is 0.9 when the fix looks applicable
// to the target, 0.5 otherwise. Open or in-progress candidates only count
// when their description mentions an interim fix, at confidence 0.6.
func ExtractFixSuggestion(candidate, target jira.Ticket) FixSuggestion {
	var fix FixSuggestion

	desc := strings.ToLower(candidate.Description)

	switch NormalizeStatus(candidate.Status) {
	case StatusResolved:
		fix.HasFix = true
		fix.FixType = "resolved"

		for _, group := range fixPatternGroups {
			for _, keyword := range group.keywords {
				if !strings.Contains(desc, keyword) {
					continue
				}
				window := contextWindow(desc, keyword)
				switch group.name {
				case "solution":
					fix.SuggestedSolution = window
				case "workaround":
					fix.Workaround = window
				case "root_cause":
					fix.RootCause = window
				}
				break
			}
		}

		fix.Applicable = applicable(candidate, target)
		fix.Confidence = 0.5
		if fix.Applicable {
			fix.Confidence = 0.9
		}

	case StatusOpen, StatusInProgress:
		for _, marker := range workaroundMarkers {
			if strings.Contains(desc, marker) {
				fix.HasFix = true
				fix.FixType = "workaround"
				fix.Workaround = contextWindow(desc, "workaround")
				fix.Applicable = applicable(candidate, target)
				fix.Confidence = 0.6
				break
			}
		}
	}

	return fix
}

// contextWindow extracts ±contextRadius characters around the first
// occurrence of keyword, with whitespace collapsed.
func contextWindow(lowerText, keyword string) string {
	pos := strings.Index(lowerText, keyword)
	if pos == -1 {
		return ""
	}
	start := pos - contextRadius
	if start < 0 {
		start = 0
	}
	end := pos + len(keyword) + contextRadius
	if end > len(lowerText) {
		end = len(lowerText)
	}
	return strings.Join(strings.Fields(lowerText[start:end]), " ")
}

// applicable reports whether a candidate's fix plausibly transfers to the
// target: the tickets share a technology keyword, or at least two problem
// patterns.
func applicable(candidate, target jira.Ticket) bool {
	candText := strings.ToLower(candidate.Summary + " " + candidate.Description)
	targetText := strings.ToLower(target.Summary + " " + target.Description)

	for _, kw := range sharedTechKeywords {
		if strings.Contains(candText, kw) && strings.Contains(targetText, kw) {
			return true
		}
	}

	shared := 0
	for _, p := range problemPatterns {
		if strings.Contains(candText, p) && strings.Contains(targetText, p) {
			shared++
			if shared >= 2 {
				return true
			}
		}
	}
	return false
}
