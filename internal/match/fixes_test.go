package match

import (
	"strings"
	"testing"

	"deja/internal/jira"
)

func TestExtractFixSuggestionResolved(t *testing.T) {
	candidate := jira.Ticket{
		Key:     "PLAT-2",
		Summary: "DialogGPT responses not generated after upgrade",
		Status:  "Closed",
		Description: "Root cause was a stale embedding index. " +
			"Solution: rebuild the index and bump the schema version. " +
			"Workaround until then is to restart the ingestion job.",
	}
	target := jira.Ticket{
		Key:     "PLAT-1",
		Summary: "DialogGPT answers missing for imported app",
	}

	fix := ExtractFixSuggestion(candidate, target)

	if !fix.HasFix || fix.FixType != "resolved" {
		t.Fatalf("fix = %+v, want resolved fix", fix)
	}
	if !strings.Contains(fix.RootCause, "root cause") {
		t.Errorf("RootCause = %q, want window around the root-cause mention", fix.RootCause)
	}
	if !strings.Contains(fix.SuggestedSolution, "solution") {
		t.Errorf("SuggestedSolution = %q, want window around the solution mention", fix.SuggestedSolution)
	}
	if !strings.Contains(fix.Workaround, "workaround") {
		t.Errorf("Workaround = %q, want window around the workaround mention", fix.Workaround)
	}
	// Both tickets mention dialoggpt, so the fix is applicable.
	if !fix.Applicable || fix.Confidence != 0.9 {
		t.Errorf("Applicable = %v, Confidence = %v, want true / 0.9", fix.Applicable, fix.Confidence)
	}
}

func TestExtractFixSuggestionResolvedNotApplicable(t *testing.T) {
	candidate := jira.Ticket{
		Key:         "XOP-5",
		Summary:     "Report export truncated",
		Status:      "Done",
		Description: "Fix shipped in the nightly build.",
	}
	target := jira.Ticket{Key: "PLAT-1", Summary: "Dashboard widget misaligned"}

	fix := ExtractFixSuggestion(candidate, target)
	if !fix.HasFix {
		t.Fatal("resolved candidate must carry a fix")
	}
	if fix.Applicable || fix.Confidence != 0.5 {
		t.Errorf("Applicable = %v, Confidence = %v, want false / 0.5", fix.Applicable, fix.Confidence)
	}
}

func TestExtractFixSuggestionSharedProblemPatterns(t *testing.T) {
	candidate := jira.Ticket{
		Key:         "PLAT-2",
		Summary:     "Export job timeout, UI slow afterwards",
		Status:      "Resolved",
		Description: "Resolved by raising the job memory limit.",
	}
	target := jira.Ticket{
		Key:     "PLAT-1",
		Summary: "Import job timeout leaves console slow",
	}

	// No shared technology keyword, but two shared problem patterns
	// (timeout, slow) make the fix applicable.
	fix := ExtractFixSuggestion(candidate, target)
	if !fix.Applicable || fix.Confidence != 0.9 {
		t.Errorf("Applicable = %v, Confidence = %v, want true / 0.9", fix.Applicable, fix.Confidence)
	}
}

func TestExtractFixSuggestionWorkaroundInProgress(t *testing.T) {
	candidate := jira.Ticket{
		Key:         "PLAT-3",
		Summary:     "SearchAI indexing hangs",
		Status:      "In Progress",
		Description: "Workaround: restart the indexer pod every hour until the fix lands.",
	}
	target := jira.Ticket{Key: "PLAT-1", Summary: "SearchAI queries stuck"}

	fix := ExtractFixSuggestion(candidate, target)
	if !fix.HasFix || fix.FixType != "workaround" {
		t.Fatalf("fix = %+v, want workaround fix", fix)
	}
	if !strings.Contains(fix.Workaround, "restart the indexer pod") {
		t.Errorf("Workaround = %q, want the workaround text", fix.Workaround)
	}
	if fix.Confidence != 0.6 {
		t.Errorf("Confidence = %v, want 0.6", fix.Confidence)
	}
}

func TestExtractFixSuggestionNoFix(t *testing.T) {
	cases := []struct {
		name   string
		status string
		desc   string
	}{
		{"open without marker", "Open", "Still investigating."},
		{"in progress without marker", "In Progress", "Assigned to the platform team."},
		{"unknown status", "Backlog", "Workaround: restart."},
	}
	target := jira.Ticket{Key: "PLAT-1", Summary: "Dashboard broken"}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := jira.Ticket{Key: "PLAT-2", Status: tc.status, Description: tc.desc}
			if fix := ExtractFixSuggestion(candidate, target); fix.HasFix {
				t.Errorf("fix = %+v, want none", fix)
			}
		})
	}
}

func TestContextWindow(t *testing.T) {
	long := strings.Repeat("x ", 120) + "the solution is to flush the cache " + strings.Repeat("y ", 120)
	got := contextWindow(long, "solution")

	if !strings.Contains(got, "solution is to flush the cache") {
		t.Errorf("window %q missing keyword context", got)
	}
	if len(got) > 2*contextRadius+len("solution")+2 {
		t.Errorf("window length %d exceeds the radius bound", len(got))
	}
	if contextWindow(long, "absent") != "" {
		t.Error("missing keyword must yield an empty window")
	}
}
