package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"deja/internal/jira"
	"deja/internal/match"
)

// Export is the JSON export envelope for one analysis run.
type Export struct {
	AnalysisDate   string         `json:"analysis_date"`
	TargetTicket   jira.Ticket    `json:"target_ticket"`
	Threshold      float64        `json:"threshold"`
	SimilarCount   int            `json:"similar_count"`
	SimilarTickets []match.Result `json:"similar_tickets"`
}

// WriteJSON writes the analysis results as indented JSON to path.
func WriteJSON(path string, target jira.Ticket, threshold float64, results []match.Result) error {
	export := Export{
		AnalysisDate:   time.Now().Format(time.RFC3339),
		TargetTicket:   target,
		Threshold:      threshold,
		SimilarCount:   len(results),
		SimilarTickets: results,
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// summaryTopN caps the tickets listed in the text summary.
const summaryTopN = 5

// Summary renders a short plain-text digest of an analysis, suitable for
// pasting into a ticket comment or chat.
func Summary(target jira.Ticket, results []match.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Similarity analysis for %s\n", target.Key)
	fmt.Fprintf(&sb, "%s\n\n", strings.Repeat("=", len("Similarity analysis for ")+len(target.Key)))
	fmt.Fprintf(&sb, "Target: %s\n", target.Summary)
	fmt.Fprintf(&sb, "Similar tickets found: %d\n\n", len(results))

	n := len(results)
	if n > summaryTopN {
		n = summaryTopN
	}
	for i := 0; i < n; i++ {
		r := results[i]
		fmt.Fprintf(&sb, "%d. %s - %s\n", i+1, r.Ticket.Key, r.Ticket.Summary)
		fmt.Fprintf(&sb, "   Score: %.1f%%  Status: %s  Priority: %s\n",
			r.Score*100, orDash(r.Ticket.Status), orDash(r.Ticket.Priority))
		if r.Fix.HasFix {
			fmt.Fprintf(&sb, "   Fix: %s (confidence %.0f%%)\n", r.Fix.FixType, r.Fix.Confidence*100)
		}
	}
	return sb.String()
}

// WriteSummary writes the text summary to path.
func WriteSummary(path string, target jira.Ticket, results []match.Result) error {
	if err := os.WriteFile(path, []byte(Summary(target, results)), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
