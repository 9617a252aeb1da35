package report

import (
	"strings"
	"testing"

	"deja/internal/jira"
	"deja/internal/match"
)

func sampleResults() (jira.Ticket, []match.Result) {
	target := jira.Ticket{Key: "PLAT-1", Summary: "Dashboard filter broken"}
	results := []match.Result{
		{
			Ticket: jira.Ticket{Key: "PLAT-2", Summary: "Dashboard filter slow", Status: "Closed", Priority: "P2"},
			Score:  0.576667, ContentScore: 0.566667,
			Fix: match.FixSuggestion{HasFix: true, FixType: "resolved", Confidence: 0.9},
		},
		{
			Ticket: jira.Ticket{Key: "PLAT-3", Summary: "Dashboard widget gone", Status: "Open"},
			Score:  0.31, ContentScore: 0.30,
		},
	}
	return target, results
}

func TestResults(t *testing.T) {
	target, results := sampleResults()
	out := Results(target, results, ASCII, func(key string) string {
		return "https://example.atlassian.net/browse/" + key
	})

	for _, want := range []string{
		"Similar tickets for PLAT-1",
		"PLAT-2", "0.577", "0.567", "resolved (90%)",
		"PLAT-3", "0.310",
		"https://example.atlassian.net/browse/PLAT-2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestResultsMarkdown(t *testing.T) {
	target, results := sampleResults()
	out := Results(target, results, Markdown, nil)

	if !strings.Contains(out, "| PLAT-2 |") {
		t.Errorf("markdown output missing table row:\n%s", out)
	}
	if strings.Contains(out, "URL") {
		t.Error("URL column rendered without a browse function")
	}
}

func TestTicket(t *testing.T) {
	out := Ticket(jira.Ticket{
		Key:       "PLAT-9",
		Summary:   "DialogGPT responses truncated",
		IssueType: "Bug",
		Priority:  "High",
		Status:    "In Progress",
		Labels:    []string{"escalated"},
	}, ASCII)

	for _, want := range []string{
		"PLAT-9",
		"DialogGPT responses truncated",
		"In Progress (In Progress)",
		"DialogGPT", // triage category
		"65%",       // escalated label 30 + high 25 + bug 10
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGroups(t *testing.T) {
	groups := []match.Group{
		{
			Representative: jira.Ticket{Key: "PLAT-1", Summary: "dashboard filter broken"},
			Members: []jira.Ticket{
				{Key: "PLAT-1", Summary: "dashboard filter broken"},
				{Key: "PLAT-2", Summary: "dashboard filter slow"},
			},
			AvgScore: 0.576667,
		},
	}
	out := Groups(groups, ASCII)
	for _, want := range []string{"Group 1", "2 tickets", "0.577", "PLAT-2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if got := Groups(nil, ASCII); got != "no similar groups found\n" {
		t.Errorf("empty groups output = %q", got)
	}
}

func TestComments(t *testing.T) {
	out := Comments([]jira.Comment{
		{Author: "Dana", Created: "2026-08-01", Body: "fixed by config change"},
	}, ASCII)
	if !strings.Contains(out, "Dana") || !strings.Contains(out, "fixed by config change") {
		t.Errorf("output missing comment fields:\n%s", out)
	}
}
