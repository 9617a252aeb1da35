// Package triage carries display-time heuristics over single tickets:
// coarse categorization and an escalation weightage estimate. Neither feeds
// the similarity ranking.
package triage

import (
	"strings"

	"deja/internal/jira"
)

// category pairs a display name with the keywords that select it. First
// match wins, so more specific categories come first.
var categories = []struct {
	name     string
	keywords []string
}{
	{"DialogGPT", []string{"dialoggpt", "dialog gpt", "chatgpt", "conversational ai", "ai chat", "gpt", "openai"}},
	{"Language Switch", []string{"language switch", "language switching", "multilingual", "language change", "locale", "translation"}},
	{"Session Closure", []string{"session closure", "session close", "session timeout", "session end", "logout", "session management"}},
	{"Authentication", []string{"authentication", "auth", "login", "logout", "password", "credentials", "token"}},
	{"Performance", []string{"performance", "slow", "timeout", "latency", "response time", "speed"}},
	{"API Issues", []string{"api", "rest api", "endpoint", "http", "request", "response"}},
	{"Database", []string{"database", "db", "sql", "query", "connection", "data"}},
	{"UI/UX", []string{"ui", "ux", "interface", "frontend", "user interface", "display", "visual"}},
	{"Integration", []string{"integration", "webhook", "third party", "external", "connector"}},
	{"Deployment", []string{"deployment", "deploy", "release", "production", "staging", "environment"}},
}

// Categorize assigns a ticket to the first category whose keywords appear in
// its summary or description. Tickets matching nothing are "Other".
func Categorize(t jira.Ticket) string {
	combined := strings.ToLower(t.Summary + " " + t.Description)
	for _, c := range categories {
		for _, kw := range c.keywords {
			if strings.Contains(combined, kw) {
				return c.name
			}
		}
	}
	return "Other"
}

var escalationLabels = []string{"escalated", "urgent", "critical", "high_priority"}

var escalationStatuses = []string{"blocked", "waiting", "on hold", "escalated"}

// EscalationWeightage estimates how escalated a ticket is, 0–100. An
// explicit weightage value on the ticket wins over the heuristic.
//
// Heuristic: +30 per escalation-flavored label, priority bumps (highest 35,
// high 25, medium 15, low 5), +20 for blocked-ish statuses, +10 for bugs,
// capped at 100.
func EscalationWeightage(t jira.Ticket) int {
	if t.EscalationWeightage != "" {
		if v, ok := parsePercent(t.EscalationWeightage); ok {
			return v
		}
	}

	weightage := 0

	for _, label := range t.Labels {
		lower := strings.ToLower(label)
		for _, kw := range escalationLabels {
			if strings.Contains(lower, kw) {
				weightage += 30
				break
			}
		}
	}

	switch strings.ToLower(t.Priority) {
	case "highest":
		weightage += 35
	case "high":
		weightage += 25
	case "medium":
		weightage += 15
	case "low":
		weightage += 5
	}

	status := strings.ToLower(t.Status)
	for _, s := range escalationStatuses {
		if strings.Contains(status, s) {
			weightage += 20
			break
		}
	}

	if strings.EqualFold(t.IssueType, "bug") {
		weightage += 10
	}

	if weightage > 100 {
		weightage = 100
	}
	return weightage
}

func parsePercent(s string) (int, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		v = v*10 + int(r-'0')
	}
	if s == "" {
		return 0, false
	}
	if v > 100 {
		v = 100
	}
	return v, true
}
