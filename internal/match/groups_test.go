package match

import (
	"testing"

	"deja/internal/jira"
)

func TestGroupSimilar(t *testing.T) {
	tickets := []jira.Ticket{
		{Key: "PLAT-3", Summary: "OpenAI connector timeout"},
		{Key: "PLAT-1", Summary: "dashboard filter broken"},
		{Key: "PLAT-4", Summary: "OpenAI connector timeout on retry"},
		{Key: "PLAT-2", Summary: "dashboard filter slow"},
		{Key: "PLAT-5", Summary: "Usage logs export truncated"},
	}

	groups := GroupSimilar(tickets, 0.3)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// Equal sizes order by representative key.
	if groups[0].Representative.Key != "PLAT-1" || groups[1].Representative.Key != "PLAT-3" {
		t.Errorf("representatives = %s, %s, want PLAT-1, PLAT-3",
			groups[0].Representative.Key, groups[1].Representative.Key)
	}
	for _, g := range groups {
		if len(g.Members) != 2 {
			t.Errorf("group %s has %d members, want 2", g.Representative.Key, len(g.Members))
		}
		if g.AvgScore < 0.3 {
			t.Errorf("group %s AvgScore = %v, want >= threshold", g.Representative.Key, g.AvgScore)
		}
	}
}

func TestGroupSimilarNoClusters(t *testing.T) {
	tickets := []jira.Ticket{
		{Key: "PLAT-1", Summary: "dashboard filter broken"},
		{Key: "PLAT-2", Summary: "OpenAI connector timeout"},
	}
	if groups := GroupSimilar(tickets, 0.3); len(groups) != 0 {
		t.Errorf("got %d groups, want 0 for unrelated tickets", len(groups))
	}
}

func TestGroupSimilarTooFewTickets(t *testing.T) {
	if groups := GroupSimilar([]jira.Ticket{{Key: "PLAT-1", Summary: "alone"}}, 0.3); groups != nil {
		t.Errorf("got %v, want nil for a single ticket", groups)
	}
}
