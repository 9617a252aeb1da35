package match

import (
	"testing"

	"deja/internal/jira"
)

func poolOf(tickets ...jira.Ticket) map[string]jira.Ticket {
	pool := make(map[string]jira.Ticket, len(tickets))
	for _, t := range tickets {
		pool[t.Key] = t
	}
	return pool
}

func keys(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Ticket.Key
	}
	return out
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	target := jira.Ticket{Key: "PLAT-1", Summary: "dashboard filter broken"}
	pool := poolOf(
		jira.Ticket{Key: "PLAT-2", Summary: "dashboard filter slow"},
		jira.Ticket{Key: "PLAT-3", Summary: "dashboard filter broken"},
	)

	results := Rank(target, pool, 0.2, 10)

	if got := keys(results); len(got) != 2 || got[0] != "PLAT-3" || got[1] != "PLAT-2" {
		t.Fatalf("ranked keys = %v, want [PLAT-3 PLAT-2]", got)
	}
	if results[0].Score != 1.01 {
		t.Errorf("top score = %v, want 1.01", results[0].Score)
	}
	if results[1].Score != 0.576667 {
		t.Errorf("second score = %v, want 0.576667", results[1].Score)
	}
	if results[1].ContentScore != 0.566667 {
		t.Errorf("second content score = %v, want 0.566667", results[1].ContentScore)
	}
}

func TestRankBreaksTiesByKey(t *testing.T) {
	target := jira.Ticket{Key: "PLAT-1", Summary: "dashboard filter broken"}
	pool := poolOf(
		jira.Ticket{Key: "PLAT-9", Summary: "dashboard filter slow"},
		jira.Ticket{Key: "PLAT-2", Summary: "dashboard filter slow"},
	)

	results := Rank(target, pool, 0.2, 10)

	if got := keys(results); len(got) != 2 || got[0] != "PLAT-2" || got[1] != "PLAT-9" {
		t.Errorf("ranked keys = %v, want [PLAT-2 PLAT-9]", got)
	}
}

func TestRankExcludesTarget(t *testing.T) {
	target := jira.Ticket{Key: "PLAT-1", Summary: "dashboard filter broken"}
	pool := poolOf(
		target,
		jira.Ticket{Key: "PLAT-2", Summary: "dashboard filter slow"},
	)

	for _, key := range keys(Rank(target, pool, 0.2, 10)) {
		if key == target.Key {
			t.Error("target ticket ranked against itself")
		}
	}
}

func TestRankTruncatesToMaxResults(t *testing.T) {
	target := jira.Ticket{Key: "PLAT-1", Summary: "dashboard filter broken"}
	pool := poolOf(
		jira.Ticket{Key: "PLAT-2", Summary: "dashboard filter slow"},
		jira.Ticket{Key: "PLAT-3", Summary: "dashboard filter broken"},
	)

	results := Rank(target, pool, 0.2, 1)
	if len(results) != 1 || results[0].Ticket.Key != "PLAT-3" {
		t.Errorf("results = %v, want only PLAT-3", keys(results))
	}
}

// A pool where nothing clears the threshold retries exactly once, 0.1 lower.
func TestRankRelaxationFallback(t *testing.T) {
	target := jira.Ticket{Key: "PLAT-1", Summary: "dashboard filter broken"}
	// Scores 0.576667 against the target.
	pool := poolOf(jira.Ticket{Key: "PLAT-2", Summary: "dashboard filter slow"})

	// 0.6 misses, the 0.5 retry catches it.
	results := Rank(target, pool, 0.6, 10)
	if len(results) != 1 || results[0].Ticket.Key != "PLAT-2" {
		t.Fatalf("results = %v, want [PLAT-2] via relaxed threshold", keys(results))
	}

	// 0.8 misses and the single 0.7 retry misses too; no second relaxation.
	if results := Rank(target, pool, 0.8, 10); len(results) != 0 {
		t.Errorf("results = %v, want none (one retry only)", keys(results))
	}
}

func TestRankEmptyPool(t *testing.T) {
	target := jira.Ticket{Key: "PLAT-1", Summary: "dashboard filter broken"}
	if results := Rank(target, nil, 0.2, 10); len(results) != 0 {
		t.Errorf("results = %v, want none for empty pool", keys(results))
	}
}

func TestRankSkipsZeroScores(t *testing.T) {
	target := jira.Ticket{Key: "PLAT-1", Summary: "dashboard filter broken"}
	pool := poolOf(jira.Ticket{Key: "PLAT-2", Summary: ""})

	if results := Rank(target, pool, 0.2, 10); len(results) != 0 {
		t.Errorf("results = %v, want none for zero-score candidates", keys(results))
	}
}
