package match

import (
	"sort"

	"deja/internal/jira"
	"deja/internal/similarity"
)

// Default analysis parameters.
const (
	DefaultThreshold  = 0.2
	DefaultMaxResults = 10

	// fallbackFloor is the lowest threshold the one-shot relaxation retry
	// will use.
	fallbackFloor = 0.1
)

// Result is one ranked match, decorated with its score breakdown and fix
// suggestion.
type Result struct {
	Ticket       jira.Ticket          `json:"ticket"`
	Score        float64              `json:"score"`
	ContentScore float64              `json:"content_score"`
	Breakdown    similarity.Breakdown `json:"breakdown"`
	Fix          FixSuggestion        `json:"fix_suggestion"`
}

// Rank scores every gated candidate against the target, keeps those at or
// above the threshold, sorts by score descending, and truncates to
// maxResults. Equal scores order by ticket key ascending so ranking is
// deterministic regardless of pool iteration order.
//
// If nothing qualifies and the gated pool is non-empty, ranking retries
// exactly once at max(0.1, threshold-0.1). No further retries.
func Rank(target jira.Ticket, gated map[string]jira.Ticket, threshold float64, maxResults int) []Result {
	results := rankAt(target, gated, threshold, maxResults)
	if len(results) == 0 && len(gated) > 0 {
		fallback := threshold - 0.1
		if fallback < fallbackFloor {
			fallback = fallbackFloor
		}
		results = rankAt(target, gated, fallback, maxResults)
	}
	return results
}

func rankAt(target jira.Ticket, gated map[string]jira.Ticket, threshold float64, maxResults int) []Result {
	var results []Result
	for key, cand := range gated {
		if key == target.Key {
			continue
		}
		bd := similarity.Score(target, cand)
		if bd.Final <= 0 || bd.Final < threshold {
			continue
		}
		results = append(results, Result{
			Ticket:       cand,
			Score:        bd.Final,
			ContentScore: similarity.ContentScore(target, cand),
			Breakdown:    bd,
			Fix:          ExtractFixSuggestion(cand, target),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Ticket.Key < results[j].Ticket.Key
	})

	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
