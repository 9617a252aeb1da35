package match

import (
	"sort"

	"deja/internal/jira"
	"deja/internal/similarity"
)

// Group is a cluster of tickets whose summaries score as similar. The
// representative is the first ticket assigned to the group.
type Group struct {
	Representative jira.Ticket   `json:"representative"`
	Members        []jira.Ticket `json:"members"`
	AvgScore       float64       `json:"avg_score"`
}

// GroupSimilar clusters a ticket list by pairwise similarity: each unassigned
// ticket seeds a group and greedily absorbs every later unassigned ticket
// scoring at or above the threshold against the seed. Only groups with more
// than one member are returned, largest first (ties by representative key).
//
// Scoring uses the engine's own pairwise score rather than any corpus-level
// statistic, so grouping needs no index and stays deterministic.
func GroupSimilar(tickets []jira.Ticket, threshold float64) []Group {
	if len(tickets) < 2 {
		return nil
	}

	assigned := make([]bool, len(tickets))
	var groups []Group

	for i := range tickets {
		if assigned[i] {
			continue
		}
		group := Group{
			Representative: tickets[i],
			Members:        []jira.Ticket{tickets[i]},
		}
		assigned[i] = true

		var sum float64
		for j := i + 1; j < len(tickets); j++ {
			if assigned[j] {
				continue
			}
			score := similarity.Score(tickets[i], tickets[j]).Final
			if score >= threshold {
				group.Members = append(group.Members, tickets[j])
				assigned[j] = true
				sum += score
			}
		}

		if len(group.Members) > 1 {
			group.AvgScore = sum / float64(len(group.Members)-1)
			groups = append(groups, group)
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Members) != len(groups[j].Members) {
			return len(groups[i].Members) > len(groups[j].Members)
		}
		return groups[i].Representative.Key < groups[j].Representative.Key
	})
	return groups
}
