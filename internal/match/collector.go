package match

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"deja/internal/jira"
	"deja/internal/text"
)

// Search allow-list: candidate queries are constrained to these projects and
// issue types first, with one unconstrained fallback per query.
var (
	AllowedProjects   = []string{"PLAT", "XOP"}
	AllowedIssueTypes = []string{"Bug", "Customer-Incident", "Customer-Defect"}
)

// perQueryResults is the result cap for each individual search call.
const perQueryResults = 50

// Searcher is the consumed ticket-search capability.
type Searcher interface {
	// Search runs an unconstrained, default-project search.
	Search(ctx context.Context, query string, maxResults int) ([]jira.Ticket, error)
	// SearchProjectsIssueTypes runs a search constrained to projects and
	// issue types.
	SearchProjectsIssueTypes(ctx context.Context, query string, projects, issueTypes []string, maxResults int) ([]jira.Ticket, error)
}

// Collector fans planned queries out to the search collaborator and merges
// the results into a deduplicated candidate pool.
type Collector struct {
	searcher Searcher
	logger   *slog.Logger

	// Parallel bounds the query fan-out. 1 (or less) runs queries serially,
	// matching the original behavior; higher values are safe because the
	// pool merge is order-independent.
	Parallel int
}

// NewCollector returns a Collector over the given searcher.
func NewCollector(searcher Searcher, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{searcher: searcher, logger: logger, Parallel: 1}
}

// Collect runs every query and returns the merged key→Ticket pool. A failed
// query is logged and skipped: its contribution is simply absent, and the
// analysis continues with whatever succeeded. Context cancellation stops
// issuing further queries and returns the pool collected so far.
func (c *Collector) Collect(ctx context.Context, queries []string) map[string]jira.Ticket {
	pool := make(map[string]jira.Ticket)
	var mu sync.Mutex

	workers := c.Parallel
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, query := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			tickets := c.runQuery(gctx, query)
			if len(tickets) == 0 {
				return nil
			}
			mu.Lock()
			for _, t := range tickets {
				pool[t.Key] = t
			}
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; collaborator failures are swallowed per
	// query. Wait only synchronizes the merge.
	_ = g.Wait()
	return pool
}

// runQuery issues one constrained search, falling back once to the
// unconstrained default-project search when it comes back empty.
func (c *Collector) runQuery(ctx context.Context, query string) []jira.Ticket {
	tickets, err := c.searcher.SearchProjectsIssueTypes(ctx, query, AllowedProjects, AllowedIssueTypes, perQueryResults)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		c.logger.WarnContext(ctx, "constrained search failed, skipping", "query", query, "error", err)
		tickets = nil
	}
	if len(tickets) > 0 {
		return tickets
	}

	tickets, err = c.searcher.Search(ctx, query, perQueryResults)
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			c.logger.WarnContext(ctx, "fallback search failed, skipping", "query", query, "error", err)
		}
		return nil
	}
	return tickets
}

// ApplySubjectGate filters a candidate pool down to tickets whose summary
// shares at least one subject term with the target. The gate is a hard
// pre-filter: it runs before scoring and cannot be bypassed by a high score
// on other factors.
func ApplySubjectGate(target jira.Ticket, pool map[string]jira.Ticket) map[string]jira.Ticket {
	targetSubjects := text.SubjectTerms(target.Summary)
	gated := make(map[string]jira.Ticket)
	for key, t := range pool {
		if overlaps(text.SubjectTerms(t.Summary), targetSubjects) {
			gated[key] = t
		}
	}
	return gated
}

func overlaps(a, b map[string]struct{}) bool {
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}
