package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"deja/internal/jira"
)

// ErrTargetNotFound reports that the target ticket itself could not be
// fetched. It is the only collaborator failure that aborts an analysis;
// per-query search failures are skipped.
var ErrTargetNotFound = errors.New("match: target ticket not found")

// TicketSource is the consumed ticket-lookup capability.
type TicketSource interface {
	GetTicket(ctx context.Context, key string) (*jira.Ticket, error)
}

// Analyzer wires the pipeline: plan queries, collect candidates, gate on
// subject overlap, rank with the relaxation fallback. One Analyze call is
// fully self-contained; nothing is shared or cached across calls.
type Analyzer struct {
	source    TicketSource
	collector *Collector
	logger    *slog.Logger
}

// NewAnalyzer returns an Analyzer over the given collaborators. parallel
// bounds the search fan-out; 1 runs queries serially.
func NewAnalyzer(source TicketSource, searcher Searcher, logger *slog.Logger, parallel int) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	c := NewCollector(searcher, logger)
	if parallel > 1 {
		c.Parallel = parallel
	}
	return &Analyzer{source: source, collector: c, logger: logger}
}

// Analyze finds the tickets most similar to targetKey, ranked by score
// descending. Threshold and maxResults fall back to the package defaults
// when zero or negative.
//
// Zero results is a valid outcome, not an error. Only a failed target
// lookup returns an error.
func (a *Analyzer) Analyze(ctx context.Context, targetKey string, threshold float64, maxResults int) ([]Result, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	target, err := a.source.GetTicket(ctx, targetKey)
	if err != nil {
		if errors.Is(err, jira.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, targetKey)
		}
		return nil, fmt.Errorf("fetch target %s: %w", targetKey, err)
	}

	a.logger.InfoContext(ctx, "starting similarity analysis",
		"target", target.Key, "threshold", threshold, "max_results", maxResults)

	queries := PlanQueries(*target)
	a.logger.DebugContext(ctx, "planned queries", "count", len(queries))

	pool := a.collector.Collect(ctx, queries)
	gated := ApplySubjectGate(*target, pool)
	a.logger.InfoContext(ctx, "candidate pool collected",
		"raw", len(pool), "gated", len(gated))

	results := Rank(*target, gated, threshold, maxResults)
	a.logger.InfoContext(ctx, "analysis complete", "results", len(results))
	return results, nil
}
