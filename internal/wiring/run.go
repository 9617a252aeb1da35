// Package wiring assembles the full analysis flow (lookup, search fan-out,
// ranking, export) behind one function, so the CLI and the end-to-end tests
// drive the identical path.
package wiring

import (
	"context"
	"log/slog"

	"deja/internal/match"
	"deja/internal/report"
)

// Params configures one analysis run.
type Params struct {
	TargetKey  string
	Threshold  float64
	MaxResults int
	Parallel   int

	// Optional export destinations; empty means skip.
	JSONPath    string
	SummaryPath string
}

// Run performs a complete similarity analysis and writes any requested
// exports. The returned results are ranked per the matcher contract.
func Run(ctx context.Context, source match.TicketSource, searcher match.Searcher, logger *slog.Logger, p Params) ([]match.Result, error) {
	analyzer := match.NewAnalyzer(source, searcher, logger, p.Parallel)
	results, err := analyzer.Analyze(ctx, p.TargetKey, p.Threshold, p.MaxResults)
	if err != nil {
		return nil, err
	}

	if p.JSONPath != "" || p.SummaryPath != "" {
		target, err := source.GetTicket(ctx, p.TargetKey)
		if err != nil {
			return nil, err
		}
		threshold := p.Threshold
		if threshold <= 0 {
			threshold = match.DefaultThreshold
		}
		if p.JSONPath != "" {
			if err := report.WriteJSON(p.JSONPath, *target, threshold, results); err != nil {
				return nil, err
			}
		}
		if p.SummaryPath != "" {
			if err := report.WriteSummary(p.SummaryPath, *target, results); err != nil {
				return nil, err
			}
		}
	}
	return results, nil
}
