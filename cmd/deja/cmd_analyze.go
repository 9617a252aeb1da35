package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"deja/internal/logging"
	"deja/internal/match"
	"deja/internal/report"
	"deja/internal/wiring"
)

var analyzeFlags struct {
	threshold   float64
	maxResults  int
	parallel    int
	jsonPath    string
	summaryPath string
	markdown    bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze TICKET-KEY",
	Short: "Find tickets similar to a target ticket",
	Long: `Analyze a target ticket and rank the corpus tickets most likely to
describe the same underlying problem.

Candidates are searched with queries derived from the target's summary,
keywords, and subject terms, gated on subject-term overlap, and scored by a
weighted blend of subject, summary, technical, and keyword overlaps. If no
candidate reaches the threshold, ranking retries once at threshold-0.1
(floor 0.1).

Matched tickets that are resolved, or that document a workaround, carry a
fix suggestion with an applicability estimate.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.Float64Var(&analyzeFlags.threshold, "threshold", match.DefaultThreshold, "Similarity threshold in (0,1]")
	f.IntVar(&analyzeFlags.maxResults, "max-results", match.DefaultMaxResults, "Maximum similar tickets to return")
	f.IntVar(&analyzeFlags.parallel, "parallel", 1, "Parallel search workers (1 = serial)")
	f.StringVarP(&analyzeFlags.jsonPath, "output", "o", "", "Write results as JSON to this file")
	f.StringVar(&analyzeFlags.summaryPath, "summary-out", "", "Write a plain-text summary to this file")
	f.BoolVar(&analyzeFlags.markdown, "markdown", false, "Render the result table as Markdown")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	targetKey := args[0]
	if analyzeFlags.threshold <= 0 || analyzeFlags.threshold > 1 {
		return fmt.Errorf("threshold must be in (0,1], got %v", analyzeFlags.threshold)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	logger := logging.New("analyze")

	ctx := cmd.Context()
	results, err := wiring.Run(ctx, client, client, logger, wiring.Params{
		TargetKey:   targetKey,
		Threshold:   analyzeFlags.threshold,
		MaxResults:  analyzeFlags.maxResults,
		Parallel:    analyzeFlags.parallel,
		JSONPath:    analyzeFlags.jsonPath,
		SummaryPath: analyzeFlags.summaryPath,
	})
	if err != nil {
		if errors.Is(err, match.ErrTargetNotFound) {
			return fmt.Errorf("target ticket %s not found", targetKey)
		}
		return err
	}

	if len(results) == 0 {
		fmt.Printf("No similar tickets found for %s at threshold %.2f.\n", targetKey, analyzeFlags.threshold)
		return nil
	}

	target, err := client.GetTicket(ctx, targetKey)
	if err != nil {
		return err
	}
	fmt.Print(report.Results(*target, results, renderMode(analyzeFlags.markdown), client.BrowseURL))
	return nil
}
