package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deja/internal/match"
	"deja/internal/report"
)

var groupFlags struct {
	threshold  float64
	maxResults int
	markdown   bool
}

var groupCmd = &cobra.Command{
	Use:   "group JQL",
	Short: "Cluster a filtered ticket set by summary similarity",
	Long: `Fetch the tickets matching a JQL query and cluster them into groups of
likely duplicates. Each unassigned ticket seeds a group and absorbs the
later tickets scoring at or above the threshold against it; only groups
with more than one member are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runGroup,
}

func init() {
	f := groupCmd.Flags()
	f.Float64Var(&groupFlags.threshold, "threshold", 0.3, "Grouping similarity threshold")
	f.IntVar(&groupFlags.maxResults, "max-results", 500, "Maximum tickets to fetch for grouping")
	f.BoolVar(&groupFlags.markdown, "markdown", false, "Render as Markdown")
}

func runGroup(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	tickets, err := client.SearchJQL(cmd.Context(), args[0], groupFlags.maxResults)
	if err != nil {
		return err
	}
	if len(tickets) < 2 {
		fmt.Printf("Only %d ticket(s) matched; nothing to group.\n", len(tickets))
		return nil
	}

	groups := match.GroupSimilar(tickets, groupFlags.threshold)
	fmt.Print(report.Groups(groups, renderMode(groupFlags.markdown)))
	fmt.Printf("%d group(s) across %d tickets.\n", len(groups), len(tickets))
	return nil
}
