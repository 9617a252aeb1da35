package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deja/internal/report"
)

var searchFlags struct {
	maxResults int
	markdown   bool
}

var searchCmd = &cobra.Command{
	Use:   "search JQL",
	Short: "Run a raw JQL query and list the matching tickets",
	Long: `Run a raw JQL query against the tracker and list the matching tickets.

Examples:
  deja search 'project = PLAT AND issuetype = Bug ORDER BY created DESC'
  deja search 'project = PLAT AND status != Closed' --max-results 200`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	f := searchCmd.Flags()
	f.IntVar(&searchFlags.maxResults, "max-results", 100, "Maximum tickets to return")
	f.BoolVar(&searchFlags.markdown, "markdown", false, "Render as Markdown")
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	tickets, err := client.SearchJQL(cmd.Context(), args[0], searchFlags.maxResults)
	if err != nil {
		return err
	}
	if len(tickets) == 0 {
		fmt.Println("No tickets matched.")
		return nil
	}
	fmt.Print(report.Tickets(tickets, renderMode(searchFlags.markdown)))
	fmt.Printf("%d tickets.\n", len(tickets))
	return nil
}
