package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"deja/internal/jira"
	"deja/internal/report"
)

var ticketFlags struct {
	comments bool
	markdown bool
}

var ticketCmd = &cobra.Command{
	Use:   "ticket TICKET-KEY",
	Short: "Fetch and display a single ticket",
	Long: `Fetch one ticket by key and display it with its triage category and
escalation weightage. With --comments the comment thread is included.`,
	Args: cobra.ExactArgs(1),
	RunE: runTicket,
}

func init() {
	f := ticketCmd.Flags()
	f.BoolVar(&ticketFlags.comments, "comments", false, "Also fetch and display comments")
	f.BoolVar(&ticketFlags.markdown, "markdown", false, "Render as Markdown")
}

func runTicket(cmd *cobra.Command, args []string) error {
	key := args[0]
	client, err := newClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	t, err := client.GetTicket(ctx, key)
	if err != nil {
		if errors.Is(err, jira.ErrNotFound) {
			return fmt.Errorf("ticket %s not found", key)
		}
		return err
	}

	mode := renderMode(ticketFlags.markdown)
	fmt.Print(report.Ticket(*t, mode))
	fmt.Printf("URL: %s\n", client.BrowseURL(t.Key))

	if ticketFlags.comments {
		comments, err := client.GetComments(ctx, key)
		if err != nil {
			return fmt.Errorf("fetch comments: %w", err)
		}
		if len(comments) == 0 {
			fmt.Println("No comments.")
			return nil
		}
		fmt.Print(report.Comments(comments, mode))
	}
	return nil
}
