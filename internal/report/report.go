// Package report renders analysis output for humans (terminal and Markdown
// tables) and machines (JSON and plain-text summary exports).
package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"deja/internal/jira"
	"deja/internal/match"
	"deja/internal/triage"
)

// Mode controls the rendered table flavor.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

const summaryColumnWidth = 60

// Results renders the ranked match list as a table. browseURL may be nil
// when no link column is wanted.
func Results(target jira.Ticket, results []match.Result, mode Mode, browseURL func(string) string) string {
	w := table.NewWriter()
	w.SetTitle("Similar tickets for %s", target.Key)

	header := table.Row{"#", "Key", "Score", "Content", "Status", "Category", "Fix", "Summary"}
	if browseURL != nil {
		header = append(header, "URL")
	}
	w.AppendHeader(header)

	for i, r := range results {
		fix := "-"
		if r.Fix.HasFix {
			fix = fmt.Sprintf("%s (%.0f%%)", r.Fix.FixType, r.Fix.Confidence*100)
		}
		row := table.Row{
			i + 1,
			r.Ticket.Key,
			fmt.Sprintf("%.3f", r.Score),
			fmt.Sprintf("%.3f", r.ContentScore),
			r.Ticket.Status,
			triage.Categorize(r.Ticket),
			fix,
			r.Ticket.Summary,
		}
		if browseURL != nil {
			row = append(row, browseURL(r.Ticket.Key))
		}
		w.AppendRow(row)
	}

	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 8, WidthMax: summaryColumnWidth},
	})

	return render(w, mode)
}

// Ticket renders a single ticket card with its triage decorations.
func Ticket(t jira.Ticket, mode Mode) string {
	w := table.NewWriter()
	w.SetTitle(t.Key)
	w.AppendRow(table.Row{"Summary", t.Summary})
	w.AppendRow(table.Row{"Type", t.IssueType})
	w.AppendRow(table.Row{"Priority", t.Priority})
	w.AppendRow(table.Row{"Status", fmt.Sprintf("%s (%s)", t.Status, match.NormalizeStatus(t.Status))})
	w.AppendRow(table.Row{"Assignee", orDash(t.Assignee)})
	w.AppendRow(table.Row{"Reporter", orDash(t.Reporter)})
	w.AppendRow(table.Row{"Created", orDash(t.Created)})
	w.AppendRow(table.Row{"Updated", orDash(t.Updated)})
	w.AppendRow(table.Row{"Labels", orDash(strings.Join(t.Labels, ", "))})
	w.AppendRow(table.Row{"Components", orDash(strings.Join(t.Components, ", "))})
	w.AppendRow(table.Row{"Category", triage.Categorize(t)})
	w.AppendRow(table.Row{"Escalation", fmt.Sprintf("%d%%", triage.EscalationWeightage(t))})

	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 80},
	})
	return render(w, mode)
}

// Tickets renders a flat ticket listing (the search command).
func Tickets(tickets []jira.Ticket, mode Mode) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Key", "Type", "Priority", "Status", "Summary"})
	for _, t := range tickets {
		w.AppendRow(table.Row{t.Key, t.IssueType, t.Priority, t.Status, t.Summary})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, WidthMax: summaryColumnWidth},
	})
	return render(w, mode)
}

// Groups renders similarity groups, one table per group.
func Groups(groups []match.Group, mode Mode) string {
	if len(groups) == 0 {
		return "no similar groups found\n"
	}
	var sb strings.Builder
	for i, g := range groups {
		w := table.NewWriter()
		w.SetTitle("Group %d: %d tickets, avg score %.3f", i+1, len(g.Members), g.AvgScore)
		w.AppendHeader(table.Row{"Key", "Status", "Summary"})
		for _, t := range g.Members {
			w.AppendRow(table.Row{t.Key, t.Status, t.Summary})
		}
		w.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, WidthMax: summaryColumnWidth},
		})
		sb.WriteString(render(w, mode))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Comments renders a ticket's comment thread.
func Comments(comments []jira.Comment, mode Mode) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Author", "Created", "Comment"})
	for _, c := range comments {
		w.AppendRow(table.Row{c.Author, c.Created, c.Body})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 80},
	})
	return render(w, mode)
}

func render(w table.Writer, mode Mode) string {
	if mode == Markdown {
		return w.RenderMarkdown() + "\n"
	}
	w.SetStyle(table.StyleLight)
	return w.Render() + "\n"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
