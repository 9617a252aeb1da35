// Package mcp exposes the similarity engine over the Model Context Protocol
// so agent tooling can call analysis directly instead of shelling out to the
// CLI.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"deja/internal/jira"
	"deja/internal/match"
	"deja/internal/triage"
)

// Server wraps the MCP SDK server around the analyzer and collaborator.
type Server struct {
	MCPServer *sdkmcp.Server

	client   *jira.Client
	analyzer *match.Analyzer
	version  string
}

// NewServer creates an MCP server exposing ticket lookup, search, and
// similarity analysis tools over the given collaborator.
func NewServer(client *jira.Client, analyzer *match.Analyzer, version string) *Server {
	s := &Server{client: client, analyzer: analyzer, version: version}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "deja", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_similarity",
		Description: "Find tickets similar to a target ticket, ranked by similarity score, each with a fix suggestion if the matched ticket carries one.",
	}, s.handleAnalyzeSimilarity)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_ticket",
		Description: "Fetch a single ticket by key, with triage category and escalation weightage.",
	}, s.handleGetTicket)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "search_tickets",
		Description: "Run a raw JQL query and return the matching tickets.",
	}, s.handleSearchTickets)
}

// --- Tool input/output types ---

type analyzeInput struct {
	TicketKey  string  `json:"ticket_key" jsonschema:"target ticket key, e.g. PLAT-1234"`
	Threshold  float64 `json:"threshold,omitempty" jsonschema:"similarity threshold in (0,1], default 0.2"`
	MaxResults int     `json:"max_results,omitempty" jsonschema:"maximum similar tickets to return, default 10"`
}

type analyzeOutput struct {
	TargetKey string         `json:"target_key"`
	Results   []match.Result `json:"results"`
	Count     int            `json:"count"`
}

type getTicketInput struct {
	TicketKey string `json:"ticket_key" jsonschema:"ticket key to fetch"`
}

type getTicketOutput struct {
	Ticket     jira.Ticket `json:"ticket"`
	Category   string      `json:"category"`
	Escalation int         `json:"escalation_weightage"`
	URL        string      `json:"url"`
}

type searchInput struct {
	JQL        string `json:"jql" jsonschema:"raw JQL query"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum tickets to return, default 50"`
}

type searchOutput struct {
	Tickets []jira.Ticket `json:"tickets"`
	Count   int           `json:"count"`
}

// --- Tool handlers ---

func (s *Server) handleAnalyzeSimilarity(ctx context.Context, _ *sdkmcp.CallToolRequest, input analyzeInput) (*sdkmcp.CallToolResult, analyzeOutput, error) {
	if input.TicketKey == "" {
		return nil, analyzeOutput{}, fmt.Errorf("ticket_key is required")
	}
	results, err := s.analyzer.Analyze(ctx, input.TicketKey, input.Threshold, input.MaxResults)
	if err != nil {
		return nil, analyzeOutput{}, err
	}
	return nil, analyzeOutput{
		TargetKey: input.TicketKey,
		Results:   results,
		Count:     len(results),
	}, nil
}

func (s *Server) handleGetTicket(ctx context.Context, _ *sdkmcp.CallToolRequest, input getTicketInput) (*sdkmcp.CallToolResult, getTicketOutput, error) {
	if input.TicketKey == "" {
		return nil, getTicketOutput{}, fmt.Errorf("ticket_key is required")
	}
	t, err := s.client.GetTicket(ctx, input.TicketKey)
	if err != nil {
		return nil, getTicketOutput{}, err
	}
	return nil, getTicketOutput{
		Ticket:     *t,
		Category:   triage.Categorize(*t),
		Escalation: triage.EscalationWeightage(*t),
		URL:        s.client.BrowseURL(t.Key),
	}, nil
}

func (s *Server) handleSearchTickets(ctx context.Context, _ *sdkmcp.CallToolRequest, input searchInput) (*sdkmcp.CallToolResult, searchOutput, error) {
	if input.JQL == "" {
		return nil, searchOutput{}, fmt.Errorf("jql is required")
	}
	max := input.MaxResults
	if max <= 0 {
		max = 50
	}
	tickets, err := s.client.SearchJQL(ctx, input.JQL, max)
	if err != nil {
		return nil, searchOutput{}, err
	}
	return nil, searchOutput{Tickets: tickets, Count: len(tickets)}, nil
}
