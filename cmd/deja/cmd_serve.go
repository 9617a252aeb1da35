package main

import (
	"context"

	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"deja/internal/logging"
	"deja/internal/match"
	mcpserver "deja/internal/mcp"
)

var serveFlags struct {
	parallel int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts an MCP server over stdin/stdout exposing analyze_similarity,
get_ticket, and search_tickets tools.

The server monitors for parent process death: when the MCP host disconnects
or restarts, the server self-terminates to prevent zombie processes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&serveFlags.parallel, "parallel", 1, "Parallel search workers per analysis")
}

func runServe(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	analyzer := match.NewAnalyzer(client, client, logging.New("analyze"), serveFlags.parallel)
	srv := mcpserver.NewServer(client, analyzer, version)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting deja MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
