// deja finds the tickets most likely to describe the same underlying
// problem as a given target ticket, so a prior fix can be reused.
//
// Usage:
//
//	deja analyze PLAT-1234 [--threshold=0.2] [--max-results=10] [-o results.json]
//	deja ticket PLAT-1234 [--comments]
//	deja search 'project = PLAT AND issuetype = Bug'
//	deja group 'project = PLAT AND status != Closed' [--threshold=0.3]
//	deja serve
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deja/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

var rootCmd = &cobra.Command{
	Use:   "deja",
	Short: "Find similar tickets and reusable fixes in a Jira corpus",
	Long: "Deja analyzes a target Jira ticket, searches the corpus for candidates\n" +
		"sharing its subject terms, and ranks them by a weighted similarity score,\n" +
		"surfacing resolutions and workarounds from matched tickets.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(logging.ParseLevel(rootFlags.logLevel), rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "Path to config file (YAML or JSON); env vars used when omitted")
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(ticketCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
