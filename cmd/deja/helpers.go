package main

import (
	"time"

	"deja/internal/config"
	"deja/internal/jira"
	"deja/internal/logging"
	"deja/internal/report"
)

// defaultTimeout bounds each individual collaborator call.
const defaultTimeout = 30 * time.Second

// newClient builds the Jira collaborator from config file and environment.
func newClient() (*jira.Client, error) {
	cfg, err := config.Load(rootFlags.configPath)
	if err != nil {
		return nil, err
	}
	return jira.New(cfg.JiraURL, cfg.Username, cfg.APIToken,
		jira.WithProject(cfg.ProjectKey),
		jira.WithTimeout(defaultTimeout),
		jira.WithLogger(logging.New("jira")),
	)
}

func renderMode(markdown bool) report.Mode {
	if markdown {
		return report.Markdown
	}
	return report.ASCII
}
