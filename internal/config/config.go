// Package config loads the Jira connection settings from a YAML or JSON
// file, falling back to environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the collaborator connection settings. The similarity engine
// itself is configuration-free; weights and vocabularies are compiled in.
type Config struct {
	JiraURL    string `yaml:"jira_url" json:"jira_url"`
	Username   string `yaml:"username" json:"username"`
	APIToken   string `yaml:"api_token" json:"api_token"`
	ProjectKey string `yaml:"project_key" json:"project_key"`

	LogLevel  string `yaml:"log_level" json:"log_level"`
	LogFormat string `yaml:"log_format" json:"log_format"`
}

// Environment variable names consulted when no config file is given.
const (
	EnvURL      = "JIRA_URL"
	EnvUsername = "JIRA_USERNAME"
	EnvAPIToken = "JIRA_API_TOKEN"
	EnvProject  = "JIRA_PROJECT"
)

// Load reads configuration from path when non-empty, otherwise from the
// environment. File values take precedence; missing file fields are filled
// from the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.fillFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath reads a config file (YAML or JSON). Format is detected by
// extension (.yaml/.yml/.json) or by content (leading brace means JSON).
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse parses config bytes. ext is the file extension as a format hint;
// empty means detect from content.
func Parse(data []byte, ext string) (*Config, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}

	var useJSON bool
	switch ext {
	case ".json":
		useJSON = true
	case ".yaml":
		useJSON = false
	default:
		useJSON = strings.HasPrefix(strings.TrimSpace(string(data)), "{")
	}

	var cfg Config
	if useJSON {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config json: %w", err)
		}
		return &cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the collaborator can be constructed.
func (c *Config) Validate() error {
	if c.JiraURL == "" {
		return fmt.Errorf("config: jira_url is required (set %s or provide a config file)", EnvURL)
	}
	if c.Username == "" {
		return fmt.Errorf("config: username is required (set %s or provide a config file)", EnvUsername)
	}
	if c.APIToken == "" {
		return fmt.Errorf("config: api_token is required (set %s or provide a config file)", EnvAPIToken)
	}
	return nil
}

func (c *Config) fillFromEnv() {
	if c.JiraURL == "" {
		c.JiraURL = os.Getenv(EnvURL)
	}
	if c.Username == "" {
		c.Username = os.Getenv(EnvUsername)
	}
	if c.APIToken == "" {
		c.APIToken = os.Getenv(EnvAPIToken)
	}
	if c.ProjectKey == "" {
		c.ProjectKey = os.Getenv(EnvProject)
	}
	if c.ProjectKey == "" {
		c.ProjectKey = "PLAT"
	}
}
