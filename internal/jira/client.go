// Package jira is the issue-tracker collaborator: ticket lookup by key,
// JQL-based search, and comment retrieval over the Jira Cloud REST API.
// Descriptions and comment bodies are flattened to plain text before they
// leave this package.
package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a high-level client for the Jira REST API. Authentication is
// basic auth with an API token, per Atlassian Cloud convention.
type Client struct {
	baseURL    string
	username   string
	apiToken   string
	project    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	project    string
}

// New creates a Client for the given Jira instance. Username and apiToken
// are sent as basic auth on every request.
func New(baseURL, username, apiToken string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("jira: baseURL is required")
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	cfg := &clientConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	project := cfg.project
	if project == "" {
		project = "PLAT"
	}

	return &Client{
		baseURL:    baseURL,
		username:   username,
		apiToken:   apiToken,
		project:    project,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets a timeout on the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		cfg.timeout = d
		return nil
	}
}

// WithProject sets the default project key for unconstrained searches.
// Defaults to PLAT.
func WithProject(key string) Option {
	return func(cfg *clientConfig) error {
		cfg.project = key
		return nil
	}
}

// Project returns the client's default project key.
func (c *Client) Project() string {
	return c.project
}

// BrowseURL returns the browse link for a ticket key.
func (c *Client) BrowseURL(key string) string {
	return c.baseURL + "/browse/" + key
}

// doJSON executes an HTTP request and decodes the JSON response into dst.
// Non-2xx responses become an *APIError.
func (c *Client) doJSON(ctx context.Context, method, u, operation string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", operation, err)
	}
	req.SetBasicAuth(c.username, c.apiToken)
	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "API request", "operation", operation, "method", method, "url", u)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do request: %w", operation, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "API response", "operation", operation, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var errRS errorRS
		if json.Unmarshal(respBody, &errRS) == nil && len(errRS.ErrorMessages) > 0 {
			return newAPIError(operation, resp.StatusCode, strings.Join(errRS.ErrorMessages, "; "))
		}
		msg := string(respBody)
		if msg == "" {
			msg = resp.Status
		}
		return newAPIError(operation, resp.StatusCode, msg)
	}

	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return fmt.Errorf("%s: decode response: %w", operation, err)
		}
	}
	return nil
}

// GetTicket fetches a single ticket by key. It tries API v2 first and falls
// back to v3, matching instances that have not migrated. A 404 from both
// versions is reported as ErrNotFound.
func (c *Client) GetTicket(ctx context.Context, key string) (*Ticket, error) {
	var lastErr error
	for _, version := range []string{"2", "3"} {
		u := fmt.Sprintf("%s/rest/api/%s/issue/%s", c.baseURL, version, url.PathEscape(key))
		var ir issueResource
		err := c.doJSON(ctx, http.MethodGet, u, "get ticket", &ir)
		if err == nil {
			t := ticketFromIssue(ir)
			return &t, nil
		}
		lastErr = err
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			continue
		}
		// Transport errors (incl. cancellation) will not improve on retry.
		return nil, err
	}

	var apiErr *APIError
	if errors.As(lastErr, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("get ticket %s: %w", key, ErrNotFound)
	}
	return nil, lastErr
}

// GetComments fetches the comments of a ticket. API v3 first, one fallback
// to v2 on any API error (some on-prem instances 404 the whole v3 tree).
// A 404 from both versions means no comments, not a failure. Bodies are
// flattened to plain text.
func (c *Client) GetComments(ctx context.Context, key string) ([]Comment, error) {
	var lastErr error
	for _, version := range []string{"3", "2"} {
		u := fmt.Sprintf("%s/rest/api/%s/issue/%s/comment", c.baseURL, version, url.PathEscape(key))
		var list commentList
		err := c.doJSON(ctx, http.MethodGet, u, "get comments", &list)
		if err != nil {
			lastErr = err
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				continue
			}
			return nil, err
		}
		comments := make([]Comment, 0, len(list.Comments))
		for _, cr := range list.Comments {
			comments = append(comments, Comment{
				ID:      cr.ID,
				Author:  cr.Author.DisplayName,
				Body:    FlattenBody(cr.Body),
				Created: cr.Created,
				Updated: cr.Updated,
			})
		}
		return comments, nil
	}

	var apiErr *APIError
	if errors.As(lastErr, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	return nil, lastErr
}

// searchFields is the field list requested on every search.
const searchFields = "key,summary,description,issuetype,priority,status,components,labels,project,assignee,reporter,created,updated"

// SearchJQL runs a raw JQL query and returns the matching tickets.
func (c *Client) SearchJQL(ctx context.Context, jql string, maxResults int) ([]Ticket, error) {
	q := url.Values{}
	q.Set("jql", jql)
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("fields", searchFields)
	u := fmt.Sprintf("%s/rest/api/3/search/jql?%s", c.baseURL, q.Encode())

	c.logger.InfoContext(ctx, "searching tickets", "jql", jql, "max_results", maxResults)

	var sr searchResult
	if err := c.doJSON(ctx, http.MethodGet, u, "search", &sr); err != nil {
		return nil, err
	}
	tickets := make([]Ticket, 0, len(sr.Issues))
	for _, ir := range sr.Issues {
		tickets = append(tickets, ticketFromIssue(ir))
	}
	c.logger.DebugContext(ctx, "search complete", "found", len(tickets))
	return tickets, nil
}

// Search searches summary and description of the client's default project
// for the query text, newest first, closed tickets included. An empty query
// lists the whole project.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Ticket, error) {
	var jql string
	if strings.TrimSpace(query) == "" {
		jql = fmt.Sprintf("project = %s ORDER BY created DESC", c.project)
	} else {
		jql = fmt.Sprintf("project = %s AND (summary ~ %q OR description ~ %q) ORDER BY created DESC",
			c.project, query, query)
	}
	return c.SearchJQL(ctx, jql, maxResults)
}

// SearchProjectsIssueTypes searches summary and description constrained to
// the given projects and issue types. Issue types containing spaces or
// hyphens are quoted for JQL.
func (c *Client) SearchProjectsIssueTypes(ctx context.Context, query string, projects, issueTypes []string, maxResults int) ([]Ticket, error) {
	quoted := make([]string, 0, len(issueTypes))
	for _, it := range issueTypes {
		if strings.ContainsAny(it, " -") {
			it = `"` + it + `"`
		}
		quoted = append(quoted, it)
	}

	var jql string
	if strings.TrimSpace(query) == "" {
		jql = fmt.Sprintf("(project in (%s) AND issuetype in (%s)) ORDER BY created DESC",
			strings.Join(projects, ", "), strings.Join(quoted, ", "))
	} else {
		jql = fmt.Sprintf("(project in (%s) AND issuetype in (%s) AND (summary ~ %q OR description ~ %q)) ORDER BY created DESC",
			strings.Join(projects, ", "), strings.Join(quoted, ", "), query, query)
	}
	return c.SearchJQL(ctx, jql, maxResults)
}
