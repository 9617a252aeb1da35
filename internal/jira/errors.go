package jira

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a ticket key does not exist (or is not visible to
// the authenticated user). Callers distinguish it from transport failures
// with errors.Is.
var ErrNotFound = errors.New("jira: ticket not found")

// APIError is a non-2xx response from the Jira REST API.
type APIError struct {
	Operation  string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: jira API status %d: %s", e.Operation, e.StatusCode, e.Message)
}

func newAPIError(operation string, status int, message string) *APIError {
	return &APIError{Operation: operation, StatusCode: status, Message: message}
}
