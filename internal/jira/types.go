package jira

import "encoding/json"

// Ticket is the collaborator-neutral view of a Jira issue. Description is
// always plain text: rich-text (ADF) bodies are flattened at decode time.
type Ticket struct {
	Key                 string   `json:"key"`
	Summary             string   `json:"summary"`
	Description         string   `json:"description"`
	IssueType           string   `json:"issue_type"`
	Priority            string   `json:"priority"`
	Status              string   `json:"status"`
	Assignee            string   `json:"assignee"`
	Reporter            string   `json:"reporter"`
	Created             string   `json:"created"`
	Updated             string   `json:"updated"`
	Labels              []string `json:"labels"`
	Components          []string `json:"components"`
	Project             string   `json:"project"`
	EscalationWeightage string   `json:"escalation_weightage,omitempty"`
}

// Comment is a single issue comment with its body flattened to plain text.
type Comment struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Body    string `json:"body"`
	Created string `json:"created"`
	Updated string `json:"updated"`
}

// --- REST wire types ---

type issueResource struct {
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Summary     string          `json:"summary"`
	Description json.RawMessage `json:"description"`
	IssueType   namedField      `json:"issuetype"`
	Priority    namedField      `json:"priority"`
	Status      namedField      `json:"status"`
	Assignee    userField       `json:"assignee"`
	Reporter    userField       `json:"reporter"`
	Created     string          `json:"created"`
	Updated     string          `json:"updated"`
	Labels      []string        `json:"labels"`
	Components  []namedField    `json:"components"`
	Project     keyedField      `json:"project"`

	// Escalation weightage lives in a custom field on some instances.
	EscalationWeightage       json.RawMessage `json:"escalation_weightage"`
	CustomEscalationWeightage json.RawMessage `json:"customfield_escalation_weightage"`
}

type namedField struct {
	Name string `json:"name"`
}

type keyedField struct {
	Key string `json:"key"`
}

type userField struct {
	DisplayName string `json:"displayName"`
}

type searchResult struct {
	Issues []issueResource `json:"issues"`
}

type commentList struct {
	Comments []commentResource `json:"comments"`
}

type commentResource struct {
	ID      string          `json:"id"`
	Author  userField       `json:"author"`
	Body    json.RawMessage `json:"body"`
	Created string          `json:"created"`
	Updated string          `json:"updated"`
}

type errorRS struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// ticketFromIssue maps a decoded issue resource to a Ticket. Rich-text
// descriptions are flattened; malformed bodies degrade to "".
func ticketFromIssue(ir issueResource) Ticket {
	return Ticket{
		Key:                 ir.Key,
		Summary:             ir.Fields.Summary,
		Description:         FlattenBody(ir.Fields.Description),
		IssueType:           ir.Fields.IssueType.Name,
		Priority:            ir.Fields.Priority.Name,
		Status:              ir.Fields.Status.Name,
		Assignee:            ir.Fields.Assignee.DisplayName,
		Reporter:            ir.Fields.Reporter.DisplayName,
		Created:             ir.Fields.Created,
		Updated:             ir.Fields.Updated,
		Labels:              ir.Fields.Labels,
		Components:          namesOf(ir.Fields.Components),
		Project:             ir.Fields.Project.Key,
		EscalationWeightage: scalarString(ir.Fields.CustomEscalationWeightage, ir.Fields.EscalationWeightage),
	}
}

func namesOf(fields []namedField) []string {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

// scalarString returns the first raw value that decodes to a non-empty
// scalar, rendered as a string.
func scalarString(raws ...json.RawMessage) string {
	for _, raw := range raws {
		if len(raw) == 0 || string(raw) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s != "" {
				return s
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String()
		}
	}
	return ""
}
