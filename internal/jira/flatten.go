package jira

import (
	"encoding/json"
	"strings"
)

// FlattenBody converts a raw issue body to plain text. API v2 returns plain
// strings; API v3 returns an Atlassian Document Format (ADF) tree. Anything
// that cannot be interpreted degrades to "" rather than failing the fetch.
func FlattenBody(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var node adfNode
	if err := json.Unmarshal(raw, &node); err == nil {
		var sb strings.Builder
		node.collect(&sb)
		return strings.TrimSpace(sb.String())
	}

	var nodes []adfNode
	if err := json.Unmarshal(raw, &nodes); err == nil {
		var sb strings.Builder
		for _, n := range nodes {
			n.collect(&sb)
		}
		return strings.TrimSpace(sb.String())
	}

	return ""
}

// adfNode is the subset of ADF needed to pull text out of a document tree.
type adfNode struct {
	Type    string    `json:"type"`
	Text    string    `json:"text"`
	Content []adfNode `json:"content"`
}

func (n adfNode) collect(sb *strings.Builder) {
	if n.Text != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.Text)
	}
	for _, child := range n.Content {
		child.collect(sb)
	}
}
