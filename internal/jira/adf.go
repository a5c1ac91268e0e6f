package jira

import (
	"encoding/json"
	"strings"
)

// ADFNode is one node of an Atlassian Document Format tree. Only the fields
// involved in text flattening are modeled; everything else is ignored.
type ADFNode struct {
	Type    string    `json:"type,omitempty"`
	Text    string    `json:"text,omitempty"`
	Content []ADFNode `json:"content,omitempty"`
}

// ExtractText flattens an ADF tree to plain text: depth-first in document
// order, collecting every node's text field, joined with single spaces.
// Nodes without text contribute nothing, so malformed trees degrade to "".
func ExtractText(node ADFNode) string {
	var parts []string
	var walk func(n ADFNode)
	walk = func(n ADFNode) {
		if n.Text != "" {
			parts = append(parts, n.Text)
		}
		for _, child := range n.Content {
			walk(child)
		}
	}
	walk(node)
	return strings.Join(parts, " ")
}

// textOrADF converts a raw JSON value that is either a plain string or an
// ADF document into plain text. Absent or unparseable values yield "".
func textOrADF(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}
	var node ADFNode
	if err := json.Unmarshal(raw, &node); err != nil {
		return ""
	}
	return ExtractText(node)
}
