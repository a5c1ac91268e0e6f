package jira

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UpstreamError reports a failed Jira API call. Messages carries the
// errorMessages list from the response body when the tracker returned one.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Messages   []string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := "failed to " + e.Operation
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": status %d", e.StatusCode)
	}
	if len(e.Messages) > 0 {
		return msg + ": " + strings.Join(e.Messages, "; ")
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NotFoundError reports a ticket ID or key the tracker does not know.
type NotFoundError struct {
	Key      string
	Messages []string
}

func (e *NotFoundError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("ticket %s not found: %s", e.Key, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("ticket %s not found", e.Key)
}

// upstreamMessages pulls the errorMessages list out of a Jira error body.
// Anything unparseable yields nil.
func upstreamMessages(body []byte) []string {
	var parsed struct {
		ErrorMessages []string `json:"errorMessages"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil
	}
	return parsed.ErrorMessages
}
