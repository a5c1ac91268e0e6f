package common

import (
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/trpc-a2a-go/protocol"

	"github.com/tuannvm/jira-testgen-a2a/internal/logging"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

// ParseToolRequest extracts a tool request from a task message. Payloads
// arrive either as a DataPart carrying the request object or as a TextPart
// holding the same object as a JSON string; both part shapes come through
// the protocol layer as values or pointers depending on the sender.
func ParseToolRequest(message protocol.Message, req *models.ToolRequest) error {
	if len(message.Parts) == 0 {
		return fmt.Errorf("message has no parts")
	}

	for _, part := range message.Parts {
		// Try DataPart first (value or pointer)
		var dp *protocol.DataPart
		switch v := part.(type) {
		case protocol.DataPart:
			dp = &v
		case *protocol.DataPart:
			dp = v
		}
		if dp != nil && dp.Data != nil {
			raw, err := json.Marshal(dp.Data)
			if err != nil {
				logging.Warnf("Failed to marshal DataPart data: %v", err)
				continue
			}
			if err := json.Unmarshal(raw, req); err == nil && req.Operation != "" {
				return nil
			}
			var dataMap map[string]interface{}
			if err := json.Unmarshal(raw, &dataMap); err == nil {
				if err := requestFromMap(dataMap, req); err == nil {
					return nil
				}
			}
		}

		// Try TextPart (value or pointer)
		var tp *protocol.TextPart
		switch v := part.(type) {
		case protocol.TextPart:
			tp = &v
		case *protocol.TextPart:
			tp = v
		}
		if tp != nil && tp.Text != "" {
			if err := json.Unmarshal([]byte(tp.Text), req); err == nil && req.Operation != "" {
				return nil
			}
			var dataMap map[string]interface{}
			if err := json.Unmarshal([]byte(tp.Text), &dataMap); err == nil {
				if err := requestFromMap(dataMap, req); err == nil {
					return nil
				}
			}
		}
	}

	return fmt.Errorf("could not extract tool request from message")
}

// requestFromMap fills a tool request from a loosely keyed map, accepting
// the common alias spellings senders use.
func requestFromMap(data map[string]interface{}, req *models.ToolRequest) error {
	operation, ok := GetStringValue(data, "operation", "op", "tool")
	if !ok {
		return fmt.Errorf("no operation found in data")
	}
	req.Operation = operation

	if ticketID, ok := GetStringValue(data, "ticketId", "ticket_id", "id"); ok {
		req.TicketID = ticketID
	}
	if language, ok := GetStringValue(data, "language", "lang"); ok {
		req.Language = language
	}
	if outputPath, ok := GetStringValue(data, "outputPath", "output_path"); ok {
		req.OutputPath = outputPath
	}
	if jql, ok := GetStringValue(data, "jql", "query"); ok {
		req.JQL = jql
	}
	if maxResults, ok := getIntValue(data, "maxResults", "max_results"); ok {
		req.MaxResults = maxResults
	}

	return nil
}

// getIntValue retrieves an integer value from a map using multiple possible
// keys. JSON numbers decode as float64.
func getIntValue(data map[string]interface{}, keys ...string) (int, bool) {
	for _, key := range keys {
		if raw, ok := data[key]; ok {
			switch v := raw.(type) {
			case float64:
				return int(v), true
			case int:
				return v, true
			}
		}
	}
	return 0, false
}
