package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tuannvm/jira-testgen-a2a/internal/config"
	"github.com/tuannvm/jira-testgen-a2a/internal/logging"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

const searchFields = "summary,status,issuetype,priority,assignee,created"

// Client represents a Jira REST v3 API client
type Client struct {
	config     *config.Config
	httpClient HTTPClient
}

// NewClient creates a new Jira client. A nil httpClient falls back to a
// plain client with a 30 second timeout.
func NewClient(cfg *config.Config, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: time.Second * 30}
	}
	return &Client{
		config:     cfg,
		httpClient: httpClient,
	}
}

// FetchTicket fetches a Jira ticket by its ID or key
func (c *Client) FetchTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	op := "fetch ticket " + ticketID
	endpoint := fmt.Sprintf("%s/rest/api/3/issue/%s?expand=renderedFields",
		c.config.JiraBaseURL, url.PathEscape(ticketID))

	body, status, err := c.get(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &NotFoundError{Key: ticketID, Messages: upstreamMessages(body)}
	}
	if status < 200 || status >= 300 {
		return nil, &UpstreamError{Operation: op, StatusCode: status, Messages: upstreamMessages(body)}
	}

	ticket, err := decodeTicket(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ticket response: %w", err)
	}
	return ticket, nil
}

// GetComments fetches the comments posted on a ticket
func (c *Client) GetComments(ctx context.Context, ticketID string) ([]models.Comment, error) {
	op := "fetch comments for " + ticketID
	endpoint := fmt.Sprintf("%s/rest/api/3/issue/%s/comment",
		c.config.JiraBaseURL, url.PathEscape(ticketID))

	body, status, err := c.get(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &UpstreamError{Operation: op, StatusCode: status, Messages: upstreamMessages(body)}
	}

	var parsed struct {
		Comments []commentEntry `json:"comments"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode comments response: %w", err)
	}

	comments := make([]models.Comment, 0, len(parsed.Comments))
	for _, entry := range parsed.Comments {
		author := "Unknown"
		if entry.Author != nil && entry.Author.DisplayName != "" {
			author = entry.Author.DisplayName
		}
		comments = append(comments, models.Comment{
			ID:      entry.ID,
			Author:  author,
			Body:    textOrADF(entry.Body),
			Created: entry.Created,
		})
	}
	return comments, nil
}

// FetchTicketWithDiscussions fetches a ticket along with its comments. If the
// comment fetch fails, the ticket is returned with empty discussions.
func (c *Client) FetchTicketWithDiscussions(ctx context.Context, ticketID string) (*models.Ticket, error) {
	ticket, err := c.FetchTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	comments, err := c.GetComments(ctx, ticketID)
	if err != nil {
		// If fetching comments fails, continue with empty discussions
		logging.Warnf("Failed to fetch comments for %s, continuing without discussions: %v", ticketID, err)
		ticket.Discussions = []models.Comment{}
		ticket.DiscussionSummary = ""
		return ticket, nil
	}

	ticket.Discussions = comments
	ticket.DiscussionSummary = SummarizeDiscussions(comments)
	return ticket, nil
}

// SearchTickets runs a JQL search. maxResults values of zero or below fall
// back to 10. JQL syntax is not validated locally; the tracker decides.
func (c *Client) SearchTickets(ctx context.Context, jql string, maxResults int) (*models.SearchResult, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{}
	params.Set("jql", jql)
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("fields", searchFields)
	endpoint := fmt.Sprintf("%s/rest/api/3/search?%s", c.config.JiraBaseURL, params.Encode())

	body, status, err := c.get(ctx, "search tickets", endpoint)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &UpstreamError{Operation: "search tickets", StatusCode: status, Messages: upstreamMessages(body)}
	}

	var result models.SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &result, nil
}

// SummarizeDiscussions renders comments as "{author}: {text}" paragraphs,
// blank-line separated. Comments whose body flattens to nothing are skipped.
func SummarizeDiscussions(comments []models.Comment) string {
	if len(comments) == 0 {
		return ""
	}
	var points []string
	for _, comment := range comments {
		text := strings.TrimSpace(comment.Body)
		if text == "" {
			continue
		}
		points = append(points, fmt.Sprintf("%s: %s", comment.Author, text))
	}
	return strings.Join(points, "\n\n")
}

// get performs an authenticated GET and returns the body and status code.
// Transport failures come back as *UpstreamError; HTTP status handling stays
// with the caller.
func (c *Client) get(ctx context.Context, op, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	c.addAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &UpstreamError{Operation: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &UpstreamError{Operation: op, StatusCode: resp.StatusCode, Err: err}
	}
	return body, resp.StatusCode, nil
}

// addAuthHeader adds authentication headers to the request
func (c *Client) addAuthHeader(req *http.Request) {
	// Basic authentication with email and API token
	auth := base64.StdEncoding.EncodeToString([]byte(c.config.JiraEmail + ":" + c.config.JiraAPIToken))
	req.Header.Set("Authorization", "Basic "+auth)
}

type commentEntry struct {
	ID      string          `json:"id"`
	Author  *userEntity     `json:"author"`
	Body    json.RawMessage `json:"body"`
	Created string          `json:"created"`
}

type namedEntity struct {
	Name string `json:"name"`
}

type userEntity struct {
	DisplayName string `json:"displayName"`
}

type issueResponse struct {
	ID     string      `json:"id"`
	Key    string      `json:"key"`
	Fields issueFields `json:"fields"`
}

type issueFields struct {
	Summary     string          `json:"summary"`
	Description json.RawMessage `json:"description"`
	Status      *namedEntity    `json:"status"`
	Priority    *namedEntity    `json:"priority"`
	Assignee    *userEntity     `json:"assignee"`
	Created     string          `json:"created"`
}

// decodeTicket builds a Ticket from an issue response body. The typed fields
// are a projection; the raw field set rides along untouched in Fields.
func decodeTicket(body []byte) (*models.Ticket, error) {
	var issue issueResponse
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, err
	}

	var raw struct {
		Fields map[string]interface{} `json:"fields"`
	}
	_ = json.Unmarshal(body, &raw)

	ticket := &models.Ticket{
		ID:          issue.ID,
		Key:         issue.Key,
		Summary:     issue.Fields.Summary,
		Description: textOrADF(issue.Fields.Description),
		Created:     issue.Fields.Created,
		Fields:      raw.Fields,
		Discussions: []models.Comment{},
	}
	if issue.Fields.Status != nil {
		ticket.Status = issue.Fields.Status.Name
	}
	if issue.Fields.Priority != nil {
		ticket.Priority = issue.Fields.Priority.Name
	}
	if issue.Fields.Assignee != nil {
		ticket.Assignee = issue.Fields.Assignee.DisplayName
	}
	return ticket, nil
}
