package jira

import (
	"context"
	"net/http"

	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

// JiraClientInterface defines the operations a Jira client should implement
type JiraClientInterface interface {
	FetchTicket(ctx context.Context, ticketID string) (*models.Ticket, error)
	FetchTicketWithDiscussions(ctx context.Context, ticketID string) (*models.Ticket, error)
	GetComments(ctx context.Context, ticketID string) ([]models.Comment, error)
	SearchTickets(ctx context.Context, jql string, maxResults int) (*models.SearchResult, error)
}

// HTTPClient is the transport the client drives. *http.Client satisfies it;
// tests substitute a mock.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
