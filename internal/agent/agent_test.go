package agent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trpc.group/trpc-go/trpc-a2a-go/protocol"

	"github.com/tuannvm/jira-testgen-a2a/internal/config"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
	"github.com/tuannvm/jira-testgen-a2a/internal/testgen"
)

// taskHandleRecorder records every status update and artifact the processor
// emits for one task.
type taskHandleRecorder struct {
	states    []protocol.TaskState
	messages  []*protocol.Message
	artifacts []protocol.Artifact
}

func (h *taskHandleRecorder) UpdateStatus(state protocol.TaskState, msg *protocol.Message) error {
	h.states = append(h.states, state)
	h.messages = append(h.messages, msg)
	return nil
}

func (h *taskHandleRecorder) AddArtifact(artifact protocol.Artifact) error {
	h.artifacts = append(h.artifacts, artifact)
	return nil
}

func (h *taskHandleRecorder) IsStreamingRequest() bool {
	return false
}

type stubJiraClient struct {
	ticket *models.Ticket
	search *models.SearchResult
	err    error
}

func (s *stubJiraClient) FetchTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	return s.ticket, s.err
}

func (s *stubJiraClient) FetchTicketWithDiscussions(ctx context.Context, ticketID string) (*models.Ticket, error) {
	return s.ticket, s.err
}

func (s *stubJiraClient) GetComments(ctx context.Context, ticketID string) ([]models.Comment, error) {
	return nil, s.err
}

func (s *stubJiraClient) SearchTickets(ctx context.Context, jql string, maxResults int) (*models.SearchResult, error) {
	return s.search, s.err
}

func newTestAgent(t *testing.T, stub *stubJiraClient) *TestGenerationAgent {
	t.Helper()
	cfg := &config.Config{OutputDirectory: t.TempDir()}
	return &TestGenerationAgent{
		cfg:     cfg,
		service: testgen.NewService(cfg, stub),
	}
}

func stubTicket() *models.Ticket {
	return &models.Ticket{
		ID:          "10001",
		Key:         "PROJ-77",
		Summary:     "User login",
		Description: "Given user is registered\nWhen user submits credentials\nThen dashboard is shown",
		Discussions: []models.Comment{},
	}
}

func requestMessage(req models.ToolRequest) protocol.Message {
	return protocol.Message{Parts: []protocol.Part{
		&protocol.DataPart{
			Type: "data",
			Data: req,
			Metadata: map[string]interface{}{
				"content-type": "application/json",
			},
		},
	}}
}

// completedText asserts the task reached completed and returns the JSON text
// of the completion message.
func completedText(t *testing.T, h *taskHandleRecorder) string {
	t.Helper()
	require.NotEmpty(t, h.states)
	require.Equal(t, protocol.TaskState("completed"), h.states[len(h.states)-1])
	msg := h.messages[len(h.messages)-1]
	require.NotNil(t, msg)
	for _, part := range msg.Parts {
		switch p := part.(type) {
		case protocol.TextPart:
			return p.Text
		case *protocol.TextPart:
			return p.Text
		}
	}
	t.Fatal("completed message carries no text part")
	return ""
}

func TestProcess(t *testing.T) {
	t.Run("unknown operation fails the task", func(t *testing.T) {
		a := newTestAgent(t, &stubJiraClient{ticket: stubTicket()})
		handle := &taskHandleRecorder{}

		err := a.Process(context.Background(), "task-1", requestMessage(models.ToolRequest{Operation: "frobnicate", TicketID: "PROJ-77"}), handle)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown operation")
		assert.NotContains(t, handle.states, protocol.TaskState("completed"))
	})

	t.Run("unparseable message fails the task", func(t *testing.T) {
		a := newTestAgent(t, &stubJiraClient{ticket: stubTicket()})
		handle := &taskHandleRecorder{}
		message := protocol.Message{Parts: []protocol.Part{protocol.NewTextPart("just some prose")}}

		err := a.Process(context.Background(), "task-2", message, handle)

		require.Error(t, err)
	})

	t.Run("fetch_ticket completes with the ticket as JSON", func(t *testing.T) {
		a := newTestAgent(t, &stubJiraClient{ticket: stubTicket()})
		handle := &taskHandleRecorder{}

		err := a.Process(context.Background(), "task-3", requestMessage(models.ToolRequest{Operation: models.OpFetchTicket, TicketID: "PROJ-77"}), handle)

		require.NoError(t, err)
		assert.Contains(t, handle.states, protocol.TaskState("fetching_ticket"))

		var ticket models.Ticket
		require.NoError(t, json.Unmarshal([]byte(completedText(t, handle)), &ticket))
		assert.Equal(t, "PROJ-77", ticket.Key)
		assert.Equal(t, "User login", ticket.Summary)
	})

	t.Run("missing ticket id fails the task", func(t *testing.T) {
		a := newTestAgent(t, &stubJiraClient{ticket: stubTicket()})
		handle := &taskHandleRecorder{}

		err := a.Process(context.Background(), "task-4", requestMessage(models.ToolRequest{Operation: models.OpFetchTicket}), handle)

		require.Error(t, err)
	})

	t.Run("analyze_requirements completes with the analysis as JSON", func(t *testing.T) {
		a := newTestAgent(t, &stubJiraClient{ticket: stubTicket()})
		handle := &taskHandleRecorder{}

		err := a.Process(context.Background(), "task-5", requestMessage(models.ToolRequest{Operation: models.OpAnalyzeRequirements, TicketID: "PROJ-77"}), handle)

		require.NoError(t, err)
		var analysis models.Analysis
		require.NoError(t, json.Unmarshal([]byte(completedText(t, handle)), &analysis))
		assert.Equal(t, "PROJ-77", analysis.TicketKey)
		assert.NotEmpty(t, analysis.Scenarios)
		assert.Equal(t, len(analysis.Scenarios), analysis.EstimatedTests)
	})

	t.Run("generate_manual_test_plans attaches the file artifact", func(t *testing.T) {
		a := newTestAgent(t, &stubJiraClient{ticket: stubTicket()})
		handle := &taskHandleRecorder{}

		err := a.Process(context.Background(), "task-6", requestMessage(models.ToolRequest{Operation: models.OpGenerateManualPlans, TicketID: "PROJ-77"}), handle)

		require.NoError(t, err)
		require.Len(t, handle.artifacts, 1)
		artifact := handle.artifacts[0]
		require.NotNil(t, artifact.Name)
		assert.Equal(t, "manual-test-plans", *artifact.Name)

		var result models.GenerateResult
		require.NoError(t, json.Unmarshal([]byte(completedText(t, handle)), &result))
		assert.True(t, result.Success)
		assert.NotEmpty(t, result.Files)
	})

	t.Run("generate_test_scripts with unsupported language completes with a structured failure", func(t *testing.T) {
		a := newTestAgent(t, &stubJiraClient{ticket: stubTicket()})
		handle := &taskHandleRecorder{}

		err := a.Process(context.Background(), "task-7", requestMessage(models.ToolRequest{Operation: models.OpGenerateTestScripts, TicketID: "PROJ-77", Language: "go"}), handle)

		require.NoError(t, err)
		assert.Empty(t, handle.artifacts)

		var result models.GenerateResult
		require.NoError(t, json.Unmarshal([]byte(completedText(t, handle)), &result))
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "Unsupported language")
	})

	t.Run("search_tickets completes with the passthrough results", func(t *testing.T) {
		a := newTestAgent(t, &stubJiraClient{
			search: &models.SearchResult{Total: 1, Issues: []models.IssueSummary{{ID: "1", Key: "PROJ-1"}}},
		})
		handle := &taskHandleRecorder{}

		err := a.Process(context.Background(), "task-8", requestMessage(models.ToolRequest{Operation: models.OpSearchTickets, JQL: "project = PROJ"}), handle)

		require.NoError(t, err)
		var result models.SearchResult
		require.NoError(t, json.Unmarshal([]byte(completedText(t, handle)), &result))
		assert.Equal(t, 1, result.Total)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, "PROJ-1", result.Issues[0].Key)
	})
}
