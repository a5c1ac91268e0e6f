package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"trpc.group/trpc-go/trpc-a2a-go/protocol"
	"trpc.group/trpc-go/trpc-a2a-go/taskmanager"

	"github.com/tuannvm/jira-testgen-a2a/internal/common"
	"github.com/tuannvm/jira-testgen-a2a/internal/config"
	"github.com/tuannvm/jira-testgen-a2a/internal/jira"
	"github.com/tuannvm/jira-testgen-a2a/internal/logging"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
	"github.com/tuannvm/jira-testgen-a2a/internal/testgen"
)

const agentDescription = "Generates Gherkin features, test automation scaffolding, and manual test plans from Jira tickets"

// TestGenerationAgent implements the TaskProcessor interface from trpc-a2a-go.
// Each incoming task names one tool operation; the agent dispatches it to the
// test generation service and completes the task with the JSON result.
type TestGenerationAgent struct {
	cfg     *config.Config
	service *testgen.Service
}

// NewTestGenerationAgent creates a new TestGenerationAgent
func NewTestGenerationAgent(cfg *config.Config) *TestGenerationAgent {
	jiraClient := jira.NewClient(cfg, nil)
	return &TestGenerationAgent{
		cfg:     cfg,
		service: testgen.NewService(cfg, jiraClient),
	}
}

// Process implements the TaskProcessor interface from trpc-a2a-go
func (a *TestGenerationAgent) Process(ctx context.Context, taskID string, message protocol.Message, handle taskmanager.TaskHandle) error {
	logging.Infof("Received task %s", taskID)

	// Update status to processing
	if err := handle.UpdateStatus(protocol.TaskState("processing"), nil); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	var req models.ToolRequest
	if err := common.ParseToolRequest(message, &req); err != nil {
		logging.Errorf("Failed to parse tool request: %v", err)
		return fmt.Errorf("failed to parse tool request: %w", err)
	}

	logging.Infof("Processing operation %s (ticket %q) for task %s", req.Operation, req.TicketID, taskID)

	switch req.Operation {
	case models.OpFetchTicket:
		return a.processFetchTicket(ctx, taskID, &req, handle)
	case models.OpAnalyzeRequirements:
		return a.processAnalyzeRequirements(ctx, taskID, &req, handle)
	case models.OpGenerateTestScripts:
		return a.processGenerateTestScripts(ctx, taskID, &req, handle)
	case models.OpSearchTickets:
		return a.processSearchTickets(ctx, taskID, &req, handle)
	case models.OpGenerateGherkin:
		return a.processGenerateGherkin(ctx, taskID, &req, handle)
	case models.OpGenerateManualPlans:
		return a.processGenerateManualPlans(ctx, taskID, &req, handle)
	}

	return fmt.Errorf("unknown operation: %s", req.Operation)
}

func (a *TestGenerationAgent) processFetchTicket(ctx context.Context, taskID string, req *models.ToolRequest, handle taskmanager.TaskHandle) error {
	if req.TicketID == "" {
		return fmt.Errorf("ticket id is required for %s", models.OpFetchTicket)
	}
	if err := handle.UpdateStatus(protocol.TaskState("fetching_ticket"), nil); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	ticket, err := a.service.FetchTicket(ctx, req.TicketID)
	if err != nil {
		return fmt.Errorf("failed to fetch ticket %s: %w", req.TicketID, err)
	}

	return a.completeTask(taskID, handle, ticket)
}

func (a *TestGenerationAgent) processAnalyzeRequirements(ctx context.Context, taskID string, req *models.ToolRequest, handle taskmanager.TaskHandle) error {
	if req.TicketID == "" {
		return fmt.Errorf("ticket id is required for %s", models.OpAnalyzeRequirements)
	}
	if err := handle.UpdateStatus(protocol.TaskState("analyzing_requirements"), nil); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	analysis, err := a.service.AnalyzeTicket(ctx, req.TicketID)
	if err != nil {
		return fmt.Errorf("failed to analyze ticket %s: %w", req.TicketID, err)
	}

	return a.completeTask(taskID, handle, analysis)
}

func (a *TestGenerationAgent) processGenerateTestScripts(ctx context.Context, taskID string, req *models.ToolRequest, handle taskmanager.TaskHandle) error {
	if req.TicketID == "" {
		return fmt.Errorf("ticket id is required for %s", models.OpGenerateTestScripts)
	}
	if err := handle.UpdateStatus(protocol.TaskState("generating_tests"), nil); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	language := models.Language(req.Language)
	if req.Language == "" {
		language = models.LanguageJava
	}

	result, err := a.service.GenerateTests(ctx, req.TicketID, language, req.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to generate tests for %s: %w", req.TicketID, err)
	}

	if result.Success {
		if err := addResultArtifact(handle, "generated-tests", "Generated test suite files", result); err != nil {
			return err
		}
	}

	return a.completeTask(taskID, handle, result)
}

func (a *TestGenerationAgent) processSearchTickets(ctx context.Context, taskID string, req *models.ToolRequest, handle taskmanager.TaskHandle) error {
	if req.JQL == "" {
		return fmt.Errorf("jql is required for %s", models.OpSearchTickets)
	}
	if err := handle.UpdateStatus(protocol.TaskState("searching_tickets"), nil); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	results, err := a.service.SearchTickets(ctx, req.JQL, req.MaxResults)
	if err != nil {
		return fmt.Errorf("failed to search tickets: %w", err)
	}

	return a.completeTask(taskID, handle, results)
}

func (a *TestGenerationAgent) processGenerateGherkin(ctx context.Context, taskID string, req *models.ToolRequest, handle taskmanager.TaskHandle) error {
	if req.TicketID == "" {
		return fmt.Errorf("ticket id is required for %s", models.OpGenerateGherkin)
	}
	if err := handle.UpdateStatus(protocol.TaskState("generating_features"), nil); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	result, err := a.service.GenerateGherkin(ctx, req.TicketID, req.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to generate feature file for %s: %w", req.TicketID, err)
	}

	if req.OutputPath != "" {
		if err := addResultArtifact(handle, "feature-file", "Generated Gherkin feature file", result); err != nil {
			return err
		}
	}

	return a.completeTask(taskID, handle, result)
}

func (a *TestGenerationAgent) processGenerateManualPlans(ctx context.Context, taskID string, req *models.ToolRequest, handle taskmanager.TaskHandle) error {
	if req.TicketID == "" {
		return fmt.Errorf("ticket id is required for %s", models.OpGenerateManualPlans)
	}
	if err := handle.UpdateStatus(protocol.TaskState("generating_test_plans"), nil); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	result, err := a.service.GenerateManualPlans(ctx, req.TicketID, req.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to generate manual test plans for %s: %w", req.TicketID, err)
	}

	if err := addResultArtifact(handle, "manual-test-plans", "Generated manual test plan files", result); err != nil {
		return err
	}

	return a.completeTask(taskID, handle, result)
}

// completeTask marshals the payload and completes the task with it as a text
// part.
func (a *TestGenerationAgent) completeTask(taskID string, handle taskmanager.TaskHandle, payload interface{}) error {
	resultJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	textPart := protocol.NewTextPart(string(resultJSON))
	responseMsg := &protocol.Message{
		Parts: []protocol.Part{textPart},
	}

	if err := handle.UpdateStatus(protocol.TaskState("completed"), responseMsg); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	logging.Infof("Task %s completed successfully", taskID)
	return nil
}

// addResultArtifact records the operation result as a task artifact carrying
// a JSON data part.
func addResultArtifact(handle taskmanager.TaskHandle, name, description string, payload interface{}) error {
	dataPart := protocol.DataPart{
		Type: "data",
		Data: payload,
		Metadata: map[string]interface{}{
			"content-type": "application/json",
		},
	}
	artifact := protocol.Artifact{
		Name:        common.StringPtr(name),
		Description: common.StringPtr(description),
		Parts:       []protocol.Part{&dataPart},
	}
	if err := handle.AddArtifact(artifact); err != nil {
		return fmt.Errorf("failed to record artifact: %w", err)
	}
	return nil
}

// StartServer runs the A2A server for this agent until ctx is canceled.
func (a *TestGenerationAgent) StartServer(ctx context.Context) error {
	srv, err := common.SetupServer(common.SetupServerOptions{
		AgentName:        a.cfg.AgentName,
		AgentDescription: agentDescription,
		AgentVersion:     a.cfg.AgentVersion,
		AgentURL:         a.cfg.AgentURL,
		Organization:     a.cfg.AgentOrganization,
		AuthType:         a.cfg.AuthType,
		JWTSecret:        a.cfg.JWTSecret,
		APIKey:           a.cfg.APIKey,
		Processor:        a,
		Skills:           Skills(),
	})
	if err != nil {
		return fmt.Errorf("failed to setup server: %w", err)
	}

	return common.StartServer(ctx, srv, a.cfg.ServerHost, a.cfg.ServerPort)
}
