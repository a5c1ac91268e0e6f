package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"time"

	"trpc.group/trpc-go/trpc-a2a-go/client"
	"trpc.group/trpc-go/trpc-a2a-go/protocol"

	"github.com/tuannvm/jira-testgen-a2a/internal/common"
	"github.com/tuannvm/jira-testgen-a2a/internal/config"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

// Smoke tester for a running testgen agent: sends one task per operation and
// prints the results. Point it at a real ticket with -ticket.
func main() {
	ticketID := flag.String("ticket", "PROJ-123", "Ticket ID to exercise")
	jql := flag.String("jql", "project = PROJ ORDER BY created DESC", "JQL for the search operation")
	outputPath := flag.String("output", "", "Output path passed to generation operations")
	flag.Parse()

	cfg := config.NewConfig()

	a2aClient, err := common.SetupA2AClient(cfg, cfg.AgentURL)
	if err != nil {
		log.Fatalf("Failed to create A2A client: %v", err)
	}

	requests := []models.ToolRequest{
		{Operation: models.OpFetchTicket, TicketID: *ticketID},
		{Operation: models.OpAnalyzeRequirements, TicketID: *ticketID},
		{Operation: models.OpSearchTickets, JQL: *jql, MaxResults: 5},
		{Operation: models.OpGenerateGherkin, TicketID: *ticketID, OutputPath: *outputPath},
		{Operation: models.OpGenerateTestScripts, TicketID: *ticketID, Language: "java", OutputPath: *outputPath},
		{Operation: models.OpGenerateManualPlans, TicketID: *ticketID, OutputPath: *outputPath},
	}

	for _, req := range requests {
		log.Printf("\nRunning operation: %s", req.Operation)
		if err := runOperation(a2aClient, req); err != nil {
			log.Printf("❌ %s failed: %v", req.Operation, err)
		}
		log.Println("----------------------------------")
	}
}

func runOperation(a2aClient *client.A2AClient, req models.ToolRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Send the request as a DataPart to avoid double-encoding the JSON
	dataPart := protocol.DataPart{
		Type: "data",
		Data: req,
		Metadata: map[string]interface{}{
			"content-type": "application/json",
		},
	}
	message := protocol.Message{
		Parts: []protocol.Part{&dataPart},
	}

	resp, err := a2aClient.SendTasks(ctx, protocol.SendTaskParams{Message: message})
	if err != nil {
		return err
	}
	log.Printf("Task sent, ID: %s", resp.ID)

	// Poll for completion
	for {
		time.Sleep(1 * time.Second)
		if ctx.Err() != nil {
			log.Printf("❌ Timed out waiting for task %s", resp.ID)
			return ctx.Err()
		}

		task, err := a2aClient.GetTasks(ctx, protocol.TaskQueryParams{ID: resp.ID})
		if err != nil {
			return err
		}
		log.Printf("Task status: %s", task.Status.State)

		switch task.Status.State {
		case "completed":
			printResult(task)
			return nil
		case "failed":
			log.Printf("❌ Task failed")
			return nil
		}
	}
}

func printResult(task *protocol.Task) {
	log.Printf("✅ Task completed")

	if task.Status.Message != nil {
		for _, part := range task.Status.Message.Parts {
			if textPart, ok := part.(*protocol.TextPart); ok {
				var pretty map[string]interface{}
				if err := json.Unmarshal([]byte(textPart.Text), &pretty); err == nil {
					formatted, _ := json.MarshalIndent(pretty, "", "  ")
					log.Printf("Result:\n%s", formatted)
				} else {
					log.Printf("Result: %s", textPart.Text)
				}
			}
		}
	}

	for i, artifact := range task.Artifacts {
		name := ""
		if artifact.Name != nil {
			name = *artifact.Name
		}
		log.Printf("Artifact %d: %s (%d parts)", i+1, name, len(artifact.Parts))
	}
}
