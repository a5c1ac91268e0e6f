package agent

import (
	"trpc.group/trpc-go/trpc-a2a-go/server"

	"github.com/tuannvm/jira-testgen-a2a/internal/common"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

// Skills lists the agent card entry for each supported operation. Skill IDs
// are the operation names so a caller can map card entries straight onto
// request envelopes.
func Skills() []server.AgentSkill {
	return []server.AgentSkill{
		{
			ID:          models.OpFetchTicket,
			Name:        "Fetch Jira Ticket",
			Description: common.StringPtr("Fetch a Jira ticket with its comments and a flattened discussion summary"),
			Tags:        []string{"jira", "ticket"},
			Examples:    []string{`{"operation": "fetch_ticket", "ticketId": "PROJ-123"}`},
			InputModes:  []string{"text", "data"},
			OutputModes: []string{"text", "data"},
		},
		{
			ID:          models.OpAnalyzeRequirements,
			Name:        "Analyze Ticket Requirements",
			Description: common.StringPtr("Extract test scenarios, acceptance criteria, and a complexity rating from a ticket"),
			Tags:        []string{"jira", "analysis", "testing"},
			Examples:    []string{`{"operation": "analyze_requirements", "ticketId": "PROJ-123"}`},
			InputModes:  []string{"text", "data"},
			OutputModes: []string{"text", "data"},
		},
		{
			ID:          models.OpGenerateTestScripts,
			Name:        "Generate Test Scripts",
			Description: common.StringPtr("Generate a full automation suite (feature file, scaffolding, suite config, README, manual plans) for a ticket"),
			Tags:        []string{"testing", "automation", "generation"},
			Examples:    []string{`{"operation": "generate_test_scripts", "ticketId": "PROJ-123", "language": "java"}`},
			InputModes:  []string{"text", "data"},
			OutputModes: []string{"text", "data"},
		},
		{
			ID:          models.OpSearchTickets,
			Name:        "Search Jira Tickets",
			Description: common.StringPtr("Run a JQL search and return the matching issues"),
			Tags:        []string{"jira", "search"},
			Examples:    []string{`{"operation": "search_tickets", "jql": "project = PROJ AND status = Open", "maxResults": 10}`},
			InputModes:  []string{"text", "data"},
			OutputModes: []string{"text", "data"},
		},
		{
			ID:          models.OpGenerateGherkin,
			Name:        "Generate Gherkin Features",
			Description: common.StringPtr("Render the Gherkin feature file for a ticket, optionally writing it to disk"),
			Tags:        []string{"testing", "gherkin", "generation"},
			Examples:    []string{`{"operation": "generate_gherkin_features", "ticketId": "PROJ-123"}`},
			InputModes:  []string{"text", "data"},
			OutputModes: []string{"text", "data"},
		},
		{
			ID:          models.OpGenerateManualPlans,
			Name:        "Generate Manual Test Plans",
			Description: common.StringPtr("Render the manual test plan documents for a ticket, including the fixed supplementary coverage set"),
			Tags:        []string{"testing", "manual", "generation"},
			Examples:    []string{`{"operation": "generate_manual_test_plans", "ticketId": "PROJ-123"}`},
			InputModes:  []string{"text", "data"},
			OutputModes: []string{"text", "data"},
		},
	}
}
