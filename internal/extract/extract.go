package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/tuannvm/jira-testgen-a2a/internal/common"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

// Fixed step text for discussion-derived and fallback scenarios.
const (
	genericGiven             = "User is on the application"
	discussionThen           = "Expected behavior should match the discussion requirement"
	fallbackWhen             = "User performs the action described in ticket"
	fallbackThen             = "Expected behavior occurs as per ticket description"
	discussionNameLimit      = 100
	discussionWhenLimit      = 150
	discussionMinMatchLength = 10
)

// Scenarios extracts test scenarios from a ticket description and its
// discussion summary. The result is never empty: when nothing matches, a
// single generic fallback scenario is synthesized so downstream rendering
// always has at least one scenario to work with.
func Scenarios(description, summary, discussionSummary string) []models.TestScenario {
	var scenarios []models.TestScenario

	// Combine description and discussion for comprehensive analysis
	combined := description + "\n\n" + discussionSummary

	for _, match := range gwtPattern.FindAllStringSubmatch(combined, -1) {
		scenarios = append(scenarios, models.TestScenario{
			Name:  summary,
			Given: []string{strings.TrimSpace(match[1])},
			When:  []string{strings.TrimSpace(match[2])},
			Then:  []string{strings.TrimSpace(match[3])},
		})
	}

	if discussionSummary != "" {
		scenarios = append(scenarios, FromDiscussions(discussionSummary)...)
	}

	if len(scenarios) == 0 {
		scenarios = append(scenarios, models.TestScenario{
			Name:  "Test " + summary,
			Given: []string{genericGiven},
			When:  []string{fallbackWhen},
			Then:  []string{fallbackThen},
		})
	}

	return scenarios
}

// FromDiscussions derives additional scenarios from discussion text. Each
// keyword-pattern match longer than ten characters becomes one scenario with
// generic given/then steps. Matches are kept in pattern order and are not
// deduplicated; repeated mentions yield repeated scenarios.
func FromDiscussions(discussionSummary string) []models.TestScenario {
	var scenarios []models.TestScenario

	for _, pattern := range discussionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(discussionSummary, -1) {
			text := strings.TrimSpace(match[1])
			if utf8.RuneCountInString(text) <= discussionMinMatchLength {
				continue
			}
			scenarios = append(scenarios, models.TestScenario{
				Name:  "Scenario from discussion: " + common.Truncate(text, discussionNameLimit),
				Given: []string{genericGiven},
				When:  []string{"User performs: " + common.Truncate(text, discussionWhenLimit)},
				Then:  []string{discussionThen},
			})
		}
	}

	return scenarios
}

// ClassifyComplexity rates a ticket by scenario count and description length.
// The low check runs before the medium check; anything past both is high.
func ClassifyComplexity(scenarios []models.TestScenario, description string) models.Complexity {
	count := len(scenarios)
	length := utf8.RuneCountInString(description)

	if count <= 2 && length < 500 {
		return models.ComplexityLow
	}
	if count <= 5 && length < 1500 {
		return models.ComplexityMedium
	}
	return models.ComplexityHigh
}

// Analyze runs the full extraction over a fetched ticket.
func Analyze(ticket *models.Ticket) *models.Analysis {
	scenarios := Scenarios(ticket.Description, ticket.Summary, ticket.DiscussionSummary)
	return &models.Analysis{
		TicketKey:          ticket.Key,
		Summary:            ticket.Summary,
		DiscussionSummary:  ticket.DiscussionSummary,
		Scenarios:          scenarios,
		EstimatedTests:     len(scenarios),
		Complexity:         ClassifyComplexity(scenarios, ticket.Description),
		AcceptanceCriteria: AcceptanceCriteria(ticket.Description),
	}
}
