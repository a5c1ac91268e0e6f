package render

import (
	"strings"

	"github.com/tuannvm/jira-testgen-a2a/internal/common"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

// FeatureFile renders the Gherkin feature file for an analysis: a fixed
// header, an optional comment block with the first three discussion
// paragraphs, then one scenario block per extracted scenario in order.
func (r *Renderer) FeatureFile(analysis *models.Analysis) string {
	lines := []string{
		"Feature: " + analysis.Summary,
		"  As a tester",
		"  I want to test " + analysis.TicketKey,
		"  So that the functionality works as expected",
		"",
	}

	if analysis.DiscussionSummary != "" {
		lines = append(lines, "  # Additional context from discussions:")
		paragraphs := strings.Split(analysis.DiscussionSummary, "\n\n")
		if len(paragraphs) > 3 {
			paragraphs = paragraphs[:3]
		}
		for _, p := range paragraphs {
			if s := strings.TrimSpace(p); s != "" {
				lines = append(lines, "  # "+common.Truncate(s, 100))
			}
		}
		lines = append(lines, "")
	}

	for i, scenario := range analysis.Scenarios {
		lines = append(lines, "  Scenario: "+scenario.Name)
		for _, step := range scenario.Given {
			lines = append(lines, "    Given "+step)
		}
		for _, step := range scenario.When {
			lines = append(lines, "    When "+step)
		}
		for _, step := range scenario.Then {
			lines = append(lines, "    Then "+step)
		}
		if i < len(analysis.Scenarios)-1 {
			lines = append(lines, "")
		}
	}

	return strings.Join(lines, "\n")
}
