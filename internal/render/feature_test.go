package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

func testAnalysis() *models.Analysis {
	return &models.Analysis{
		TicketKey: "PROJ-123",
		Summary:   "User login",
		Scenarios: []models.TestScenario{
			{
				Name:  "User login",
				Given: []string{"user is registered"},
				When:  []string{"user submits valid credentials"},
				Then:  []string{"dashboard is shown"},
			},
			{
				Name:  "Second scenario",
				Given: []string{"a", "b"},
				When:  []string{"c"},
				Then:  []string{"d", "e"},
			},
		},
		EstimatedTests: 2,
		Complexity:     models.ComplexityLow,
	}
}

func TestFeatureFile(t *testing.T) {
	r := NewRenderer()

	t.Run("renders header and one block per scenario in order", func(t *testing.T) {
		content := r.FeatureFile(testAnalysis())

		lines := strings.Split(content, "\n")
		assert.Equal(t, "Feature: User login", lines[0])
		assert.Equal(t, "  As a tester", lines[1])
		assert.Equal(t, "  I want to test PROJ-123", lines[2])

		first := strings.Index(content, "Scenario: User login")
		second := strings.Index(content, "Scenario: Second scenario")
		require.Greater(t, first, 0)
		assert.Greater(t, second, first)
	})

	t.Run("steps keep Given then When then Then order with repeats", func(t *testing.T) {
		content := r.FeatureFile(testAnalysis())

		assert.Contains(t, content, "    Given a\n    Given b\n    When c\n    Then d\n    Then e")
	})

	t.Run("discussion block lists up to three paragraphs truncated to 100 chars", func(t *testing.T) {
		analysis := testAnalysis()
		long := strings.Repeat("p", 150)
		analysis.DiscussionSummary = "one\n\ntwo\n\n" + long + "\n\nfour"

		content := r.FeatureFile(analysis)

		assert.Contains(t, content, "  # Additional context from discussions:")
		assert.Contains(t, content, "  # one")
		assert.Contains(t, content, "  # two")
		assert.Contains(t, content, "  # "+strings.Repeat("p", 100)+"\n")
		assert.NotContains(t, content, "# four")
	})

	t.Run("no discussion means no comment block", func(t *testing.T) {
		content := r.FeatureFile(testAnalysis())
		assert.NotContains(t, content, "Additional context")
	})

	t.Run("byte-identical across runs", func(t *testing.T) {
		analysis := testAnalysis()
		assert.Equal(t, r.FeatureFile(analysis), r.FeatureFile(analysis))
	})
}
