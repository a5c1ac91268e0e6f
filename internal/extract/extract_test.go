package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

func TestScenarios(t *testing.T) {
	t.Run("extracts a Given/When/Then triple from the description", func(t *testing.T) {
		description := "Given user is logged in\nWhen user clicks submit\nThen order is placed"

		scenarios := Scenarios(description, "Place an order", "")

		require.NotEmpty(t, scenarios)
		first := scenarios[0]
		assert.Equal(t, "Place an order", first.Name)
		assert.Equal(t, []string{"user is logged in"}, first.Given)
		assert.Equal(t, []string{"user clicks submit"}, first.When)
		assert.Equal(t, []string{"order is placed"}, first.Then)
	})

	t.Run("keyword match is case-insensitive", func(t *testing.T) {
		description := "GIVEN the cart has items\nWHEN checkout starts\nTHEN payment page opens"

		scenarios := Scenarios(description, "Checkout", "")

		require.NotEmpty(t, scenarios)
		assert.Equal(t, []string{"the cart has items"}, scenarios[0].Given)
		assert.Equal(t, []string{"payment page opens"}, scenarios[0].Then)
	})

	t.Run("synthesizes exactly one fallback scenario when nothing matches", func(t *testing.T) {
		scenarios := Scenarios("", "", "")

		require.Len(t, scenarios, 1)
		fallback := scenarios[0]
		assert.Equal(t, "Test ", fallback.Name)
		assert.Equal(t, []string{"User is on the application"}, fallback.Given)
		assert.Equal(t, []string{"User performs the action described in ticket"}, fallback.When)
		assert.Equal(t, []string{"Expected behavior occurs as per ticket description"}, fallback.Then)
	})

	t.Run("fallback name includes the ticket summary", func(t *testing.T) {
		scenarios := Scenarios("nothing extractable here", "Login feature", "")

		require.Len(t, scenarios, 1)
		assert.Equal(t, "Test Login feature", scenarios[0].Name)
	})

	t.Run("never returns an empty list", func(t *testing.T) {
		inputs := []struct{ description, summary, discussion string }{
			{"", "", ""},
			{"free text with no keywords", "Summary", ""},
			{"", "Summary", "short chat"},
		}
		for _, in := range inputs {
			assert.NotEmpty(t, Scenarios(in.description, in.summary, in.discussion))
		}
	})

	t.Run("discussion text contributes to the combined blob", func(t *testing.T) {
		discussion := "Alice: Given account exists\nWhen login is attempted\nThen dashboard loads"

		scenarios := Scenarios("", "Login", discussion)

		var found bool
		for _, s := range scenarios {
			if s.Name == "Login" {
				found = true
				assert.Equal(t, []string{"account exists"}, s.Given)
			}
		}
		assert.True(t, found, "expected a GWT scenario derived from discussion text")
	})
}

func TestFromDiscussions(t *testing.T) {
	t.Run("should pattern yields a scenario with the fixed step shape", func(t *testing.T) {
		discussion := "Bob: The system should reject duplicate email addresses on signup"

		scenarios := FromDiscussions(discussion)

		require.NotEmpty(t, scenarios)
		s := scenarios[0]
		assert.True(t, strings.HasPrefix(s.Name, "Scenario from discussion: "))
		assert.Equal(t, []string{"User is on the application"}, s.Given)
		require.Len(t, s.When, 1)
		assert.True(t, strings.HasPrefix(s.When[0], "User performs: "))
		assert.Equal(t, []string{"Expected behavior should match the discussion requirement"}, s.Then)
	})

	t.Run("matches of ten characters or fewer are dropped", func(t *testing.T) {
		assert.Empty(t, FromDiscussions("should work"))
	})

	t.Run("name is capped at 100 characters and when at 150", func(t *testing.T) {
		long := strings.Repeat("x", 300)
		scenarios := FromDiscussions("verify " + long)

		require.NotEmpty(t, scenarios)
		s := scenarios[0]
		assert.Equal(t, "Scenario from discussion: "+strings.Repeat("x", 100), s.Name)
		assert.Equal(t, "User performs: "+strings.Repeat("x", 150), s.When[0])
	})

	t.Run("overlapping pattern matches are kept without dedup", func(t *testing.T) {
		// "verify" inside a "test cases" block matches both patterns
		discussion := "Test cases: verify the export honors the date filter"

		scenarios := FromDiscussions(discussion)

		assert.GreaterOrEqual(t, len(scenarios), 2)
	})

	t.Run("empty discussion yields nothing", func(t *testing.T) {
		assert.Empty(t, FromDiscussions(""))
	})
}

func TestClassifyComplexity(t *testing.T) {
	mkScenarios := func(n int) []models.TestScenario {
		s := make([]models.TestScenario, n)
		for i := range s {
			s[i] = models.TestScenario{Name: "s", Given: []string{"g"}, When: []string{"w"}, Then: []string{"t"}}
		}
		return s
	}

	tests := []struct {
		name       string
		count      int
		descLen    int
		complexity models.Complexity
	}{
		{"two scenarios short description", 2, 499, models.ComplexityLow},
		{"boundary description length 500 leaves low", 2, 500, models.ComplexityMedium},
		{"boundary count 3 leaves low", 3, 100, models.ComplexityMedium},
		{"five scenarios mid description", 5, 1499, models.ComplexityMedium},
		{"boundary description length 1500 leaves medium", 5, 1500, models.ComplexityHigh},
		{"boundary count 6 leaves medium", 6, 100, models.ComplexityHigh},
		{"empty everything", 0, 0, models.ComplexityLow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyComplexity(mkScenarios(tc.count), strings.Repeat("a", tc.descLen))
			assert.Equal(t, tc.complexity, got)
		})
	}

	t.Run("monotonic in count and length", func(t *testing.T) {
		rank := map[models.Complexity]int{
			models.ComplexityLow:    0,
			models.ComplexityMedium: 1,
			models.ComplexityHigh:   2,
		}
		counts := []int{0, 2, 3, 5, 6, 10}
		lengths := []int{0, 499, 500, 1499, 1500, 3000}
		for i := 1; i < len(counts); i++ {
			for j := 1; j < len(lengths); j++ {
				prev := ClassifyComplexity(mkScenarios(counts[i-1]), strings.Repeat("a", lengths[j-1]))
				next := ClassifyComplexity(mkScenarios(counts[i]), strings.Repeat("a", lengths[j]))
				assert.LessOrEqual(t, rank[prev], rank[next])
			}
		}
	})
}

func TestAnalyze(t *testing.T) {
	ticket := &models.Ticket{
		Key:         "PROJ-42",
		Summary:     "Export report",
		Description: "Given a report exists\nWhen the user exports it\nThen a CSV downloads",
	}

	analysis := Analyze(ticket)

	assert.Equal(t, "PROJ-42", analysis.TicketKey)
	assert.Equal(t, "Export report", analysis.Summary)
	assert.Equal(t, len(analysis.Scenarios), analysis.EstimatedTests)
	assert.Equal(t, models.ComplexityLow, analysis.Complexity)
	require.NotEmpty(t, analysis.Scenarios)
	assert.Equal(t, []string{"a report exists"}, analysis.Scenarios[0].Given)
}
