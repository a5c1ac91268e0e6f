package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

func pinnedRenderer() *Renderer {
	return &Renderer{Now: func() time.Time {
		return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	}}
}

func testTicket() *models.Ticket {
	return &models.Ticket{
		Key:         "PROJ-123",
		Summary:     "User login",
		Description: "Login feature with email and password validation",
	}
}

func TestManualPlans(t *testing.T) {
	r := pinnedRenderer()

	t.Run("produces exactly N plus 8 files with sequential names", func(t *testing.T) {
		analysis := testAnalysis()
		files := r.ManualPlans(testTicket(), analysis)

		require.Len(t, files, len(analysis.Scenarios)+8)
		for i, f := range files {
			assert.Equal(t, fmt.Sprintf("PROJ-123_Test%d.txt", i+1), f.Name)
		}
	})

	t.Run("single fallback scenario still yields nine files", func(t *testing.T) {
		analysis := &models.Analysis{
			TicketKey: "PROJ-9",
			Summary:   "Edge",
			Scenarios: []models.TestScenario{
				{Name: "Test Edge", Given: []string{"g"}, When: []string{"w"}, Then: []string{"t"}},
			},
		}
		files := r.ManualPlans(&models.Ticket{Key: "PROJ-9"}, analysis)

		require.Len(t, files, 9)
		assert.Equal(t, "PROJ-9_Test1.txt", files[0].Name)
		assert.Equal(t, "PROJ-9_Test9.txt", files[8].Name)
	})

	t.Run("supplementary plans follow the fixed order", func(t *testing.T) {
		analysis := testAnalysis()
		files := r.ManualPlans(testTicket(), analysis)

		supplementary := files[len(analysis.Scenarios):]
		wantNames := []string{
			"Negative Test - Invalid Input Data",
			"Boundary Test - Minimum Values",
			"Boundary Test - Maximum Values",
			"Security Test - Access Control",
			"Performance Test - Response Time",
			"Usability Test - User Experience",
			"Integration Test - External Dependencies",
			"Data Validation Test - Input Constraints",
		}
		require.Len(t, supplementary, len(wantNames))
		for i, f := range supplementary {
			assert.Contains(t, f.Content, "TEST NAME:           "+wantNames[i])
		}
	})

	t.Run("supplementary plans have exactly four steps", func(t *testing.T) {
		files := r.ManualPlans(testTicket(), testAnalysis())
		last := files[len(files)-1].Content

		assert.Contains(t, last, "Step 4:")
		assert.NotContains(t, last, "Step 5:")
	})

	t.Run("scenario plan derives precondition, action, validation, cleanup steps", func(t *testing.T) {
		analysis := testAnalysis()
		content := r.ManualPlans(testTicket(), analysis)[0].Content

		assert.Contains(t, content, "Step 1: [Precondition]")
		assert.Contains(t, content, "Verify precondition: user is registered")
		assert.Contains(t, content, "Step 2: [Action]")
		assert.Contains(t, content, "Step 3: [Validation]")
		assert.Contains(t, content, "Verify: dashboard is shown")
		assert.Contains(t, content, "Step 4: [Cleanup]")
		assert.Contains(t, content, "Clean up test data and restore initial state")
	})

	t.Run("validation expecteds appear in the expected results summary", func(t *testing.T) {
		content := r.ManualPlans(testTicket(), testAnalysis())[0].Content

		idx := strings.Index(content, "EXPECTED RESULTS SUMMARY")
		require.Greater(t, idx, 0)
		assert.Contains(t, content[idx:], "1. dashboard is shown")
	})

	t.Run("pinned clock renders the created date", func(t *testing.T) {
		content := r.ManualPlans(testTicket(), testAnalysis())[0].Content
		assert.Contains(t, content, "CREATED DATE:        March 14, 2026")
	})

	t.Run("long descriptions are truncated with an elision marker", func(t *testing.T) {
		ticket := testTicket()
		ticket.Description = strings.Repeat("d", 600)
		content := r.ManualPlans(ticket, testAnalysis())[0].Content

		assert.Contains(t, content, strings.Repeat("d", 500)+"...")
		assert.Contains(t, content, "[See full description in JIRA ticket]")
		assert.NotContains(t, content, strings.Repeat("d", 501))
	})

	t.Run("byte-identical across runs", func(t *testing.T) {
		ticket := testTicket()
		analysis := testAnalysis()

		first := r.ManualPlans(ticket, analysis)
		second := r.ManualPlans(ticket, analysis)

		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i], second[i])
		}
	})
}

func TestExpandAction(t *testing.T) {
	t.Run("short actions get the hint appended", func(t *testing.T) {
		assert.Equal(t, "click save (Provide detailed steps as applicable)", expandAction("click save"))
	})

	t.Run("actions of fifty or more characters stay verbatim", func(t *testing.T) {
		long := strings.Repeat("a", 50)
		assert.Equal(t, long, expandAction(long))
	})
}

func TestTestDataRequirements(t *testing.T) {
	t.Run("starts from the three baseline entries", func(t *testing.T) {
		reqs := testDataRequirements(nil, "")

		assert.Equal(t, baselineDataRequirements, reqs)
	})

	t.Run("adds vocabulary keywords found in the description", func(t *testing.T) {
		reqs := testDataRequirements(nil, "Needs an Email and a username field")

		assert.Contains(t, reqs, "Valid test email data")
		assert.Contains(t, reqs, "Valid test username data")
		assert.NotContains(t, reqs, "Valid test password data")
	})

	t.Run("adds entries for steps mentioning data, value, or input", func(t *testing.T) {
		steps := []planStep{
			{action: "Enter the input amount"},
			{action: "Click submit"},
		}
		reqs := testDataRequirements(steps, "")

		assert.Contains(t, reqs, "Data for: Enter the input amount")
		for _, r := range reqs {
			assert.NotContains(t, r, "Click submit")
		}
	})

	t.Run("never exceeds ten entries and has no duplicates", func(t *testing.T) {
		description := "email username password name address phone date number id code"
		steps := []planStep{
			{action: "step with data one"},
			{action: "step with data one"},
			{action: "step with data two"},
		}

		reqs := testDataRequirements(steps, description)

		assert.LessOrEqual(t, len(reqs), 10)
		seen := make(map[string]bool)
		for _, r := range reqs {
			assert.False(t, seen[r], "duplicate entry %q", r)
			seen[r] = true
		}
	})

	t.Run("dedup happens before the cap", func(t *testing.T) {
		// Three baselines plus six keywords fill nine slots; the duplicated
		// step entry must collapse to one and still fit under the cap.
		description := "email password address phone date number"
		steps := []planStep{
			{action: "uses data"},
			{action: "uses data"},
		}

		reqs := testDataRequirements(steps, description)

		require.Len(t, reqs, 10)
		count := 0
		for _, r := range reqs {
			if r == "Data for: uses data" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}
