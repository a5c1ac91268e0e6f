package render

import (
	"fmt"
	"strings"

	"github.com/tuannvm/jira-testgen-a2a/internal/common"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

// Manual test plan step types, in the order steps are derived from a
// scenario: preconditions, actions, validations, then one cleanup step.
const (
	stepTypePrecondition = "Precondition"
	stepTypeAction       = "Action"
	stepTypeValidation   = "Validation"
	stepTypeCleanup      = "Cleanup"
)

type planStep struct {
	num      int
	stepType string
	action   string
	expected string
}

// buildPlanSteps derives the ordered manual step list for one scenario.
func buildPlanSteps(scenario models.TestScenario) []planStep {
	var steps []planStep
	num := 1

	for _, given := range scenario.Given {
		steps = append(steps, planStep{
			num:      num,
			stepType: stepTypePrecondition,
			action:   "Verify precondition: " + given,
			expected: "Precondition is met and ready for testing",
		})
		num++
	}

	for _, when := range scenario.When {
		steps = append(steps, planStep{
			num:      num,
			stepType: stepTypeAction,
			action:   expandAction(when),
			expected: "Action completes without errors",
		})
		num++
	}

	for _, then := range scenario.Then {
		steps = append(steps, planStep{
			num:      num,
			stepType: stepTypeValidation,
			action:   "Verify: " + then,
			expected: then,
		})
		num++
	}

	steps = append(steps, planStep{
		num:      num,
		stepType: stepTypeCleanup,
		action:   "Clean up test data and restore initial state",
		expected: "System returns to original state",
	})

	return steps
}

// ManualPlans renders one test plan document per scenario followed by the
// eight fixed supplementary plans. Numbering is continuous; for N scenarios
// the result is always exactly N+8 files named {key}_Test{n}.txt.
func (r *Renderer) ManualPlans(ticket *models.Ticket, analysis *models.Analysis) []File {
	total := len(analysis.Scenarios)
	files := make([]File, 0, total+len(supplementaryScenarios))

	for i, scenario := range analysis.Scenarios {
		n := i + 1
		files = append(files, File{
			Name: fmt.Sprintf("%s_Test%d.txt", analysis.TicketKey, n),
			Content: r.renderManualPlan(
				analysis.TicketKey, n, total, scenario,
				analysis.Summary, ticket.Description, analysis.DiscussionSummary,
			),
		})
	}

	for i, supp := range supplementaryScenarios {
		n := total + i + 1
		files = append(files, File{
			Name:    fmt.Sprintf("%s_Test%d.txt", analysis.TicketKey, n),
			Content: r.renderSupplementaryPlan(analysis.TicketKey, n, supp, ticket.Description),
		})
	}

	return files
}

func (r *Renderer) renderManualPlan(
	ticketKey string,
	testNumber, totalTests int,
	scenario models.TestScenario,
	summary, description, discussionSummary string,
) string {
	steps := buildPlanSteps(scenario)

	var d docBuilder
	d.banner("MANUAL TEST PLAN")
	d.blank()
	d.linef("TICKET ID:           %s", ticketKey)
	d.linef("TEST ID:             %s_Test%d", ticketKey, testNumber)
	d.linef("TEST NUMBER:         %d of %d", testNumber, totalTests)
	d.linef("TEST NAME:           %s", scenario.Name)
	d.linef("CREATED DATE:        %s", r.createdDate())
	d.line("TEST TYPE:           Functional Test")
	d.line("PRIORITY:            High")
	d.line("AUTOMATION:          Planned")
	d.blank()

	d.banner("TEST SUMMARY")
	d.line(summary)
	d.blank()

	d.banner("TEST OBJECTIVE")
	d.line(scenario.Name)
	d.blank()
	d.linef("This test validates the functionality described in %s ensuring that the", ticketKey)
	d.line("system behaves as expected according to the requirements and acceptance criteria.")
	d.blank()

	d.banner("REQUIREMENTS REFERENCE")
	d.line("Ticket Description:")
	d.line(formatDescription(description))
	d.blank()

	if discussionSummary != "" {
		d.line("Additional Context from Discussions:")
		d.line(formatDiscussionContext(discussionSummary))
		d.blank()
	}

	d.banner("TEST PRECONDITIONS")
	preconditions := 0
	for _, step := range steps {
		if step.stepType == stepTypePrecondition {
			d.linef("%d. %s", step.num, step.action)
			preconditions++
		}
	}
	if preconditions == 0 {
		d.line("1. Application is accessible and running")
		d.line("2. Test user has appropriate access rights")
		d.line("3. Test environment is properly configured")
	}
	d.blank()

	d.banner("TEST STEPS")
	d.blank()
	for _, step := range steps {
		d.linef("Step %d: [%s]", step.num, step.stepType)
		d.line(lightRule)
		d.line("Action:")
		d.line("  " + step.action)
		d.blank()
		d.line("Expected Result:")
		d.line("  " + step.expected)
		d.blank()
		d.line("Actual Result:")
		d.line("  [ TO BE FILLED DURING EXECUTION ]")
		d.blank()
		d.line("Status: [ PASS / FAIL / BLOCKED ]")
		d.blank()
		d.line(heavyRule)
		d.blank()
	}

	d.banner("TEST DATA REQUIREMENTS")
	for _, item := range testDataRequirements(steps, description) {
		d.line("- " + item)
	}
	d.blank()

	d.banner("EXPECTED RESULTS SUMMARY")
	validationIndex := 0
	for _, step := range steps {
		if step.stepType == stepTypeValidation {
			validationIndex++
			d.linef("%d. %s", validationIndex, step.expected)
		}
	}
	d.blank()

	d.banner("PASS/FAIL CRITERIA")
	d.line("PASS: All test steps execute successfully and all expected results are observed")
	d.line("FAIL: Any test step fails or expected result is not observed")
	d.line("BLOCKED: Test cannot be executed due to environment or dependency issues")
	d.blank()

	d.banner("NOTES AND OBSERVATIONS")
	d.line("[ TO BE FILLED DURING EXECUTION ]")
	d.blank()
	d.line("Tester Name:     _____________________")
	d.line("Test Date:       _____________________")
	d.line("Test Duration:   _____________________")
	d.line("Environment:     _____________________")
	d.line("Build/Version:   _____________________")
	d.blank()
	d.line("Final Status:    [ PASS / FAIL / BLOCKED ]")
	d.blank()

	d.banner("DEFECTS FOUND")
	d.line("Defect ID | Severity | Description | Status")
	d.line(lightRule)
	d.line("[ TO BE FILLED IF DEFECTS ARE FOUND ]")
	d.blank()

	d.banner(fmt.Sprintf("END OF TEST PLAN - %s_Test%d", ticketKey, testNumber))

	return d.String()
}

type supplementaryStep struct {
	action   string
	expected string
}

type supplementaryScenario struct {
	name      string
	objective string
	testType  string
	steps     []supplementaryStep
}

// supplementaryScenarios is the fixed baseline appended after the
// scenario-derived plans: always these eight, in this order, regardless of
// ticket content.
var supplementaryScenarios = []supplementaryScenario{
	{
		name:      "Negative Test - Invalid Input Data",
		objective: "Verify system handles invalid input gracefully",
		testType:  "Negative",
		steps: []supplementaryStep{
			{"Prepare invalid test data (empty, null, special characters)", "Test data is prepared"},
			{"Attempt to perform the operation with invalid data", "System rejects invalid input"},
			{"Verify appropriate error message is displayed", "Clear error message explains the validation failure"},
			{"Verify system state remains unchanged", "No data is corrupted or modified"},
		},
	},
	{
		name:      "Boundary Test - Minimum Values",
		objective: "Verify system behavior at minimum boundary conditions",
		testType:  "Boundary",
		steps: []supplementaryStep{
			{"Identify minimum acceptable values from requirements", "Boundaries are documented"},
			{"Test with minimum valid values", "Operation succeeds with minimum values"},
			{"Test with values below minimum (if applicable)", "System rejects or handles appropriately"},
			{"Verify data integrity at boundaries", "Data is stored and displayed correctly"},
		},
	},
	{
		name:      "Boundary Test - Maximum Values",
		objective: "Verify system behavior at maximum boundary conditions",
		testType:  "Boundary",
		steps: []supplementaryStep{
			{"Identify maximum acceptable values from requirements", "Boundaries are documented"},
			{"Test with maximum valid values", "Operation succeeds with maximum values"},
			{"Test with values above maximum (if applicable)", "System rejects or handles appropriately"},
			{"Verify performance and response time", "System performs within acceptable limits"},
		},
	},
	{
		name:      "Security Test - Access Control",
		objective: "Verify proper authorization and access controls",
		testType:  "Security",
		steps: []supplementaryStep{
			{"Attempt operation with unauthorized user", "Access is denied"},
			{"Verify appropriate error/permission message", "User receives clear permission denied message"},
			{"Test with user having partial permissions", "Only authorized actions are allowed"},
			{"Verify audit logs capture access attempts", "Security events are logged"},
		},
	},
	{
		name:      "Performance Test - Response Time",
		objective: "Verify system performs within acceptable time limits",
		testType:  "Performance",
		steps: []supplementaryStep{
			{"Execute operation with normal data load", "Baseline performance is established"},
			{"Measure response time for the operation", "Response time is within SLA requirements"},
			{"Test with increased data volume", "Performance degrades gracefully"},
			{"Verify no memory leaks or resource issues", "Resources are properly managed"},
		},
	},
	{
		name:      "Usability Test - User Experience",
		objective: "Verify user interface is intuitive and accessible",
		testType:  "Usability",
		steps: []supplementaryStep{
			{"Navigate to the feature using normal user flow", "Navigation is intuitive"},
			{"Verify all UI elements are properly labeled", "Labels are clear and descriptive"},
			{"Test keyboard navigation and accessibility", "Feature is keyboard accessible"},
			{"Verify error messages are user-friendly", "Messages guide user to resolution"},
		},
	},
	{
		name:      "Integration Test - External Dependencies",
		objective: "Verify proper integration with dependent systems",
		testType:  "Integration",
		steps: []supplementaryStep{
			{"Identify external system dependencies", "Dependencies are documented"},
			{"Test with all dependencies available", "Integration works correctly"},
			{"Test with dependency unavailable/timeout", "System handles failures gracefully"},
			{"Verify error handling and retry logic", "Appropriate error handling is in place"},
		},
	},
	{
		name:      "Data Validation Test - Input Constraints",
		objective: "Verify all input validations are properly enforced",
		testType:  "Validation",
		steps: []supplementaryStep{
			{"Test with required fields missing", "Validation errors are shown"},
			{"Test with incorrect data types", "Type validation works correctly"},
			{"Test with data exceeding length limits", "Length constraints are enforced"},
			{"Test with SQL injection and XSS attempts", "Input sanitization prevents attacks"},
		},
	},
}

func (r *Renderer) renderSupplementaryPlan(
	ticketKey string,
	testNumber int,
	scenario supplementaryScenario,
	description string,
) string {
	typeLower := strings.ToLower(scenario.testType)

	var d docBuilder
	d.banner(fmt.Sprintf("MANUAL TEST PLAN - %s TEST", strings.ToUpper(scenario.testType)))
	d.blank()
	d.linef("TICKET ID:           %s", ticketKey)
	d.linef("TEST ID:             %s_Test%d", ticketKey, testNumber)
	d.linef("TEST NUMBER:         %d", testNumber)
	d.linef("TEST NAME:           %s", scenario.name)
	d.linef("CREATED DATE:        %s", r.createdDate())
	d.linef("TEST TYPE:           %s Test", scenario.testType)
	d.line("PRIORITY:            High")
	d.line("AUTOMATION:          Planned")
	d.blank()

	d.banner("TEST OBJECTIVE")
	d.line(scenario.objective)
	d.blank()
	d.linef("This test ensures comprehensive coverage by validating %s scenarios", typeLower)
	d.linef("that complement the functional requirements specified in %s.", ticketKey)
	d.blank()

	d.banner("REQUIREMENTS REFERENCE")
	d.linef("Based on ticket: %s", ticketKey)
	d.blank()
	d.line(formatDescription(description))
	d.blank()

	d.banner("TEST PRECONDITIONS")
	d.linef("1. All functional tests for %s have been reviewed", ticketKey)
	d.line("2. Test environment is stable and accessible")
	d.line("3. Test data is prepared according to test type requirements")
	d.line("4. Required user accounts and permissions are configured")
	d.blank()

	d.banner("TEST STEPS")
	d.blank()
	for i, step := range scenario.steps {
		d.linef("Step %d:", i+1)
		d.line(lightRule)
		d.line("Action:")
		d.line("  " + step.action)
		d.blank()
		d.line("Expected Result:")
		d.line("  " + step.expected)
		d.blank()
		d.line("Actual Result:")
		d.line("  [ TO BE FILLED DURING EXECUTION ]")
		d.blank()
		d.line("Status: [ PASS / FAIL / BLOCKED ]")
		d.blank()
		d.line(heavyRule)
		d.blank()
	}

	d.banner("PASS/FAIL CRITERIA")
	d.linef("PASS: All validation points pass and system behaves according to %s test requirements", typeLower)
	d.line("FAIL: Any expected behavior is not observed or system behaves incorrectly")
	d.line("BLOCKED: Test cannot be completed due to dependencies or environment issues")
	d.blank()

	d.banner("NOTES AND OBSERVATIONS")
	d.line("[ TO BE FILLED DURING EXECUTION ]")
	d.blank()
	d.linef("This %s test is critical for ensuring 100%% test coverage and", typeLower)
	d.linef("should be executed as part of the comprehensive test suite for %s.", ticketKey)
	d.blank()
	d.line("Tester Name:     _____________________")
	d.line("Test Date:       _____________________")
	d.line("Environment:     _____________________")
	d.line("Build/Version:   _____________________")
	d.blank()
	d.line("Final Status:    [ PASS / FAIL / BLOCKED ]")
	d.blank()

	d.banner(fmt.Sprintf("END OF TEST PLAN - %s_Test%d", ticketKey, testNumber))

	return d.String()
}

// Fixed baseline requirements and the description keyword vocabulary for the
// test-data section.
var (
	baselineDataRequirements = []string{
		"Valid user credentials for test execution",
		"Test environment access configuration",
		"Sample data matching requirements specifications",
	}

	testDataKeywords = []string{
		"email", "username", "password", "name", "address",
		"phone", "date", "number", "id", "code",
	}
)

const maxDataRequirements = 10

// testDataRequirements lists the data a tester needs: the fixed baseline,
// one entry per vocabulary keyword present in the description, and one per
// step whose action mentions data, value, or input. Duplicates are dropped
// keeping first occurrence, then the list is capped at ten entries.
func testDataRequirements(steps []planStep, description string) []string {
	requirements := make([]string, 0, len(baselineDataRequirements))
	requirements = append(requirements, baselineDataRequirements...)

	descriptionLower := strings.ToLower(description)
	for _, keyword := range testDataKeywords {
		if strings.Contains(descriptionLower, keyword) {
			requirements = append(requirements, "Valid test "+keyword+" data")
		}
	}

	for _, step := range steps {
		actionLower := strings.ToLower(step.action)
		if strings.Contains(actionLower, "data") ||
			strings.Contains(actionLower, "value") ||
			strings.Contains(actionLower, "input") {
			requirements = append(requirements, "Data for: "+common.Truncate(step.action, 60))
		}
	}

	seen := make(map[string]bool, len(requirements))
	var deduped []string
	for _, req := range requirements {
		if seen[req] {
			continue
		}
		seen[req] = true
		deduped = append(deduped, req)
	}
	if len(deduped) > maxDataRequirements {
		deduped = deduped[:maxDataRequirements]
	}
	return deduped
}
