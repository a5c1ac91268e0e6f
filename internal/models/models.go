package models

// Operation names accepted by the test generation agent. These are the wire
// contract between callers and the TaskProcessor.
const (
	OpFetchTicket         = "fetch_ticket"
	OpAnalyzeRequirements = "analyze_requirements"
	OpGenerateTestScripts = "generate_test_scripts"
	OpSearchTickets       = "search_tickets"
	OpGenerateGherkin     = "generate_gherkin_features"
	OpGenerateManualPlans = "generate_manual_test_plans"
)

// Language selects the test scaffolding target. The set is closed; anything
// else is rejected before any file is written.
type Language string

const (
	LanguageJava   Language = "java"
	LanguagePython Language = "python"
)

// Complexity is the heuristic effort rating attached to an Analysis.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Ticket represents a Jira issue fetched from the Jira API. Rich-text
// descriptions and comment bodies are flattened to plain text at decode time.
type Ticket struct {
	ID                string                 `json:"id"`
	Key               string                 `json:"key"`
	Summary           string                 `json:"summary"`
	Description       string                 `json:"description"`
	Status            string                 `json:"status,omitempty"`
	Priority          string                 `json:"priority,omitempty"`
	Assignee          string                 `json:"assignee,omitempty"`
	Created           string                 `json:"created,omitempty"` // ISO 8601 format string
	Fields            map[string]interface{} `json:"fields,omitempty"`
	Discussions       []Comment              `json:"discussions"`
	DiscussionSummary string                 `json:"discussionSummary"`
}

// Comment represents a single Jira issue comment.
type Comment struct {
	ID      string `json:"id,omitempty"`
	Author  string `json:"author"` // display name, "Unknown" when absent
	Body    string `json:"body"`
	Created string `json:"created,omitempty"`
}

// TestScenario is one extracted Given/When/Then test case. Every field holds
// at least one entry; extraction synthesizes a fallback scenario rather than
// emit an empty one.
type TestScenario struct {
	Name  string   `json:"name"`
	Given []string `json:"given"`
	When  []string `json:"when"`
	Then  []string `json:"then"`
}

// Analysis is the full extraction result for one ticket. It is recomputed on
// every call and never cached.
type Analysis struct {
	TicketKey          string         `json:"ticketKey"`
	Summary            string         `json:"summary"`
	DiscussionSummary  string         `json:"discussionSummary,omitempty"`
	Scenarios          []TestScenario `json:"scenarios"`
	EstimatedTests     int            `json:"estimatedTests"`
	Complexity         Complexity     `json:"complexity"`
	AcceptanceCriteria []string       `json:"acceptanceCriteria,omitempty"`
}

// SearchResult mirrors the Jira search response shape so the payload passes
// through to callers untouched.
type SearchResult struct {
	StartAt    int            `json:"startAt"`
	MaxResults int            `json:"maxResults"`
	Total      int            `json:"total"`
	Issues     []IssueSummary `json:"issues"`
}

// IssueSummary is one row of a search result. Fields stays raw; the tracker
// owns its shape.
type IssueSummary struct {
	ID     string                 `json:"id"`
	Key    string                 `json:"key"`
	Fields map[string]interface{} `json:"fields"`
}

// ToolRequest is the operation envelope parsed from an incoming task message.
type ToolRequest struct {
	Operation  string `json:"operation"`
	TicketID   string `json:"ticketId,omitempty"`
	Language   string `json:"language,omitempty"`
	OutputPath string `json:"outputPath,omitempty"`
	JQL        string `json:"jql,omitempty"`
	MaxResults int    `json:"maxResults,omitempty"`
}

// GenerateResult is returned by the script and manual-plan generation
// operations. Success false with a Message reports caller-correctable input
// problems such as an unsupported language.
type GenerateResult struct {
	Success   bool     `json:"success"`
	Files     []string `json:"files,omitempty"`
	Message   string   `json:"message"`
	TestCount int      `json:"testCount,omitempty"`
	RunID     string   `json:"runId,omitempty"`
}

// GherkinResult is returned by the feature file operation. Content is always
// populated; File is a path only when the caller supplied an output path,
// otherwise it is the bare suggested filename.
type GherkinResult struct {
	Success bool   `json:"success"`
	File    string `json:"file"`
	Content string `json:"content"`
}
