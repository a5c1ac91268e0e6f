package testgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tuannvm/jira-testgen-a2a/internal/config"
	"github.com/tuannvm/jira-testgen-a2a/internal/extract"
	"github.com/tuannvm/jira-testgen-a2a/internal/jira"
	"github.com/tuannvm/jira-testgen-a2a/internal/logging"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
	"github.com/tuannvm/jira-testgen-a2a/internal/render"
)

// Service implements the test generation operations. Each call fetches what
// it needs from Jira, analyzes it, and renders artifacts; nothing is cached
// between calls.
type Service struct {
	cfg      *config.Config
	jira     jira.JiraClientInterface
	renderer *render.Renderer
}

// NewService creates a new Service backed by the given Jira client.
func NewService(cfg *config.Config, jiraClient jira.JiraClientInterface) *Service {
	return &Service{
		cfg:      cfg,
		jira:     jiraClient,
		renderer: render.NewRenderer(),
	}
}

// FetchTicket returns the ticket with its discussions and discussion summary
// attached.
func (s *Service) FetchTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	return s.jira.FetchTicketWithDiscussions(ctx, ticketID)
}

// AnalyzeTicket fetches the ticket and derives its test analysis.
func (s *Service) AnalyzeTicket(ctx context.Context, ticketID string) (*models.Analysis, error) {
	ticket, err := s.jira.FetchTicketWithDiscussions(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return extract.Analyze(ticket), nil
}

// SearchTickets passes a JQL query through to Jira. Query syntax errors come
// back from the tracker, not from local validation.
func (s *Service) SearchTickets(ctx context.Context, jql string, maxResults int) (*models.SearchResult, error) {
	return s.jira.SearchTickets(ctx, jql, maxResults)
}

// GenerateTests renders the full suite for one ticket: feature file,
// language scaffolding, suite config, README, and manual test plans, written
// under {outputRoot}/{ticketKey}/. An unsupported language yields a failure
// result before anything is fetched or written.
func (s *Service) GenerateTests(ctx context.Context, ticketID string, language models.Language, outputPath string) (*models.GenerateResult, error) {
	if verr := ValidateLanguage(language); verr != nil {
		return &models.GenerateResult{Success: false, Message: verr.Message}, nil
	}

	ticket, err := s.jira.FetchTicketWithDiscussions(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	analysis := extract.Analyze(ticket)

	dir := s.ticketDir(outputPath, analysis.TicketKey)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	files := make([]render.File, 0, 8+len(analysis.Scenarios))
	files = append(files, render.File{Name: analysis.TicketKey + ".feature", Content: s.renderer.FeatureFile(analysis)})
	files = append(files, s.renderer.ScaffoldFiles(analysis, language)...)
	files = append(files, render.File{Name: "testng.xml", Content: s.renderer.SuiteConfig(analysis)})
	files = append(files, render.File{Name: "README.md", Content: s.renderer.Summary(analysis, language)})
	files = append(files, s.renderer.ManualPlans(ticket, analysis)...)

	written, err := writeFiles(dir, files)
	if err != nil {
		return nil, err
	}

	logging.Infof("Generated %d files for %s in %s", len(written), analysis.TicketKey, dir)

	return &models.GenerateResult{
		Success:   true,
		Files:     written,
		Message:   fmt.Sprintf("Generated %d files for %s", len(written), analysis.TicketKey),
		TestCount: analysis.EstimatedTests,
		RunID:     uuid.New().String(),
	}, nil
}

// GenerateGherkin renders just the feature file. With an output path it is
// written to {outputPath}/{ticketKey}.feature; without one the content is
// returned alongside the suggested filename and nothing touches disk.
func (s *Service) GenerateGherkin(ctx context.Context, ticketID, outputPath string) (*models.GherkinResult, error) {
	ticket, err := s.jira.FetchTicketWithDiscussions(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	analysis := extract.Analyze(ticket)
	content := s.renderer.FeatureFile(analysis)
	name := analysis.TicketKey + ".feature"

	if outputPath == "" {
		return &models.GherkinResult{Success: true, File: name, Content: content}, nil
	}

	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputPath, err)
	}
	path := filepath.Join(outputPath, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.Infof("Generated feature file %s", path)

	return &models.GherkinResult{Success: true, File: path, Content: content}, nil
}

// GenerateManualPlans renders only the manual test plan documents for one
// ticket, written under {outputRoot}/{ticketKey}/.
func (s *Service) GenerateManualPlans(ctx context.Context, ticketID, outputPath string) (*models.GenerateResult, error) {
	ticket, err := s.jira.FetchTicketWithDiscussions(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	analysis := extract.Analyze(ticket)

	dir := s.ticketDir(outputPath, analysis.TicketKey)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	written, err := writeFiles(dir, s.renderer.ManualPlans(ticket, analysis))
	if err != nil {
		return nil, err
	}

	logging.Infof("Generated %d manual test plans for %s in %s", len(written), analysis.TicketKey, dir)

	return &models.GenerateResult{
		Success:   true,
		Files:     written,
		Message:   fmt.Sprintf("Generated %d manual test plan files for %s", len(written), analysis.TicketKey),
		TestCount: len(written),
		RunID:     uuid.New().String(),
	}, nil
}

func (s *Service) ticketDir(outputPath, ticketKey string) string {
	root := outputPath
	if root == "" {
		root = s.cfg.OutputDirectory
	}
	return filepath.Join(root, ticketKey)
}

// writeFiles writes each file under dir in order and returns the paths
// written. The first write failure aborts the remaining files; already
// written files stay in place.
func writeFiles(dir string, files []render.File) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
