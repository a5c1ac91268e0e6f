package testgen

import (
	"fmt"

	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

// ValidationError reports caller-correctable input such as an unsupported
// scaffolding language. It surfaces to callers as a structured failure
// payload rather than a failed task.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateLanguage enforces the closed scaffolding language set. It runs
// before any network call or file write.
func ValidateLanguage(language models.Language) *ValidationError {
	switch language {
	case models.LanguageJava, models.LanguagePython:
		return nil
	}
	return &ValidationError{
		Message: fmt.Sprintf("Unsupported language: %s. Use 'java' or 'python'", language),
	}
}
