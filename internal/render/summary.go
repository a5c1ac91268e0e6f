package render

import (
	"fmt"
	"strings"

	"github.com/tuannvm/jira-testgen-a2a/internal/common"
	"github.com/tuannvm/jira-testgen-a2a/internal/models"
)

const javaSetup = `1. Install Java JDK 11 or higher
2. Install Maven
3. Run: ` + "`mvn clean install`" + `
4. Execute tests: ` + "`mvn test`"

const pythonSetup = `1. Install Python 3.8 or higher
2. Install dependencies: ` + "`pip install -r requirements.txt`" + `
3. Run tests: ` + "`behave`"

// Summary renders the per-ticket README: scenario list, complexity, counts,
// and the setup instructions for the chosen language.
func (r *Renderer) Summary(analysis *models.Analysis, language models.Language) string {
	var scenarioBlocks []string
	for i, s := range analysis.Scenarios {
		scenarioBlocks = append(scenarioBlocks, fmt.Sprintf(`### %d. %s
- **Given**: %s
- **When**: %s
- **Then**: %s`,
			i+1, s.Name,
			strings.Join(s.Given, ", "),
			strings.Join(s.When, ", "),
			strings.Join(s.Then, ", ")))
	}

	setup := pythonSetup
	if language == models.LanguageJava {
		setup = javaSetup
	}

	return fmt.Sprintf(`# Test Automation for %s

## Summary
%s

## Test Information
- **Ticket**: %s
- **Estimated Test Count**: %d
- **Complexity**: %s
- **Language**: %s
- **Framework**: Selenium + TestNG + Cucumber

## Setup Instructions

### %s Setup

%s

## Test Scenarios

%s

## Generated Files
- Feature file with Gherkin scenarios
- Step definition implementations
- Test runner configuration
- TestNG XML suite configuration
- Dependencies configuration

## Next Steps
1. Review generated test scenarios
2. Implement step definitions with actual test logic
3. Add page objects for UI elements
4. Configure test data and environments
5. Run tests and review results

## Notes
- Auto-generated test suite based on JIRA ticket %s
- Review and enhance test logic as needed
- Add assertions specific to your application
- Integrate with CI/CD pipeline
`,
		analysis.TicketKey,
		analysis.Summary,
		analysis.TicketKey,
		analysis.EstimatedTests,
		analysis.Complexity,
		language,
		common.Capitalize(string(language)),
		setup,
		strings.Join(scenarioBlocks, "\n\n"),
		analysis.TicketKey)
}
