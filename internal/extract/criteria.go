package extract

import (
	"strings"
)

// AcceptanceCriteria pulls acceptance-criteria style lines out of a ticket
// description: "acceptance criteria" and "AC:" headings plus bare Given/
// When/Then lines. Duplicates are dropped keeping the first occurrence.
func AcceptanceCriteria(description string) []string {
	var criteria []string
	seen := make(map[string]bool)

	for _, pattern := range criteriaPatterns {
		for _, match := range pattern.FindAllStringSubmatch(description, -1) {
			for _, line := range strings.Split(match[1], "\n") {
				line = strings.TrimSpace(line)
				if line == "" || seen[line] {
					continue
				}
				seen[line] = true
				criteria = append(criteria, line)
			}
		}
	}

	return criteria
}
