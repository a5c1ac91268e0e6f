package extract

import "regexp"

// The extraction contract is "matches the documented pattern", not semantic
// correctness. Every pattern is a named unit so its capture and truncation
// behavior can be tested on its own.

// gwtPattern matches one Given/When/Then triple anywhere in a text blob.
// Case-insensitive, dot matches newline, each capture runs lazily to the end
// of its line or the end of the text, with arbitrary text allowed between
// the three keywords.
var gwtPattern = regexp.MustCompile(`(?is)given\s+(.*?)(?:\n|$).*?when\s+(.*?)(?:\n|$).*?then\s+(.*?)(?:\n|$)`)

// Discussion keyword patterns. The first four anchor the capture to the next
// blank line, the last three to the end of the line.
var (
	testCasePattern           = regexp.MustCompile(`(?is)test\s+cases?:?\s*(.*?)(?:\n\n|$)`)
	scenarioPattern           = regexp.MustCompile(`(?is)scenarios?:?\s*(.*?)(?:\n\n|$)`)
	edgeCasePattern           = regexp.MustCompile(`(?is)edge\s+cases?:?\s*(.*?)(?:\n\n|$)`)
	acceptanceCriteriaPattern = regexp.MustCompile(`(?is)acceptance\s+criteria:?\s*(.*?)(?:\n\n|$)`)
	shouldPattern             = regexp.MustCompile(`(?is)should\s+(.*?)(?:\n|$)`)
	verifyPattern             = regexp.MustCompile(`(?is)verify\s+(.*?)(?:\n|$)`)
	ensurePattern             = regexp.MustCompile(`(?is)ensure\s+(.*?)(?:\n|$)`)
)

// discussionPatterns fixes the scan order; matches are collected pattern by
// pattern, overlaps and all.
var discussionPatterns = []*regexp.Regexp{
	testCasePattern,
	scenarioPattern,
	edgeCasePattern,
	acceptanceCriteriaPattern,
	shouldPattern,
	verifyPattern,
	ensurePattern,
}

// Acceptance-criteria patterns, scanned over the ticket description. Each
// captures the remainder of the line where the matched content starts.
var (
	criteriaHeadingPattern = regexp.MustCompile(`(?im)acceptance criteria:?\s*([^\n]*)`)
	criteriaACPattern      = regexp.MustCompile(`(?im)^AC:?\s*([^\n]*)`)
	criteriaGivenPattern   = regexp.MustCompile(`(?im)^given[:\s]+(.*?)$`)
	criteriaWhenPattern    = regexp.MustCompile(`(?im)^when[:\s]+(.*?)$`)
	criteriaThenPattern    = regexp.MustCompile(`(?im)^then[:\s]+(.*?)$`)
)

var criteriaPatterns = []*regexp.Regexp{
	criteriaHeadingPattern,
	criteriaACPattern,
	criteriaGivenPattern,
	criteriaWhenPattern,
	criteriaThenPattern,
}
