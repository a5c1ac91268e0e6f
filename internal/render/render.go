package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/tuannvm/jira-testgen-a2a/internal/common"
)

// File is one generated artifact: a filename relative to the ticket's output
// directory plus its full content. Writing is the caller's job.
type File struct {
	Name    string
	Content string
}

// Renderer turns an Analysis into document content. Output is deterministic
// for a fixed clock; the same input renders byte-identical documents.
type Renderer struct {
	// Now supplies the timestamp for document headers. Tests pin it.
	Now func() time.Time
}

// NewRenderer creates a Renderer on the system clock.
func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

// createdDate formats the header date, e.g. "August 23, 2026".
func (r *Renderer) createdDate() string {
	return r.Now().Format("January 2, 2006")
}

// classNameFor derives a class/package-safe identifier from a ticket key.
func classNameFor(ticketKey string) string {
	return strings.ReplaceAll(ticketKey, "-", "_")
}

const ruleWidth = 80

var (
	heavyRule = strings.Repeat("=", ruleWidth)
	lightRule = strings.Repeat("─", ruleWidth)
)

// docBuilder assembles fixed-section plain-text documents. Sections are
// composed in a fixed order so repeated renders stay byte-identical.
type docBuilder struct {
	b strings.Builder
}

// line writes s followed by a newline.
func (d *docBuilder) line(s string) {
	d.b.WriteString(s)
	d.b.WriteByte('\n')
}

// linef writes a formatted line.
func (d *docBuilder) linef(format string, args ...interface{}) {
	fmt.Fprintf(&d.b, format, args...)
	d.b.WriteByte('\n')
}

// blank writes an empty line.
func (d *docBuilder) blank() {
	d.b.WriteByte('\n')
}

// banner writes a title between two heavy rules.
func (d *docBuilder) banner(title string) {
	d.line(heavyRule)
	d.line(title)
	d.line(heavyRule)
}

func (d *docBuilder) String() string {
	return d.b.String()
}

// expandAction pads short action text with a hint to spell the step out.
func expandAction(action string) string {
	if len([]rune(action)) < 50 {
		return action + " (Provide detailed steps as applicable)"
	}
	return action
}

// formatDescription normalizes and bounds a ticket description for embedding
// in a test plan document.
func formatDescription(description string) string {
	if description == "" {
		return "No detailed description available. Refer to ticket summary."
	}
	formatted := strings.TrimSpace(strings.ReplaceAll(description, "\r\n", "\n"))
	if len([]rune(formatted)) > 500 {
		formatted = common.Truncate(formatted, 500) + "...\n[See full description in JIRA ticket]"
	}
	return formatted
}

// formatDiscussionContext renders up to the first five discussion paragraphs
// as an indented list.
func formatDiscussionContext(discussionSummary string) string {
	if discussionSummary == "" {
		return "No additional discussions available."
	}
	paragraphs := strings.Split(discussionSummary, "\n\n")
	if len(paragraphs) > 5 {
		paragraphs = paragraphs[:5]
	}
	var formatted []string
	for _, p := range paragraphs {
		if s := strings.TrimSpace(p); s != "" {
			formatted = append(formatted, "  - "+s)
		}
	}
	if len(formatted) == 0 {
		return "No significant discussion points."
	}
	return strings.Join(formatted, "\n")
}
