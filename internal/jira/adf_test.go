package jira

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractText(t *testing.T) {
	t.Run("nested nodes flatten depth-first joined with spaces", func(t *testing.T) {
		node := ADFNode{Content: []ADFNode{
			{Text: "a"},
			{Content: []ADFNode{{Text: "b"}}},
		}}

		assert.Equal(t, "a b", ExtractText(node))
	})

	t.Run("document order is preserved across depths", func(t *testing.T) {
		node := ADFNode{
			Type: "doc",
			Content: []ADFNode{
				{Type: "paragraph", Content: []ADFNode{
					{Type: "text", Text: "first"},
					{Type: "text", Text: "second"},
				}},
				{Type: "paragraph", Content: []ADFNode{
					{Type: "text", Text: "third"},
				}},
			},
		}

		assert.Equal(t, "first second third", ExtractText(node))
	})

	t.Run("empty tree yields empty string", func(t *testing.T) {
		assert.Equal(t, "", ExtractText(ADFNode{}))
	})

	t.Run("nodes without text contribute nothing", func(t *testing.T) {
		node := ADFNode{Content: []ADFNode{
			{Type: "rule"},
			{Text: "only"},
			{Type: "hardBreak"},
		}}

		assert.Equal(t, "only", ExtractText(node))
	})
}

func TestTextOrADF(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain string", `"just text"`, "just text"},
		{"adf document", `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"hello"}]}]}`, "hello"},
		{"null", `null`, ""},
		{"empty", ``, ""},
		{"unparseable", `[1,2,3]`, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textOrADF(json.RawMessage(tc.raw)))
		})
	}
}
