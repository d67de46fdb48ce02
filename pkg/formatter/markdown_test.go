package formatter

import (
	"strings"
	"testing"

	"github.com/hellenic-development/figma-codegen/pkg/classindex"
	"github.com/hellenic-development/figma-codegen/pkg/emit"

	"github.com/stretchr/testify/assert"
)

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown(Report{
		Title:      "Design System",
		Variables:  []emit.Variable{{Name: "spacing-4", Value: "16px"}},
		Stylesheet: ".card {\n  padding: var(--spacing-4);\n}\n",
		HTML:       `<div class="card"></div>`,
		JSX:        `<div className="p-4" />`,
		Index:      classindex.Index{"p-4": {"Card"}, "w-[calc(100%|2)]": {"A", "B"}},
		Elements:   1,
	})

	assert.True(t, strings.HasPrefix(md, "# Figma Code Generation - Design System\n"))
	assert.Contains(t, md, "| Elements | 1 |\n")
	assert.Contains(t, md, "| JSX | 23 B |\n")
	assert.Contains(t, md, "| `--spacing-4` | `16px` |\n")
	assert.Contains(t, md, "```css\n.card {\n  padding: var(--spacing-4);\n}\n```\n")
	assert.Contains(t, md, "```html\n<div class=\"card\"></div>\n```\n")
	assert.Contains(t, md, "```jsx\n<div className=\"p-4\" />\n```\n")
	assert.Contains(t, md, "| `p-4` | Card |\n")
	assert.Contains(t, md, "| `w-[calc(100%\\|2)]` | A, B |\n")
}

func TestToMarkdownEmpty(t *testing.T) {
	md := ToMarkdown(Report{})

	assert.Contains(t, md, "# Figma Code Generation - Untitled")
	assert.NotContains(t, md, "## Variables")
	assert.NotContains(t, md, "## Class Index")
	assert.NotContains(t, md, "```")
}
