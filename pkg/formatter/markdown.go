package formatter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/classindex"
	"github.com/hellenic-development/figma-codegen/pkg/emit"

	"github.com/dustin/go-humanize"
)

// Report is everything one generation run produced.
type Report struct {
	Title      string
	Variables  []emit.Variable
	Stylesheet string
	HTML       string
	JSX        string
	Index      classindex.Index
	Elements   int
}

// ToMarkdown transforms the output of a run into a markdown document: a summary,
// the variable table, the CSS and HTML target, the Tailwind JSX target and the
// class index.
func ToMarkdown(r Report) string {
	var sb strings.Builder

	title := r.Title
	if title == "" {
		title = "Untitled"
	}
	sb.WriteString(fmt.Sprintf("# Figma Code Generation - %s\n\n", title))
	sb.WriteString("This document contains the code generated from the Figma design.\n\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Output | Size |\n")
	sb.WriteString("|--------|------|\n")
	sb.WriteString(fmt.Sprintf("| Elements | %d |\n", r.Elements))
	sb.WriteString(fmt.Sprintf("| Variables | %d |\n", len(r.Variables)))
	sb.WriteString(fmt.Sprintf("| Stylesheet | %s |\n", humanize.Bytes(uint64(len(r.Stylesheet)))))
	sb.WriteString(fmt.Sprintf("| HTML | %s |\n", humanize.Bytes(uint64(len(r.HTML)))))
	sb.WriteString(fmt.Sprintf("| JSX | %s |\n", humanize.Bytes(uint64(len(r.JSX)))))
	sb.WriteString(fmt.Sprintf("| Class tokens | %d |\n", len(r.Index)))
	sb.WriteString("\n")

	// Variables
	if len(r.Variables) > 0 {
		sb.WriteString("## Variables\n\n")
		sb.WriteString("| Variable | Value |\n")
		sb.WriteString("|----------|-------|\n")
		for _, v := range r.Variables {
			sb.WriteString(fmt.Sprintf("| `--%s` | `%s` |\n", v.Name, escapeCell(v.Value)))
		}
		sb.WriteString("\n")
	}

	// CSS target
	sb.WriteString("## CSS\n\n")
	writeBlock(&sb, "css", r.Stylesheet)
	writeBlock(&sb, "html", r.HTML)

	// Tailwind target
	sb.WriteString("## Tailwind\n\n")
	writeBlock(&sb, "jsx", r.JSX)

	// Class index
	if len(r.Index) > 0 {
		sb.WriteString("## Class Index\n\n")
		sb.WriteString("| Class | Elements |\n")
		sb.WriteString("|-------|----------|\n")
		for _, token := range r.Index.Tokens() {
			sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", escapeCell(token), escapeCell(strings.Join(r.Index[token], ", "))))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeBlock(sb *strings.Builder, lang, code string) {
	if strings.TrimSpace(code) == "" {
		return
	}
	sb.WriteString("```" + lang + "\n")
	sb.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n\n")
}

// escapeCell keeps table cells on one row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
