package render

import (
	"bytes"
	"encoding/json"
	"html"
	"strings"
)

// htmlComment renders text as an HTML comment that cannot be closed early.
func htmlComment(text string) string {
	text = html.EscapeString(text)
	text = strings.ReplaceAll(text, "--", "&#45;&#45;")
	return "<!-- " + text + " -->"
}

// jsxComment renders text as a JSX expression comment.
func jsxComment(text string) string {
	text = strings.ReplaceAll(text, "*/", "*\\/")
	return "{/* " + text + " */}"
}

// jsxText renders text content; anything JSX would interpret becomes a
// quoted string expression.
func jsxText(text string) string {
	if strings.ContainsAny(text, "{}<>\n\"'`&") {
		return "{" + jsString(text) + "}"
	}
	return text
}

// jsxClassName renders a className attribute.
func jsxClassName(tokens []string) string {
	classes := strings.Join(tokens, " ")
	if strings.ContainsAny(classes, `"\`) {
		return "className={" + jsString(classes) + "}"
	}
	return `className="` + classes + `"`
}

// jsString renders s as a double-quoted JavaScript string literal. JSON
// strings are valid JavaScript, and the encoder escapes U+2028 and U+2029.
func jsString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
