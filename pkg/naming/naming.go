// Package naming converts Figma layer and variable names into identifiers
// usable in CSS, HTML and JSX output.
package naming

import (
	"strings"
	"unicode"
)

// ToKebabCase converts a string to kebab-case format (lowercase with hyphens).
// Letters and digits of any script are kept. Spaces, underscores, slashes and
// dots become hyphens, other special characters are removed and repeated
// hyphens collapse.
func ToKebabCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var result strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			result.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == ' ' || r == '_' || r == '/' || r == '.' || r == '=' || r == ',':
			if !lastHyphen {
				result.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(result.String(), "-")
}

// CSSVariable returns the custom-property name (without the leading "--") for a
// Figma variable or style name: "foreground/neutral" -> "foreground-neutral",
// "spacing/0.5" -> "spacing-0-5". CSS identifiers accept non-ASCII letters,
// so "颜色/主要" -> "颜色-主要".
func CSSVariable(name string) string {
	return ToKebabCase(name)
}

// CSSVariableOr is CSSVariable with a fallback for names that keep no letter
// or digit ("🎨", "//"): the name is derived from id instead,
// "VariableID:12:3" -> "variableid-12-3".
func CSSVariableOr(name, id string) string {
	if v := CSSVariable(name); v != "" {
		return v
	}
	if v := CSSVariable(strings.ReplaceAll(id, ":", "-")); v != "" {
		return v
	}
	return "unnamed"
}

// ToPascalCase converts a string like "my profile page" to "MyProfilePage".
// Non-alphanumeric characters are treated as word boundaries. When keepDots is
// true, dots are preserved as namespace separators ("icon.close" -> "Icon.Close").
func ToPascalCase(s string, keepDots bool) string {
	var result strings.Builder
	upper := true
	for _, r := range s {
		if r == '.' && keepDots {
			if result.Len() > 0 && !strings.HasSuffix(result.String(), ".") {
				result.WriteRune('.')
			}
			upper = true
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			result.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			result.WriteRune(r)
		}
	}

	name := strings.Trim(result.String(), ".")
	if name == "" {
		return ""
	}
	if first := rune(name[0]); unicode.IsDigit(first) {
		name = "E" + name
	}
	return name
}
