package emit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/naming"
)

// FormatNumber renders v with at most two decimals and no trailing zeros.
func FormatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Px renders v as a pixel length.
func Px(v float64) string {
	return FormatNumber(v) + "px"
}

// ColorToHex converts a Figma RGBA color (with 0-1 float values) to standard hexadecimal format (#RRGGBB).
func ColorToHex(c figma.Color) string {
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))

	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ColorLiteral renders an opaque color as hex and a translucent one as rgba().
func ColorLiteral(c figma.Color) string {
	if c.A >= 0.995 {
		return ColorToHex(c)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		int(math.Round(c.R*255)), int(math.Round(c.G*255)), int(math.Round(c.B*255)), FormatNumber(c.A))
}

// VarName returns the custom-property name (without "--") of a variable or style.
// It is never empty.
func VarName(symbol string) string {
	return naming.CSSVariableOr(symbol, "")
}

// VarRef returns "var(--name)" for a variable or style name.
func VarRef(symbol string) string {
	return "var(--" + VarName(symbol) + ")"
}

// arbitrary wraps a value for a Tailwind arbitrary-value class, escaping spaces.
func arbitrary(value string) string {
	return "[" + strings.ReplaceAll(value, " ", "_") + "]"
}
