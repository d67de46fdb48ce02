package emit

import (
	"math"
	"regexp"
	"strings"
)

// family is a Tailwind property family with its own scale.
type family int

const (
	familySpacing family = iota
	familyFontSize
	familyFontWeight
	familyFontFamily
	familyLineHeight
	familyLetterSpacing
	familyRadius
	familyBorderWidth
	familyShadow
	familyBlur
	familyOpacity
)

// scaleNames recover a scale token from a normalized variable name, e.g.
// "spacing-0-5" -> "0-5" (later "0.5") or "radius-lg" -> "lg". The name may
// carry a namespace prefix ("semantic-spacing-4").
var scaleNames = map[family]*regexp.Regexp{
	familySpacing:       regexp.MustCompile(`(?:^|-)(?:spacing|space|spacer|gap|size)-(px|\d+(?:-5)?)$`),
	familyFontSize:      regexp.MustCompile(`(?:^|-)(?:font-size|text-size|text)-(xs|sm|base|lg|xl|[2-9]xl)$`),
	familyFontWeight:    regexp.MustCompile(`(?:^|-)(?:font-weight|weight|font)-(thin|extralight|light|normal|medium|semibold|bold|extrabold|black)$`),
	familyFontFamily:    regexp.MustCompile(`(?:^|-)(?:font-family|family|font)-(sans|serif|mono)$`),
	familyLineHeight:    regexp.MustCompile(`(?:^|-)(?:line-height|leading)-(none|tight|snug|normal|relaxed|loose|\d+)$`),
	familyLetterSpacing: regexp.MustCompile(`(?:^|-)(?:letter-spacing|tracking)-(tighter|tight|normal|wide|wider|widest)$`),
	familyRadius:        regexp.MustCompile(`(?:^|-)(?:border-radius|corner-radius|radius|rounded)-(none|sm|default|base|md|lg|xl|2xl|3xl|full)$`),
	familyBorderWidth:   regexp.MustCompile(`(?:^|-)(?:border-width|stroke-width|border|stroke)-(\d+)$`),
	familyShadow:        regexp.MustCompile(`(?:^|-)(?:box-shadow|shadow|elevation)-(sm|default|base|md|lg|xl|2xl|inner|none)$`),
	familyBlur:          regexp.MustCompile(`(?:^|-)blur-(none|sm|default|base|md|lg|xl|2xl|3xl)$`),
	familyOpacity:       regexp.MustCompile(`(?:^|-)opacity-(\d+)$`),
}

// scaleToken extracts the Tailwind scale token encoded in a variable name.
// The empty token with ok=true is the family's default ("rounded", "border").
func scaleToken(f family, varName string) (string, bool) {
	re, ok := scaleNames[f]
	if !ok {
		return "", false
	}
	m := re.FindStringSubmatch(VarName(varName))
	if m == nil {
		return "", false
	}

	token := m[1]
	switch f {
	case familySpacing:
		token = strings.Replace(token, "-", ".", 1)
	case familyRadius, familyShadow, familyBlur:
		if token == "default" || token == "base" {
			token = ""
		}
	case familyBorderWidth:
		if token == "1" {
			token = ""
		}
	}
	return token, true
}

// spacingScale is Tailwind's default spacing scale in px.
var spacingScale = map[float64]string{
	0: "0", 1: "px", 2: "0.5", 4: "1", 6: "1.5", 8: "2", 10: "2.5", 12: "3", 14: "3.5",
	16: "4", 20: "5", 24: "6", 28: "7", 32: "8", 36: "9", 40: "10", 44: "11", 48: "12",
	56: "14", 64: "16", 80: "20", 96: "24", 112: "28", 128: "32", 144: "36", 160: "40",
	176: "44", 192: "48", 208: "52", 224: "56", 240: "60", 256: "64", 288: "72", 320: "80", 384: "96",
}

var fontSizeScale = map[float64]string{
	12: "xs", 14: "sm", 16: "base", 18: "lg", 20: "xl", 24: "2xl", 30: "3xl",
	36: "4xl", 48: "5xl", 60: "6xl", 72: "7xl", 96: "8xl", 128: "9xl",
}

var fontWeightScale = map[float64]string{
	100: "thin", 200: "extralight", 300: "light", 400: "normal", 500: "medium",
	600: "semibold", 700: "bold", 800: "extrabold", 900: "black",
}

var lineHeightScale = map[float64]string{
	12: "3", 16: "4", 20: "5", 24: "6", 28: "7", 32: "8", 36: "9", 40: "10",
}

var lineHeightPercentScale = map[float64]string{
	100: "none", 125: "tight", 137.5: "snug", 150: "normal", 162.5: "relaxed", 200: "loose",
}

var letterSpacingEmScale = map[float64]string{
	-0.05: "tighter", -0.025: "tight", 0: "normal", 0.025: "wide", 0.05: "wider", 0.1: "widest",
}

// radiusScale maps px to the rounded-* suffix; "" is the bare "rounded".
var radiusScale = map[float64]string{
	2: "sm", 4: "", 6: "md", 8: "lg", 12: "xl", 16: "2xl", 24: "3xl",
}

// borderWidthScale maps px to the border-* suffix; "" is the bare "border".
var borderWidthScale = map[float64]string{
	1: "", 2: "2", 4: "4", 8: "8",
}

// blurScale maps px to the blur-* suffix; "" is the bare "blur".
var blurScale = map[float64]string{
	4: "sm", 8: "", 12: "md", 16: "lg", 24: "xl", 40: "2xl", 64: "3xl",
}

var opacityScale = map[float64]bool{
	0: true, 5: true, 10: true, 15: true, 20: true, 25: true, 30: true, 35: true, 40: true, 45: true,
	50: true, 55: true, 60: true, 65: true, 70: true, 75: true, 80: true, 85: true, 90: true, 95: true, 100: true,
}

// lookup finds v in a px table, tolerating float noise from the source.
func lookup(table map[float64]string, v float64) (string, bool) {
	token, ok := table[math.Round(v*1000)/1000]
	return token, ok
}

// radiusToken maps a literal radius; anything at or above 9999 is "full".
func radiusToken(v float64) (string, bool) {
	if v >= 9999 {
		return "full", true
	}
	return lookup(radiusScale, v)
}

func opacityToken(v float64) (string, bool) {
	pct := math.Round(v * 100)
	if math.Abs(v*100-pct) > 0.01 || !opacityScale[pct] {
		return "", false
	}
	return FormatNumber(pct), true
}
