package emit

import (
	"github.com/hellenic-development/figma-codegen/pkg/extractor"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Tailwind renders declarations as utility class tokens. Bound values use the
// scale token encoded in the variable name when there is one, and an
// arbitrary var() value otherwise; literals go through the default scales.
type Tailwind struct{}

var _ Target = Tailwind{}

var (
	sidePrefixes   = [4]string{"t", "r", "b", "l"}
	cornerPrefixes = [4]string{"tl", "tr", "br", "bl"}
	colorPrefixes  = map[FillProperty]string{
		Background:  "bg",
		TextColor:   "text",
		BorderColor: "border",
	}
	justifyClasses = map[string]string{
		"center":        "justify-center",
		"flex-end":      "justify-end",
		"space-between": "justify-between",
	}
	alignClasses = map[string]string{
		"center":   "items-center",
		"flex-end": "items-end",
		"baseline": "items-baseline",
	}
)

// Emit implements Target.
func (Tailwind) Emit(decls []Decl, vars *VariableMap) []string {
	var out []string
	add := func(classes ...string) {
		out = append(out, classes...)
	}
	spacing := func(prefix string, a extractor.Attr[float64]) string {
		return scaled(prefix, familySpacing, a, Px, spacingLookup, "", vars)
	}

	for _, d := range decls {
		switch d := d.(type) {
		case Position:
			if !d.Absolute {
				add("relative")
				continue
			}
			add("absolute", offsetClass("left", d.Left), offsetClass("top", d.Top))
		case Flex:
			add("flex")
			if d.Column {
				add("flex-col")
			} else {
				add("flex-row")
			}
			if d.Wrap {
				add("flex-wrap")
			}
		case Justify:
			if c, ok := justifyClasses[d.Value]; ok {
				add(c)
			}
		case AlignItems:
			if c, ok := alignClasses[d.Value]; ok {
				add(c)
			}
		case Grow:
			add("flex-1")
		case Size:
			prefix := "w"
			if d.Axis == Vertical {
				prefix = "h"
			}
			if d.Full {
				add(prefix + "-full")
			} else {
				add(spacing(prefix, d.Value))
			}
		case Padding:
			add(paddingClasses(d, spacing)...)
		case Gap:
			add(spacing("gap", d.Value))
		case SplitGap:
			if d.Row.IsSet() {
				add(spacing("gap-y", d.Row))
			}
			if d.Column.IsSet() {
				add(spacing("gap-x", d.Column))
			}
		case Radius:
			if d.Uniform {
				add(scaled("rounded", familyRadius, d.Corners[0], Px, radiusToken, "", vars))
				continue
			}
			for i, c := range d.Corners {
				if c.IsSet() {
					add(scaled("rounded-"+cornerPrefixes[i], familyRadius, c, Px, radiusToken, "", vars))
				}
			}
		case Opacity:
			add(scaled("opacity", familyOpacity, d.Value, FormatNumber, opacityToken, "", vars))
		case FontFamily:
			add(fontFamilyClass(d.Value, vars))
		case FontSize:
			add(scaled("text", familyFontSize, d.Value, Px, tableLookup(fontSizeScale), "length:", vars))
		case FontWeight:
			add(scaled("font", familyFontWeight, d.Value, FormatNumber, tableLookup(fontWeightScale), "", vars))
		case LineHeight:
			if d.Percent {
				add(scaled("leading", familyLineHeight, d.Value, percent, tableLookup(lineHeightPercentScale), "", vars))
			} else {
				add(scaled("leading", familyLineHeight, d.Value, Px, tableLookup(lineHeightScale), "", vars))
			}
		case LetterSpacing:
			if d.Em {
				add(scaled("tracking", familyLetterSpacing, d.Value, em, tableLookup(letterSpacingEmScale), "", vars))
			} else {
				add(scaled("tracking", familyLetterSpacing, d.Value, Px, nil, "", vars))
			}
		case Italic:
			add("italic")
		case TextDecoration:
			add(d.Value)
		case TextTransform:
			add(d.Value)
		case TextAlign:
			add("text-" + d.Value)
		case Color:
			add(colorClass(colorPrefixes[d.Property], d.Value, vars))
		case Gradient:
			add("bg-" + arbitrary(gradientValue(d)))
		case BorderWidth:
			if d.Sides == nil {
				add(scaled("border", familyBorderWidth, d.Value, Px, tableLookup(borderWidthScale), "length:", vars))
				continue
			}
			for i, w := range d.Sides {
				if w != 0 {
					add(scaled("border-"+sidePrefixes[i], familyBorderWidth, extractor.Literal(w), Px, tableLookup(borderWidthScale), "length:", vars))
				}
			}
		case BorderStyle:
			switch d.Dash {
			case extractor.DashDashed:
				add("border-dashed")
			case extractor.DashDotted:
				add("border-dotted")
			}
		case Shadow:
			add(shadowClass(d, vars))
		case Blur:
			prefix := "blur"
			if d.Background {
				prefix = "backdrop-blur"
			}
			add(scaled(prefix, familyBlur, d.Radius, Px, tableLookup(blurScale), "", vars))
		case Hidden:
			add("hidden")
		}
	}
	return out
}

// join builds prefix-token; the empty token is the family default.
func join(prefix, token string) string {
	if token == "" {
		return prefix
	}
	return prefix + "-" + token
}

func tableLookup(table map[float64]string) func(float64) (string, bool) {
	return func(v float64) (string, bool) { return lookup(table, v) }
}

func spacingLookup(v float64) (string, bool) {
	return lookup(spacingScale, v)
}

// scaled renders one numeric attribute of family f. Bound values record
// their literal (formatted by format) and use the name's scale token or an
// arbitrary var(); literals use table, falling back to an arbitrary literal.
// hint disambiguates arbitrary values for prefixes shared with colors.
func scaled(prefix string, f family, a extractor.Attr[float64], format func(float64) string, table func(float64) (string, bool), hint string, vars *VariableMap) string {
	if a.IsBound() {
		vars.Set(VarName(a.Var), format(a.Value))
		if token, ok := scaleToken(f, a.Var); ok {
			return join(prefix, token)
		}
		return prefix + "-" + arbitrary(hint+VarRef(a.Var))
	}
	if table != nil {
		if token, ok := table(a.Value); ok {
			return join(prefix, token)
		}
	}
	return prefix + "-" + arbitrary(format(a.Value))
}

// offsetClass renders an absolute offset, using Tailwind's negative prefix
// for negative scale values.
func offsetClass(prefix string, v float64) string {
	abs, sign := v, ""
	if v < 0 {
		abs, sign = -v, "-"
	}
	if token, ok := spacingLookup(abs); ok {
		return sign + prefix + "-" + token
	}
	return prefix + "-" + arbitrary(Px(v))
}

func paddingClasses(p Padding, spacing func(string, extractor.Attr[float64]) string) []string {
	s := p.Sides
	switch p.Form {
	case PaddingVariable:
		return []string{spacing("p", s[0])}
	case PaddingShorthand:
		t, r, b, l := s[0].Value, s[1].Value, s[2].Value, s[3].Value
		if t == r && r == b && b == l {
			return []string{spacing("p", s[0])}
		}
		if t == b && r == l {
			var out []string
			if t != 0 {
				out = append(out, spacing("py", s[0]))
			}
			if r != 0 {
				out = append(out, spacing("px", s[1]))
			}
			return out
		}
	}

	var out []string
	for i, side := range s {
		if nonZero(side) {
			out = append(out, spacing("p"+sidePrefixes[i], side))
		}
	}
	return out
}

func colorClass(prefix string, a extractor.Attr[figma.Color], vars *VariableMap) string {
	if a.IsBound() {
		vars.Set(VarName(a.Var), ColorLiteral(a.Value))
		return prefix + "-" + VarName(a.Var)
	}
	return prefix + "-" + arbitrary(ColorLiteral(a.Value))
}

func fontFamilyClass(a extractor.Attr[string], vars *VariableMap) string {
	if a.IsBound() {
		vars.Set(VarName(a.Var), quoteFamily(a.Value))
		if token, ok := scaleToken(familyFontFamily, a.Var); ok {
			return "font-" + token
		}
		return "font-" + arbitrary(VarRef(a.Var))
	}
	return "font-" + arbitrary(quoteFamily(a.Value))
}

func shadowClass(s Shadow, vars *VariableMap) string {
	if s.StyleRef != "" {
		vars.Set(VarName(s.StyleRef), shadowList(s.Shadows, nil))
		if token, ok := scaleToken(familyShadow, s.StyleRef); ok {
			return join("shadow", token)
		}
		return "shadow-" + arbitrary(VarRef(s.StyleRef))
	}
	return "shadow-" + arbitrary(shadowList(s.Shadows, vars))
}
