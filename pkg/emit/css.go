package emit

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/extractor"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// CSS renders declarations as "property: value" strings.
type CSS struct{}

var _ Target = CSS{}

var (
	sideNames   = [4]string{"top", "right", "bottom", "left"}
	cornerNames = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}
	fillNames   = map[FillProperty]string{
		Background:  "background-color",
		TextColor:   "color",
		BorderColor: "border-color",
	}
	dashNames = map[extractor.Dash]string{
		extractor.DashSolid:  "solid",
		extractor.DashDashed: "dashed",
		extractor.DashDotted: "dotted",
	}
)

// Emit implements Target.
func (CSS) Emit(decls []Decl, vars *VariableMap) []string {
	var out []string
	add := func(prop, value string) {
		out = append(out, prop+": "+value)
	}
	px := func(a extractor.Attr[float64]) string {
		return cssValue(a, Px, vars)
	}

	for _, d := range decls {
		switch d := d.(type) {
		case Position:
			if !d.Absolute {
				add("position", "relative")
				continue
			}
			add("position", "absolute")
			add("left", Px(d.Left))
			add("top", Px(d.Top))
		case Flex:
			add("display", "flex")
			if d.Column {
				add("flex-direction", "column")
			} else {
				add("flex-direction", "row")
			}
			if d.Wrap {
				add("flex-wrap", "wrap")
			}
		case Justify:
			add("justify-content", d.Value)
		case AlignItems:
			add("align-items", d.Value)
		case Grow:
			add("flex", "1")
		case Size:
			prop := "width"
			if d.Axis == Vertical {
				prop = "height"
			}
			if d.Full {
				add(prop, "100%")
			} else {
				add(prop, px(d.Value))
			}
		case Padding:
			switch d.Form {
			case PaddingVariable:
				add("padding", px(d.Sides[0]))
			case PaddingShorthand:
				add("padding", paddingShorthand(d.Sides))
			default:
				for i, s := range d.Sides {
					if nonZero(s) {
						add("padding-"+sideNames[i], px(s))
					}
				}
			}
		case Gap:
			add("gap", px(d.Value))
		case SplitGap:
			if d.Row.IsSet() {
				add("row-gap", px(d.Row))
			}
			if d.Column.IsSet() {
				add("column-gap", px(d.Column))
			}
		case Radius:
			if d.Uniform {
				add("border-radius", px(d.Corners[0]))
				continue
			}
			for i, c := range d.Corners {
				if c.IsSet() {
					add("border-"+cornerNames[i]+"-radius", px(c))
				}
			}
		case Opacity:
			add("opacity", cssValue(d.Value, FormatNumber, vars))
		case FontFamily:
			add("font-family", cssString(d.Value, quoteFamily, vars))
		case FontSize:
			add("font-size", px(d.Value))
		case FontWeight:
			add("font-weight", cssValue(d.Value, FormatNumber, vars))
		case LineHeight:
			unit := Px
			if d.Percent {
				unit = percent
			}
			add("line-height", cssValue(d.Value, unit, vars))
		case LetterSpacing:
			unit := Px
			if d.Em {
				unit = em
			}
			add("letter-spacing", cssValue(d.Value, unit, vars))
		case Italic:
			add("font-style", "italic")
		case TextDecoration:
			add("text-decoration", d.Value)
		case TextTransform:
			add("text-transform", d.Value)
		case TextAlign:
			add("text-align", d.Value)
		case Color:
			add(fillNames[d.Property], cssColor(d.Value, vars))
		case Gradient:
			add("background", gradientValue(d))
		case BorderWidth:
			if d.Sides == nil {
				add("border-width", px(d.Value))
				continue
			}
			for i, w := range d.Sides {
				if w != 0 {
					add("border-"+sideNames[i]+"-width", Px(w))
				}
			}
		case BorderStyle:
			add("border-style", dashNames[d.Dash])
		case Shadow:
			add("box-shadow", shadowValue(d, vars))
		case Blur:
			prop := "filter"
			if d.Background {
				prop = "backdrop-filter"
			}
			add(prop, "blur("+px(d.Radius)+")")
		case Hidden:
			add("display", "none")
		}
	}
	return out
}

// cssValue renders a bound attribute as var() and records its literal.
func cssValue(a extractor.Attr[float64], format func(float64) string, vars *VariableMap) string {
	if a.IsBound() {
		vars.Set(VarName(a.Var), format(a.Value))
		return VarRef(a.Var)
	}
	return format(a.Value)
}

func cssString(a extractor.Attr[string], format func(string) string, vars *VariableMap) string {
	if a.IsBound() {
		vars.Set(VarName(a.Var), format(a.Value))
		return VarRef(a.Var)
	}
	return format(a.Value)
}

func cssColor(a extractor.Attr[figma.Color], vars *VariableMap) string {
	if a.IsBound() {
		vars.Set(VarName(a.Var), ColorLiteral(a.Value))
		return VarRef(a.Var)
	}
	return ColorLiteral(a.Value)
}

func percent(v float64) string { return FormatNumber(v) + "%" }

func em(v float64) string { return FormatNumber(v) + "em" }

func quoteFamily(family string) string {
	if strings.ContainsAny(family, `'"`) {
		return family
	}
	return "'" + family + "'"
}

// paddingShorthand compresses literal sides into the shortest CSS shorthand.
func paddingShorthand(s [4]extractor.Attr[float64]) string {
	t, r, b, l := s[0].Value, s[1].Value, s[2].Value, s[3].Value
	switch {
	case t == r && r == b && b == l:
		return Px(t)
	case t == b && r == l:
		return Px(t) + " " + Px(r)
	default:
		return strings.Join([]string{Px(t), Px(r), Px(b), Px(l)}, " ")
	}
}

func gradientValue(g Gradient) string {
	stops := make([]string, 0, len(g.Stops))
	for _, s := range g.Stops {
		stops = append(stops, ColorLiteral(s.Color)+" "+FormatNumber(s.Position*100)+"%")
	}
	if g.Radial {
		return "radial-gradient(circle, " + strings.Join(stops, ", ") + ")"
	}
	return fmt.Sprintf("linear-gradient(%sdeg, %s)", FormatNumber(g.Angle), strings.Join(stops, ", "))
}

// shadowValue renders a box-shadow value. A style reference renders as its
// variable, whose literal is the plain shadow list; otherwise per-field
// bindings render as var() inside the literal.
func shadowValue(s Shadow, vars *VariableMap) string {
	if s.StyleRef != "" {
		vars.Set(VarName(s.StyleRef), shadowList(s.Shadows, nil))
		return VarRef(s.StyleRef)
	}
	return shadowList(s.Shadows, vars)
}

// shadowList renders shadows comma-joined. With a nil vars map every field is
// written as its resolved literal.
func shadowList(shadows []extractor.Shadow, vars *VariableMap) string {
	length := func(a extractor.Attr[float64]) string {
		if vars == nil {
			return Px(a.Value)
		}
		return cssValue(a, Px, vars)
	}
	color := func(a extractor.Attr[figma.Color]) string {
		if vars == nil {
			return ColorLiteral(a.Value)
		}
		return cssColor(a, vars)
	}

	parts := make([]string, 0, len(shadows))
	for _, sh := range shadows {
		v := strings.Join([]string{length(sh.X), length(sh.Y), length(sh.Blur), length(sh.Spread), color(sh.Color)}, " ")
		if sh.Inset {
			v = "inset " + v
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, ", ")
}
