// Package emit turns a StyleModel into styling output. Decide makes every
// target-neutral choice once (fill routing, sizing precedence, padding and gap
// policy, zero filtering); CSS and Tailwind only render the resulting
// declarations in their own syntax.
package emit

import (
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/extractor"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// Decl is one target-neutral styling decision. The set of implementations is
// closed; renderers switch over them exhaustively.
type Decl interface {
	decl()
}

// Target renders declarations in one output syntax, recording every variable
// it references into vars.
type Target interface {
	Emit(decls []Decl, vars *VariableMap) []string
}

// Context carries facts about a node that its StyleModel does not hold.
type Context struct {
	// AnchorsAbsolute is true when at least one child is absolutely positioned.
	AnchorsAbsolute bool
}

// Axis selects a box dimension.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// FillProperty is the property a fill color is written to.
type FillProperty int

const (
	Background FillProperty = iota
	TextColor
	BorderColor
)

type (
	// Position is "relative" or "absolute" with offsets from the parent box.
	Position struct {
		Absolute  bool
		Left, Top float64
	}
	// Flex turns on flex layout.
	Flex struct {
		Column bool
		Wrap   bool
	}
	// Justify is the main-axis distribution in CSS keywords.
	Justify struct{ Value string }
	// AlignItems is the cross-axis alignment in CSS keywords.
	AlignItems struct{ Value string }
	// Grow makes the element take the remaining main-axis space.
	Grow struct{}
	// Size is an explicit dimension; Full means 100% of the parent.
	Size struct {
		Axis  Axis
		Full  bool
		Value extractor.Attr[float64]
	}
	// Padding in one of three forms, see PaddingForm.
	Padding struct {
		Form  PaddingForm
		Sides [4]extractor.Attr[float64]
	}
	// Gap is a single gap between items.
	Gap struct{ Value extractor.Attr[float64] }
	// SplitGap is a gap with distinct row and column spacing; a zero side is unset.
	SplitGap struct{ Row, Column extractor.Attr[float64] }
	// Radius is uniform when Uniform is set (Corners[0] holds the value);
	// otherwise unset corners are omitted.
	Radius struct {
		Uniform bool
		Corners [4]extractor.Attr[float64]
	}
	// Opacity of the whole element, 0 to 1.
	Opacity struct{ Value extractor.Attr[float64] }

	FontFamily struct{ Value extractor.Attr[string] }
	FontSize   struct{ Value extractor.Attr[float64] }
	FontWeight struct{ Value extractor.Attr[float64] }
	LineHeight struct {
		Value   extractor.Attr[float64]
		Percent bool
	}
	LetterSpacing struct {
		Value extractor.Attr[float64]
		Em    bool
	}
	Italic         struct{}
	TextDecoration struct{ Value string } // underline, line-through
	TextTransform  struct{ Value string } // uppercase, lowercase, capitalize
	TextAlign      struct{ Value string } // center, right, justify

	// Color writes a solid color to Property.
	Color struct {
		Property FillProperty
		Value    extractor.Attr[figma.Color]
	}
	// Gradient is a linear or radial background.
	Gradient struct {
		Radial bool
		Angle  float64
		Stops  []extractor.Stop
	}
	// BorderWidth is uniform unless Sides is set; zero sides are omitted.
	BorderWidth struct {
		Value extractor.Attr[float64]
		Sides *[4]float64
	}
	BorderStyle struct{ Dash extractor.Dash }

	// Shadow is a box shadow; with StyleRef set the whole list renders as
	// that variable and Shadows only provides its literal value.
	Shadow struct {
		StyleRef string
		Shadows  []extractor.Shadow
	}
	Blur struct {
		Background bool
		Radius     extractor.Attr[float64]
	}
	Hidden struct{}
)

// PaddingForm selects how padding is written.
type PaddingForm int

const (
	// PaddingShorthand is the compressed literal shorthand.
	PaddingShorthand PaddingForm = iota
	// PaddingVariable is one variable shared by all four sides.
	PaddingVariable
	// PaddingPerSide writes each non-zero side on its own.
	PaddingPerSide
)

func (Position) decl()       {}
func (Flex) decl()           {}
func (Justify) decl()        {}
func (AlignItems) decl()     {}
func (Grow) decl()           {}
func (Size) decl()           {}
func (Padding) decl()        {}
func (Gap) decl()            {}
func (SplitGap) decl()       {}
func (Radius) decl()         {}
func (Opacity) decl()        {}
func (FontFamily) decl()     {}
func (FontSize) decl()       {}
func (FontWeight) decl()     {}
func (LineHeight) decl()     {}
func (LetterSpacing) decl()  {}
func (Italic) decl()         {}
func (TextDecoration) decl() {}
func (TextTransform) decl()  {}
func (TextAlign) decl()      {}
func (Color) decl()          {}
func (Gradient) decl()       {}
func (BorderWidth) decl()    {}
func (BorderStyle) decl()    {}
func (Shadow) decl()         {}
func (Blur) decl()           {}
func (Hidden) decl()         {}

// Decide returns the declarations of m in output order: layout, typography,
// fill, border, effects, visibility. A nil model yields nothing.
func Decide(m *extractor.StyleModel, ctx Context) []Decl {
	if m == nil {
		return nil
	}

	var out []Decl
	out = appendLayout(out, m.Layout, ctx)
	if m.Typography != nil {
		out = appendTypography(out, m.Typography)
	}
	if m.Fill != nil {
		out = appendFill(out, m.Fill, m.Text)
	}
	if m.Stroke != nil {
		out = appendStroke(out, m.Stroke)
	}
	out = appendEffects(out, m.Effects)
	if m.Hidden {
		out = append(out, Hidden{})
	}
	return out
}

// RouteFill picks the property a fill color belongs to. Text nodes always
// color their glyphs; otherwise a bound variable's name decides.
func RouteFill(varName string, text bool) FillProperty {
	if text {
		return TextColor
	}
	name := strings.ToLower(varName)
	switch {
	case strings.Contains(name, "foreground"), strings.Contains(name, "text-color"), strings.HasPrefix(name, "text/"):
		return TextColor
	case strings.Contains(name, "stroke"), strings.Contains(name, "border-color"), strings.HasPrefix(name, "border/"):
		return BorderColor
	default:
		return Background
	}
}

func nonZero(a extractor.Attr[float64]) bool {
	return a.IsSet() && a.Value != 0
}

func sameAttr(a, b extractor.Attr[float64]) bool {
	return a.IsSet() == b.IsSet() && a.Var == b.Var && a.Value == b.Value
}

var justifyValues = map[string]string{
	"CENTER":        "center",
	"MAX":           "flex-end",
	"SPACE_BETWEEN": "space-between",
}

var alignValues = map[string]string{
	"CENTER":   "center",
	"MAX":      "flex-end",
	"BASELINE": "baseline",
}

func appendLayout(out []Decl, l extractor.Layout, ctx Context) []Decl {
	switch {
	case l.Absolute:
		out = append(out, Position{Absolute: true, Left: l.Left, Top: l.Top})
	case ctx.AnchorsAbsolute:
		out = append(out, Position{})
	}

	flex := l.Mode == "HORIZONTAL" || l.Mode == "VERTICAL"
	if flex {
		out = append(out, Flex{Column: l.Mode == "VERTICAL", Wrap: l.Wrap})
		if v, ok := justifyValues[l.PrimaryAlign]; ok {
			out = append(out, Justify{Value: v})
		}
		if v, ok := alignValues[l.CounterAlign]; ok {
			out = append(out, AlignItems{Value: v})
		}
	}

	out = appendSizing(out, l)

	if flex {
		out = appendPadding(out, l.Padding)
		out = appendGap(out, l)
	}

	out = appendRadius(out, l.Radius)

	if l.Opacity.IsSet() && (l.Opacity.IsBound() || l.Opacity.Value < 1) {
		out = append(out, Opacity{Value: l.Opacity})
	}
	return out
}

// appendSizing applies the precedence grow > FILL > FIXED; HUG writes nothing.
func appendSizing(out []Decl, l extractor.Layout) []Decl {
	if l.Grow {
		return append(out, Grow{})
	}

	axes := [...]struct {
		axis   Axis
		sizing extractor.Sizing
		value  extractor.Attr[float64]
	}{
		{Horizontal, l.SizingH, l.Width},
		{Vertical, l.SizingV, l.Height},
	}
	for _, a := range axes {
		switch a.sizing {
		case extractor.SizingFill:
			out = append(out, Size{Axis: a.axis, Full: true})
		case extractor.SizingFixed:
			if a.value.IsBound() || nonZero(a.value) {
				out = append(out, Size{Axis: a.axis, Value: a.value})
			}
		}
	}
	return out
}

func appendPadding(out []Decl, sides [4]extractor.Attr[float64]) []Decl {
	anySet, anyBound := false, false
	for _, s := range sides {
		if nonZero(s) {
			anySet = true
		}
		if s.IsBound() {
			anyBound = true
		}
	}
	if !anySet {
		return out
	}

	if !anyBound {
		return append(out, Padding{Form: PaddingShorthand, Sides: sides})
	}

	shared := true
	for _, s := range sides[1:] {
		if !s.IsBound() || s.Var != sides[0].Var {
			shared = false
			break
		}
	}
	if shared && sides[0].IsBound() {
		return append(out, Padding{Form: PaddingVariable, Sides: sides})
	}
	return append(out, Padding{Form: PaddingPerSide, Sides: sides})
}

// appendGap writes no gap when either axis distributes with space-between.
// With wrap, item spacing runs along the main axis and counter spacing
// between lines.
func appendGap(out []Decl, l extractor.Layout) []Decl {
	if l.PrimaryAlign == "SPACE_BETWEEN" || l.CounterAlign == "SPACE_BETWEEN" || l.AlignContent == "SPACE_BETWEEN" {
		return out
	}

	if l.Wrap && l.CounterSpacing.IsSet() && !sameAttr(l.CounterSpacing, l.ItemSpacing) {
		main, cross := l.ItemSpacing, l.CounterSpacing
		if !nonZero(main) {
			main = extractor.Attr[float64]{}
		}
		if !nonZero(cross) {
			cross = extractor.Attr[float64]{}
		}
		if !main.IsSet() && !cross.IsSet() {
			return out
		}
		if l.Mode == "VERTICAL" {
			return append(out, SplitGap{Row: main, Column: cross})
		}
		return append(out, SplitGap{Row: cross, Column: main})
	}

	if nonZero(l.ItemSpacing) {
		out = append(out, Gap{Value: l.ItemSpacing})
	}
	return out
}

func appendRadius(out []Decl, corners [4]extractor.Attr[float64]) []Decl {
	uniform := true
	for _, c := range corners[1:] {
		if !sameAttr(c, corners[0]) {
			uniform = false
			break
		}
	}
	if uniform {
		if nonZero(corners[0]) {
			out = append(out, Radius{Uniform: true, Corners: corners})
		}
		return out
	}

	var r Radius
	found := false
	for i, c := range corners {
		if nonZero(c) {
			r.Corners[i] = c
			found = true
		}
	}
	if found {
		out = append(out, r)
	}
	return out
}

var (
	decorationValues = map[string]string{"UNDERLINE": "underline", "STRIKETHROUGH": "line-through"}
	caseValues       = map[string]string{"UPPER": "uppercase", "LOWER": "lowercase", "TITLE": "capitalize"}
	textAlignValues  = map[string]string{"CENTER": "center", "RIGHT": "right", "JUSTIFIED": "justify"}
)

func appendTypography(out []Decl, t *extractor.Typography) []Decl {
	if t.FontFamily.IsSet() && t.FontFamily.Value != "" {
		out = append(out, FontFamily{Value: t.FontFamily})
	}
	if nonZero(t.FontSize) {
		out = append(out, FontSize{Value: t.FontSize})
	}
	if nonZero(t.FontWeight) {
		out = append(out, FontWeight{Value: t.FontWeight})
	}
	if nonZero(t.LineHeight) {
		out = append(out, LineHeight{Value: t.LineHeight, Percent: t.LineHeightPercent})
	}
	if t.LetterSpacing.IsBound() || nonZero(t.LetterSpacing) {
		out = append(out, LetterSpacing{Value: t.LetterSpacing, Em: t.LetterSpacingEm})
	}
	if t.Italic {
		out = append(out, Italic{})
	}
	if v, ok := decorationValues[t.Decoration]; ok {
		out = append(out, TextDecoration{Value: v})
	}
	if v, ok := caseValues[t.Case]; ok {
		out = append(out, TextTransform{Value: v})
	}
	if v, ok := textAlignValues[t.Align]; ok {
		out = append(out, TextAlign{Value: v})
	}
	return out
}

func appendFill(out []Decl, f *extractor.Fill, text bool) []Decl {
	switch f.Kind {
	case extractor.FillLinearGradient, extractor.FillRadialGradient:
		if len(f.Stops) == 0 {
			return out
		}
		return append(out, Gradient{Radial: f.Kind == extractor.FillRadialGradient, Angle: f.Angle, Stops: f.Stops})
	default:
		if !f.Color.IsSet() {
			return out
		}
		return append(out, Color{Property: RouteFill(f.Color.Var, text), Value: f.Color})
	}
}

func appendStroke(out []Decl, s *extractor.Stroke) []Decl {
	if s.Sides != nil {
		out = append(out, BorderWidth{Sides: s.Sides})
	} else if s.Weight.IsBound() || nonZero(s.Weight) {
		out = append(out, BorderWidth{Value: s.Weight})
	} else {
		return out
	}

	out = append(out, BorderStyle{Dash: s.Dash})
	if s.Color.IsSet() {
		out = append(out, Color{Property: BorderColor, Value: s.Color})
	}
	return out
}

func appendEffects(out []Decl, e extractor.Effects) []Decl {
	if len(e.Shadows) > 0 {
		out = append(out, Shadow{StyleRef: e.StyleRef, Shadows: e.Shadows})
	}

	var layer, background bool
	for _, b := range e.Blurs {
		if b.Background && !background {
			background = true
			out = append(out, Blur{Background: true, Radius: b.Radius})
		}
		if !b.Background && !layer {
			layer = true
			out = append(out, Blur{Radius: b.Radius})
		}
	}
	return out
}
