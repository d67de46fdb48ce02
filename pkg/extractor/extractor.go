// Package extractor builds a StyleModel for a Figma node, resolving variable
// bindings through a variables.Resolver.
package extractor

import (
	"math"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/naming"
	"github.com/hellenic-development/figma-codegen/pkg/variables"
)

// Warner receives non-fatal extraction warnings.
type Warner interface {
	Warnf(format string, args ...any)
}

// Extractor extracts style models. It holds no per-node state and can be
// reused for every node of a run.
type Extractor struct {
	resolver *variables.Resolver
	lib      *figma.Library
	log      Warner
}

// New returns an Extractor. lib is used to reach main components of instances
// and effect style names; it may be nil.
func New(resolver *variables.Resolver, lib *figma.Library, log Warner) *Extractor {
	if resolver == nil {
		resolver = variables.NewResolver(nil, log)
	}
	return &Extractor{resolver: resolver, lib: lib, log: log}
}

// Extract builds the StyleModel of node. parent is used for absolute
// positioning and stretch sizing; it may be nil. Each sub-model is extracted
// independently: a failure in one leaves it empty and is logged.
func (e *Extractor) Extract(node, parent *figma.Node) *StyleModel {
	m := &StyleModel{
		Text:   node.Type == "TEXT",
		Hidden: !node.IsVisible(),
	}

	e.guard(node, "layout", func() { m.Layout = e.layout(node, parent) })
	if m.Text {
		e.guard(node, "typography", func() { m.Typography = e.typography(node) })
	}
	e.guard(node, "fill", func() { m.Fill = e.fill(node) })
	e.guard(node, "stroke", func() { m.Stroke = e.stroke(node) })
	e.guard(node, "effects", func() { m.Effects = e.effects(node) })

	return m
}

func (e *Extractor) guard(node *figma.Node, part string, fn func()) {
	defer func() {
		if p := recover(); p != nil && e.log != nil {
			e.log.Warnf("node %s (%s): %s extraction failed: %v", node.ID, node.Name, part, p)
		}
	}()
	fn()
}

// number resolves prop against the node's bindings, falling back to raw.
func (e *Extractor) number(bindings map[string]figma.AliasList, prop variables.Property, raw float64) Attr[float64] {
	if b, ok := e.resolver.Resolve(bindings, prop); ok && b.Value.Kind == variables.KindNumber {
		return Bound(b.Name, b.Value.Number)
	}
	return Literal(raw)
}

// numberKey resolves a raw binding key, falling back to raw.
func (e *Extractor) numberKey(bindings map[string]figma.AliasList, key string, raw float64) Attr[float64] {
	if b, ok := e.resolver.ResolveKey(bindings, key); ok && b.Value.Kind == variables.KindNumber {
		return Bound(b.Name, b.Value.Number)
	}
	return Literal(raw)
}

func (e *Extractor) layout(node, parent *figma.Node) Layout {
	l := Layout{
		Mode:         autoLayoutMode(node.LayoutMode),
		Wrap:         node.LayoutWrap == "WRAP",
		PrimaryAlign: node.PrimaryAxisAlignItems,
		CounterAlign: node.CounterAxisAlignItems,
		AlignContent: node.CounterAxisAlignContent,
	}
	bv := node.BoundVariables

	// Dimensions
	var w, h float64
	hasBox := node.AbsoluteBoundingBox != nil
	if hasBox {
		w, h = node.AbsoluteBoundingBox.Width, node.AbsoluteBoundingBox.Height
	}
	if width := e.number(bv, variables.Width, w); width.IsBound() || hasBox {
		l.Width = width
	}
	if height := e.number(bv, variables.Height, h); height.IsBound() || hasBox {
		l.Height = height
	}
	l.SizingH, l.SizingV = sizing(node, parent)
	if node.LayoutGrow == 1 {
		l.Grow = true
		l.SizingH, l.SizingV = SizingFill, SizingFill
	}

	// Padding and gap only exist on auto-layout frames.
	if l.Mode != "" {
		l.Padding = [4]Attr[float64]{
			e.number(bv, variables.PaddingTop, node.PaddingTop),
			e.number(bv, variables.PaddingRight, node.PaddingRight),
			e.number(bv, variables.PaddingBottom, node.PaddingBottom),
			e.number(bv, variables.PaddingLeft, node.PaddingLeft),
		}
		l.ItemSpacing = e.number(bv, variables.ItemSpacing, node.ItemSpacing)

		var counter float64
		if node.CounterAxisSpacing != nil {
			counter = *node.CounterAxisSpacing
		}
		if cs := e.number(bv, variables.CounterAxisSpacing, counter); cs.IsBound() || node.CounterAxisSpacing != nil {
			l.CounterSpacing = cs
		}
	}

	l.Radius = e.radius(node)

	if o := e.number(bv, variables.Opacity, opacityOf(node)); o.IsBound() || o.Value < 1 {
		l.Opacity = o
	}

	if node.LayoutPositioning == "ABSOLUTE" {
		l.Absolute = true
		if hasBox && parent != nil && parent.AbsoluteBoundingBox != nil {
			l.Left = node.AbsoluteBoundingBox.X - parent.AbsoluteBoundingBox.X
			l.Top = node.AbsoluteBoundingBox.Y - parent.AbsoluteBoundingBox.Y
		}
	}

	return l
}

func autoLayoutMode(mode string) string {
	if mode == "HORIZONTAL" || mode == "VERTICAL" {
		return mode
	}
	return ""
}

func opacityOf(node *figma.Node) float64 {
	if node.Opacity == nil {
		return 1
	}
	return *node.Opacity
}

// sizing derives the horizontal and vertical sizing intent. Explicit
// layoutSizing markers win; otherwise auto-layout sizing modes and stretch
// alignment are consulted. Text without markers hugs its content.
func sizing(node, parent *figma.Node) (Sizing, Sizing) {
	h := sizingMarker(node.LayoutSizingHorizontal)
	v := sizingMarker(node.LayoutSizingVertical)

	fallback := SizingFixed
	if node.Type == "TEXT" {
		fallback = SizingHug
	}

	mode := autoLayoutMode(node.LayoutMode)
	primary, counter := sizingMode(node.PrimaryAxisSizingMode), sizingMode(node.CounterAxisSizingMode)

	if h < 0 {
		h = fallback
		switch mode {
		case "HORIZONTAL":
			h = primary
		case "VERTICAL":
			h = counter
		}
	}
	if v < 0 {
		v = fallback
		switch mode {
		case "HORIZONTAL":
			v = counter
		case "VERTICAL":
			v = primary
		}
	}

	if node.LayoutAlign == "STRETCH" && parent != nil && node.LayoutSizingHorizontal == "" && node.LayoutSizingVertical == "" {
		switch autoLayoutMode(parent.LayoutMode) {
		case "HORIZONTAL":
			v = SizingFill
		case "VERTICAL":
			h = SizingFill
		}
	}

	return h, v
}

// sizingMarker maps a layoutSizing marker; -1 means absent.
func sizingMarker(marker string) Sizing {
	switch marker {
	case "FILL":
		return SizingFill
	case "HUG":
		return SizingHug
	case "FIXED":
		return SizingFixed
	}
	return -1
}

func sizingMode(mode string) Sizing {
	if mode == "AUTO" {
		return SizingHug
	}
	return SizingFixed
}

var cornerProps = [4]variables.Property{
	variables.RadiusTopLeft, variables.RadiusTopRight, variables.RadiusBottomRight, variables.RadiusBottomLeft,
}

// radius resolves the four corners. Instance bindings are checked first, then
// the bindings of the main component the instance was created from.
func (e *Extractor) radius(node *figma.Node) [4]Attr[float64] {
	raw := [4]float64{node.CornerRadius, node.CornerRadius, node.CornerRadius, node.CornerRadius}
	if len(node.RectangleCornerRadii) == 4 {
		copy(raw[:], node.RectangleCornerRadii)
	}

	main := e.lib.MainComponent(node)

	var corners [4]Attr[float64]
	for i, prop := range cornerProps {
		attr := e.number(node.BoundVariables, prop, raw[i])
		if !attr.IsBound() && main != nil {
			if inherited := e.number(main.BoundVariables, prop, raw[i]); inherited.IsBound() {
				attr = inherited
			}
		}
		corners[i] = attr
	}
	return corners
}

func (e *Extractor) typography(node *figma.Node) *Typography {
	st := node.Style
	if st == nil {
		st = &figma.TypeStyle{}
	}
	bv := node.BoundVariables
	t := &Typography{
		Italic:     st.Italic,
		Decoration: st.TextDecoration,
		Case:       st.TextCase,
		Align:      st.TextAlignHorizontal,
	}

	if b, ok := e.resolver.Resolve(bv, variables.FontFamily); ok && b.Value.Kind == variables.KindString {
		t.FontFamily = Bound(b.Name, b.Value.String)
	} else if st.FontFamily != "" {
		t.FontFamily = Literal(st.FontFamily)
	}

	if fs := e.number(bv, variables.FontSize, st.FontSize); fs.IsBound() || fs.Value > 0 {
		t.FontSize = fs
	}
	if fw := e.number(bv, variables.FontWeight, st.FontWeight); fw.IsBound() || fw.Value > 0 {
		t.FontWeight = fw
	}

	lineHeight, percent := rawLineHeight(st)
	if lh := e.number(bv, variables.LineHeight, lineHeight); lh.IsBound() {
		t.LineHeight = lh
	} else if lineHeight > 0 {
		t.LineHeight = lh
		t.LineHeightPercent = percent
	}

	spacing := st.LetterSpacing.Value
	em := st.LetterSpacing.Unit == "PERCENT"
	if em {
		spacing /= 100
	}
	if ls := e.number(bv, variables.LetterSpacing, spacing); ls.IsBound() {
		t.LetterSpacing = ls
	} else if spacing != 0 {
		t.LetterSpacing = ls
		t.LetterSpacingEm = em
	}

	return t
}

// rawLineHeight reads either the plugin {value, unit} shape or the REST
// px/percent fields. Intrinsic ("auto") line heights return 0.
func rawLineHeight(st *figma.TypeStyle) (float64, bool) {
	if st.LineHeight != nil {
		switch st.LineHeight.Unit {
		case "AUTO":
			return 0, false
		case "PERCENT":
			return st.LineHeight.Value, true
		default:
			return st.LineHeight.Value, false
		}
	}

	switch st.LineHeightUnit {
	case "INTRINSIC_%":
		return 0, false
	case "FONT_SIZE_%":
		return st.LineHeightPercentFontSize, st.LineHeightPercentFontSize > 0
	}
	return st.LineHeightPx, false
}

// paintColor resolves a solid paint color. The paint's own "color" binding
// wins over the node-level list binding (fills/strokes) at the same index.
func (e *Extractor) paintColor(node *figma.Node, listKey string, index int, p *figma.Paint) Attr[figma.Color] {
	alpha := p.Alpha()

	b, ok := e.resolver.ResolveKey(p.BoundVariables, "color")
	if !ok {
		if list := node.BoundVariables[listKey]; index < len(list) {
			b, ok = e.resolver.ResolveAlias(list[index])
		}
	}
	if ok && b.Value.Kind == variables.KindColor {
		c := b.Value.Color
		c.A *= alpha
		return Bound(b.Name, c)
	}

	c := *p.Color
	c.A *= alpha
	return Literal(c)
}

func firstVisible(paints []figma.Paint) (int, *figma.Paint) {
	for i := range paints {
		if paints[i].IsVisible() {
			return i, &paints[i]
		}
	}
	return -1, nil
}

func (e *Extractor) fill(node *figma.Node) *Fill {
	i, p := firstVisible(node.Fills)
	if p == nil {
		return nil
	}

	switch p.Type {
	case "SOLID":
		if p.Color == nil {
			return nil
		}
		return &Fill{Kind: FillSolid, Color: e.paintColor(node, "fills", i, p)}
	case "GRADIENT_LINEAR", "GRADIENT_RADIAL":
		f := &Fill{Kind: FillLinearGradient}
		if p.Type == "GRADIENT_RADIAL" {
			f.Kind = FillRadialGradient
		}
		f.Angle = gradientAngle(p.GradientHandlePositions)
		for _, s := range p.GradientStops {
			c := s.Color
			c.A *= p.Alpha()
			f.Stops = append(f.Stops, Stop{Color: c, Position: s.Position})
		}
		if len(f.Stops) == 0 {
			return nil
		}
		return f
	}

	return nil
}

// gradientAngle converts Figma gradient handles to a CSS angle in degrees.
// Without handles the gradient runs top to bottom (180deg).
func gradientAngle(handles []figma.Vector) float64 {
	if len(handles) < 2 {
		return 180
	}
	dx := handles[1].X - handles[0].X
	dy := handles[1].Y - handles[0].Y
	deg := math.Atan2(dy, dx)*180/math.Pi + 90
	deg = math.Mod(deg+360, 360)
	return math.Round(deg)
}

func (e *Extractor) stroke(node *figma.Node) *Stroke {
	i, p := firstVisible(node.Strokes)
	if p == nil || p.Type != "SOLID" || p.Color == nil {
		return nil
	}

	s := &Stroke{
		Color:  e.paintColor(node, "strokes", i, p),
		Weight: e.number(node.BoundVariables, variables.StrokeWeight, node.StrokeWeight),
		Align:  node.StrokeAlign,
		Dash:   classifyDash(node.StrokeDashes),
	}

	if w := node.IndividualStrokeWeights; w != nil && !s.Weight.IsBound() {
		sides := [4]float64{w.Top, w.Right, w.Bottom, w.Left}
		if sides[0] == sides[1] && sides[1] == sides[2] && sides[2] == sides[3] {
			s.Weight = Literal(sides[0])
		} else {
			s.Sides = &sides
		}
	}

	if s.Sides == nil && !s.Weight.IsBound() && s.Weight.Value <= 0 {
		return nil
	}
	return s
}

// classifyDash: two equal dashes of at most 2px are dotted, any other pattern dashed.
func classifyDash(pattern []float64) Dash {
	switch {
	case len(pattern) == 0:
		return DashSolid
	case len(pattern) == 2 && pattern[0] == pattern[1] && pattern[0] <= 2:
		return DashDotted
	default:
		return DashDashed
	}
}

func (e *Extractor) effects(node *figma.Node) Effects {
	var fx Effects

	if id, ok := node.Styles["effect"]; ok {
		if name, ok := e.lib.StyleName(id); ok {
			if naming.CSSVariable(name) == "" {
				name = naming.CSSVariableOr(name, id)
			}
			fx.StyleRef = name
		}
	}

	for i := range node.Effects {
		eff := &node.Effects[i]
		if !eff.IsVisible() {
			continue
		}
		bv := eff.BoundVariables

		switch eff.Type {
		case "DROP_SHADOW", "INNER_SHADOW":
			var x, y float64
			if eff.Offset != nil {
				x, y = eff.Offset.X, eff.Offset.Y
			}
			sh := Shadow{
				Inset:  eff.Type == "INNER_SHADOW",
				X:      e.numberKey(bv, "offsetX", x),
				Y:      e.numberKey(bv, "offsetY", y),
				Blur:   e.numberKey(bv, "radius", eff.Radius),
				Spread: e.numberKey(bv, "spread", eff.Spread),
			}
			if b, ok := e.resolver.ResolveKey(bv, "color"); ok && b.Value.Kind == variables.KindColor {
				sh.Color = Bound(b.Name, b.Value.Color)
			} else if eff.Color != nil {
				sh.Color = Literal(*eff.Color)
			} else {
				sh.Color = Literal(figma.Color{A: 0.25})
			}
			fx.Shadows = append(fx.Shadows, sh)
		case "LAYER_BLUR", "BACKGROUND_BLUR":
			fx.Blurs = append(fx.Blurs, Blur{
				Background: eff.Type == "BACKGROUND_BLUR",
				Radius:     e.numberKey(bv, "radius", eff.Radius),
			})
		}
	}

	return fx
}
