package emit

import (
	"testing"

	"github.com/hellenic-development/figma-codegen/pkg/extractor"
	"github.com/hellenic-development/figma-codegen/pkg/figma"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	lit   = extractor.Literal[float64]
	bound = extractor.Bound[float64]
)

func sides(v extractor.Attr[float64]) [4]extractor.Attr[float64] {
	return [4]extractor.Attr[float64]{v, v, v, v}
}

func hugFrame(mode string) extractor.Layout {
	return extractor.Layout{Mode: mode, SizingH: extractor.SizingHug, SizingV: extractor.SizingHug}
}

// emitBoth renders m with both targets, each into its own variable map.
func emitBoth(t *testing.T, m *extractor.StyleModel, ctx Context) (css []string, cssVars *VariableMap, tw []string, twVars *VariableMap) {
	t.Helper()
	decls := Decide(m, ctx)
	cssVars, twVars = NewVariableMap(), NewVariableMap()
	return CSS{}.Emit(decls, cssVars), cssVars, Tailwind{}.Emit(decls, twVars), twVars
}

func TestEndToEndExample(t *testing.T) {
	layout := hugFrame("HORIZONTAL")
	layout.Padding = sides(bound("spacing-4", 16))
	layout.ItemSpacing = lit(8)

	css, cssVars, tw, twVars := emitBoth(t, &extractor.StyleModel{Layout: layout}, Context{})

	assert.Equal(t, []string{
		"display: flex",
		"flex-direction: row",
		"padding: var(--spacing-4)",
		"gap: 8px",
	}, css)
	assert.Equal(t, []string{"flex", "flex-row", "p-4", "gap-2"}, tw)

	want := []Variable{{Name: "spacing-4", Value: "16px"}}
	assert.Equal(t, want, cssVars.Entries())
	assert.Equal(t, want, twVars.Entries())
}

func TestCrossTargetMagnitude(t *testing.T) {
	tests := []struct {
		name    string
		padding extractor.Attr[float64]
		css     string
		tw      string
	}{
		{"literal 16", lit(16), "padding: 16px", "p-4"},
		{"literal 2", lit(2), "padding: 2px", "p-0.5"},
		{"literal 1", lit(1), "padding: 1px", "p-px"},
		{"literal off scale", lit(13), "padding: 13px", "p-[13px]"},
		{"bound spacing-7", bound("Spacing/7", 28), "padding: var(--spacing-7)", "p-7"},
		{"bound spacing-0-5", bound("spacing-0-5", 2), "padding: var(--spacing-0-5)", "p-0.5"},
		{"bound spacing-px", bound("spacing/px", 1), "padding: var(--spacing-px)", "p-px"},
		{"bound unconventional name", bound("Brand/Inset", 16), "padding: var(--brand-inset)", "p-[var(--brand-inset)]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := hugFrame("VERTICAL")
			layout.Padding = sides(tt.padding)

			css, _, tw, _ := emitBoth(t, &extractor.StyleModel{Layout: layout}, Context{})
			assert.Equal(t, []string{"display: flex", "flex-direction: column", tt.css}, css)
			assert.Equal(t, []string{"flex", "flex-col", tt.tw}, tw)
		})
	}
}

func TestPaddingForms(t *testing.T) {
	tests := []struct {
		name  string
		sides [4]extractor.Attr[float64]
		css   []string
		tw    []string
	}{
		{
			name:  "symmetric literal",
			sides: [4]extractor.Attr[float64]{lit(8), lit(16), lit(8), lit(16)},
			css:   []string{"padding: 8px 16px"},
			tw:    []string{"py-2", "px-4"},
		},
		{
			name:  "four literal values",
			sides: [4]extractor.Attr[float64]{lit(4), lit(8), lit(12), lit(16)},
			css:   []string{"padding: 4px 8px 12px 16px"},
			tw:    []string{"pt-1", "pr-2", "pb-3", "pl-4"},
		},
		{
			name:  "partly bound writes sides",
			sides: [4]extractor.Attr[float64]{bound("spacing-2", 8), lit(12), bound("spacing-2", 8), lit(12)},
			css: []string{
				"padding-top: var(--spacing-2)",
				"padding-right: 12px",
				"padding-bottom: var(--spacing-2)",
				"padding-left: 12px",
			},
			tw: []string{"pt-2", "pr-3", "pb-2", "pl-3"},
		},
		{
			name:  "bound sides skip zeros",
			sides: [4]extractor.Attr[float64]{bound("spacing-2", 8), lit(0), bound("spacing-2", 8), lit(0)},
			css:   []string{"padding-top: var(--spacing-2)", "padding-bottom: var(--spacing-2)"},
			tw:    []string{"pt-2", "pb-2"},
		},
		{
			name:  "vertical only",
			sides: [4]extractor.Attr[float64]{lit(8), lit(0), lit(8), lit(0)},
			css:   []string{"padding: 8px 0px"},
			tw:    []string{"py-2"},
		},
		{
			name:  "all zero",
			sides: sides(lit(0)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := hugFrame("HORIZONTAL")
			layout.Padding = tt.sides

			css, _, tw, _ := emitBoth(t, &extractor.StyleModel{Layout: layout}, Context{})
			assert.Equal(t, append([]string{"display: flex", "flex-direction: row"}, tt.css...), css)
			assert.Equal(t, append([]string{"flex", "flex-row"}, tt.tw...), tw)
		})
	}
}

func TestZeroFiltering(t *testing.T) {
	layout := hugFrame("HORIZONTAL")
	layout.ItemSpacing = lit(0)
	layout.Radius = [4]extractor.Attr[float64]{lit(8), lit(0), lit(8), lit(0)}

	css, _, tw, _ := emitBoth(t, &extractor.StyleModel{Layout: layout}, Context{})
	assert.Equal(t, []string{
		"display: flex",
		"flex-direction: row",
		"border-top-left-radius: 8px",
		"border-bottom-right-radius: 8px",
	}, css)
	assert.Equal(t, []string{"flex", "flex-row", "rounded-tl-lg", "rounded-br-lg"}, tw)

	layout.Radius = [4]extractor.Attr[float64]{lit(0), lit(0), lit(0), lit(0)}
	css, _, tw, _ = emitBoth(t, &extractor.StyleModel{Layout: layout}, Context{})
	assert.Equal(t, []string{"display: flex", "flex-direction: row"}, css)
	assert.Equal(t, []string{"flex", "flex-row"}, tw)
}

func TestRadius(t *testing.T) {
	tests := []struct {
		name   string
		corner extractor.Attr[float64]
		css    string
		tw     string
	}{
		{"bare rounded", lit(4), "border-radius: 4px", "rounded"},
		{"full", lit(9999), "border-radius: 9999px", "rounded-full"},
		{"off scale", lit(10), "border-radius: 10px", "rounded-[10px]"},
		{"bound named", bound("Radius/LG", 8), "border-radius: var(--radius-lg)", "rounded-lg"},
		{"bound default", bound("radius/default", 4), "border-radius: var(--radius-default)", "rounded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &extractor.StyleModel{Layout: extractor.Layout{
				SizingH: extractor.SizingHug, SizingV: extractor.SizingHug,
				Radius: sides(tt.corner),
			}}
			css, _, tw, _ := emitBoth(t, m, Context{})
			assert.Equal(t, []string{tt.css}, css)
			assert.Equal(t, []string{tt.tw}, tw)
		})
	}
}

func TestRouteFill(t *testing.T) {
	tests := []struct {
		name string
		text bool
		want FillProperty
	}{
		{"foreground/neutral", false, TextColor},
		{"Brand/Text-Color", false, TextColor},
		{"text/primary", false, TextColor},
		{"stroke/subtle", false, BorderColor},
		{"semantic/border-color", false, BorderColor},
		{"border/default", false, BorderColor},
		{"background/primary", false, Background},
		{"", false, Background},
		{"", true, TextColor},
		{"background/primary", true, TextColor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RouteFill(tt.name, tt.text), "%q text=%v", tt.name, tt.text)
	}
}

func TestSemanticFillRouting(t *testing.T) {
	fill := &extractor.Fill{Color: extractor.Bound("foreground/neutral", figma.Color{R: 0.1, G: 0.1, B: 0.1, A: 1})}
	m := &extractor.StyleModel{
		Layout: extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug},
		Fill:   fill,
	}

	css, vars, tw, _ := emitBoth(t, m, Context{})
	assert.Equal(t, []string{"color: var(--foreground-neutral)"}, css)
	assert.Equal(t, []string{"text-foreground-neutral"}, tw)

	v, ok := vars.Get("foreground-neutral")
	require.True(t, ok)
	assert.Equal(t, "#1A1A1A", v)
}

func TestNonASCIIVariableNames(t *testing.T) {
	fillModel := func(name string, c figma.Color) *extractor.StyleModel {
		return &extractor.StyleModel{
			Layout: extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug},
			Fill:   &extractor.Fill{Color: extractor.Bound(name, c)},
		}
	}

	t.Run("kept in the property name", func(t *testing.T) {
		css, vars, tw, _ := emitBoth(t, fillModel("颜色/主要", figma.Color{B: 1, A: 1}), Context{})
		assert.Equal(t, []string{"background-color: var(--颜色-主要)"}, css)
		assert.Equal(t, []string{"bg-颜色-主要"}, tw)
		assert.Equal(t, []Variable{{Name: "颜色-主要", Value: "#0000FF"}}, vars.Entries())
	})

	t.Run("distinct names stay distinct", func(t *testing.T) {
		vars := NewVariableMap()
		a := CSS{}.Emit(Decide(fillModel("größe/a", figma.Color{R: 1, A: 1}), Context{}), vars)
		b := CSS{}.Emit(Decide(fillModel("grße/a", figma.Color{B: 1, A: 1}), Context{}), vars)

		assert.Equal(t, []string{"background-color: var(--größe-a)"}, a)
		assert.Equal(t, []string{"background-color: var(--grße-a)"}, b)
		assert.Equal(t, []Variable{
			{Name: "grße-a", Value: "#0000FF"},
			{Name: "größe-a", Value: "#FF0000"},
		}, vars.Entries())
	})

	t.Run("never empty", func(t *testing.T) {
		css, vars, tw, _ := emitBoth(t, fillModel("🎨", figma.Color{G: 1, A: 1}), Context{})
		assert.Equal(t, []string{"background-color: var(--unnamed)"}, css)
		assert.Equal(t, []string{"bg-unnamed"}, tw)
		assert.Equal(t, 1, vars.Len())
	})
}

func TestLiteralFill(t *testing.T) {
	m := &extractor.StyleModel{
		Layout: extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug},
		Fill:   &extractor.Fill{Color: extractor.Literal(figma.Color{R: 1, A: 0.5})},
	}

	css, vars, tw, _ := emitBoth(t, m, Context{})
	assert.Equal(t, []string{"background-color: rgba(255, 0, 0, 0.5)"}, css)
	assert.Equal(t, []string{"bg-[rgba(255,_0,_0,_0.5)]"}, tw)
	assert.Zero(t, vars.Len())
}

func TestSizingPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		layout extractor.Layout
		css    []string
		tw     []string
	}{
		{
			name: "grow beats hug and width",
			layout: extractor.Layout{
				Grow: true, SizingH: extractor.SizingHug, SizingV: extractor.SizingHug,
				Width: lit(120), Height: lit(40),
			},
			css: []string{"flex: 1"},
			tw:  []string{"flex-1"},
		},
		{
			name: "fill and hug",
			layout: extractor.Layout{
				SizingH: extractor.SizingFill, SizingV: extractor.SizingHug,
				Width: lit(120), Height: lit(40),
			},
			css: []string{"width: 100%"},
			tw:  []string{"w-full"},
		},
		{
			name: "fixed literal and bound",
			layout: extractor.Layout{
				SizingH: extractor.SizingFixed, SizingV: extractor.SizingFixed,
				Width: lit(120), Height: bound("size/10", 40),
			},
			css: []string{"width: 120px", "height: var(--size-10)"},
			tw:  []string{"w-[120px]", "h-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css, _, tw, _ := emitBoth(t, &extractor.StyleModel{Layout: tt.layout}, Context{})
			assert.Equal(t, tt.css, css)
			assert.Equal(t, tt.tw, tw)
		})
	}
}

func TestGapPolicy(t *testing.T) {
	t.Run("wrap splits row and column", func(t *testing.T) {
		layout := hugFrame("HORIZONTAL")
		layout.Wrap = true
		layout.ItemSpacing = lit(8)
		layout.CounterSpacing = lit(16)

		css, _, tw, _ := emitBoth(t, &extractor.StyleModel{Layout: layout}, Context{})
		assert.Equal(t, []string{"display: flex", "flex-direction: row", "flex-wrap: wrap", "row-gap: 16px", "column-gap: 8px"}, css)
		assert.Equal(t, []string{"flex", "flex-row", "flex-wrap", "gap-y-4", "gap-x-2"}, tw)
	})

	t.Run("vertical wrap splits the other way", func(t *testing.T) {
		layout := hugFrame("VERTICAL")
		layout.Wrap = true
		layout.ItemSpacing = lit(8)
		layout.CounterSpacing = lit(16)

		css, _, tw, _ := emitBoth(t, &extractor.StyleModel{Layout: layout}, Context{})
		assert.Equal(t, []string{"display: flex", "flex-direction: column", "flex-wrap: wrap", "row-gap: 8px", "column-gap: 16px"}, css)
		assert.Equal(t, []string{"flex", "flex-col", "flex-wrap", "gap-y-2", "gap-x-4"}, tw)
	})

	t.Run("wrap with equal spacing keeps one gap", func(t *testing.T) {
		layout := hugFrame("VERTICAL")
		layout.Wrap = true
		layout.ItemSpacing = lit(8)
		layout.CounterSpacing = lit(8)

		css, _, _, _ := emitBoth(t, &extractor.StyleModel{Layout: layout}, Context{})
		assert.Contains(t, css, "gap: 8px")
	})

	t.Run("space between drops gap", func(t *testing.T) {
		layout := hugFrame("HORIZONTAL")
		layout.PrimaryAlign = "SPACE_BETWEEN"
		layout.CounterAlign = "CENTER"
		layout.ItemSpacing = lit(8)

		css, _, tw, _ := emitBoth(t, &extractor.StyleModel{Layout: layout}, Context{})
		assert.Equal(t, []string{"display: flex", "flex-direction: row", "justify-content: space-between", "align-items: center"}, css)
		assert.Equal(t, []string{"flex", "flex-row", "justify-between", "items-center"}, tw)
	})
}

func TestTypography(t *testing.T) {
	m := &extractor.StyleModel{
		Text:   true,
		Layout: extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug},
		Typography: &extractor.Typography{
			FontFamily:        extractor.Literal("Open Sans"),
			FontSize:          bound("Text/SM", 14),
			FontWeight:        lit(600),
			LineHeight:        lit(150),
			LineHeightPercent: true,
			Case:              "UPPER",
			Align:             "CENTER",
		},
		Fill: &extractor.Fill{Color: extractor.Literal(figma.Color{A: 1})},
	}

	css, vars, tw, _ := emitBoth(t, m, Context{})
	assert.Equal(t, []string{
		"font-family: 'Open Sans'",
		"font-size: var(--text-sm)",
		"font-weight: 600",
		"line-height: 150%",
		"text-transform: uppercase",
		"text-align: center",
		"color: #000000",
	}, css)
	assert.Equal(t, []string{
		"font-['Open_Sans']",
		"text-sm",
		"font-semibold",
		"leading-normal",
		"uppercase",
		"text-center",
		"text-[#000000]",
	}, tw)

	v, _ := vars.Get("text-sm")
	assert.Equal(t, "14px", v)
}

func TestFontSizeFallbacks(t *testing.T) {
	tests := []struct {
		size extractor.Attr[float64]
		want string
	}{
		{lit(12), "text-xs"},
		{lit(60), "text-6xl"},
		{lit(15), "text-[15px]"},
		{bound("type/body", 16), "text-[length:var(--type-body)]"},
	}

	for _, tt := range tests {
		decls := []Decl{FontSize{Value: tt.size}}
		assert.Equal(t, []string{tt.want}, Tailwind{}.Emit(decls, NewVariableMap()))
	}
}

func TestBorder(t *testing.T) {
	m := &extractor.StyleModel{
		Layout: extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug},
		Stroke: &extractor.Stroke{
			Color:  extractor.Literal(figma.Color{R: 1, A: 1}),
			Weight: lit(1),
			Dash:   extractor.DashDashed,
		},
	}

	css, _, tw, _ := emitBoth(t, m, Context{})
	assert.Equal(t, []string{"border-width: 1px", "border-style: dashed", "border-color: #FF0000"}, css)
	assert.Equal(t, []string{"border", "border-dashed", "border-[#FF0000]"}, tw)

	m.Stroke.Dash = extractor.DashSolid
	m.Stroke.Sides = &[4]float64{0, 0, 2, 0}
	css, _, tw, _ = emitBoth(t, m, Context{})
	assert.Equal(t, []string{"border-bottom-width: 2px", "border-style: solid", "border-color: #FF0000"}, css)
	assert.Equal(t, []string{"border-b-2", "border-[#FF0000]"}, tw)
}

func TestEffects(t *testing.T) {
	shadow := extractor.Shadow{
		X: lit(0), Y: lit(4), Blur: lit(6), Spread: lit(0),
		Color: extractor.Literal(figma.Color{A: 0.1}),
	}

	t.Run("style reference", func(t *testing.T) {
		m := &extractor.StyleModel{
			Layout:  extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug},
			Effects: extractor.Effects{StyleRef: "Shadow/MD", Shadows: []extractor.Shadow{shadow}},
		}
		css, cssVars, tw, _ := emitBoth(t, m, Context{})
		assert.Equal(t, []string{"box-shadow: var(--shadow-md)"}, css)
		assert.Equal(t, []string{"shadow-md"}, tw)

		v, _ := cssVars.Get("shadow-md")
		assert.Equal(t, "0px 4px 6px 0px rgba(0, 0, 0, 0.1)", v)
	})

	t.Run("literal list with inset", func(t *testing.T) {
		inner := shadow
		inner.Inset = true
		inner.Blur = bound("blur/shadow", 2)
		m := &extractor.StyleModel{
			Layout:  extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug},
			Effects: extractor.Effects{Shadows: []extractor.Shadow{shadow, inner}},
		}
		css, _, tw, _ := emitBoth(t, m, Context{})
		assert.Equal(t, []string{
			"box-shadow: 0px 4px 6px 0px rgba(0, 0, 0, 0.1), inset 0px 4px var(--blur-shadow) 0px rgba(0, 0, 0, 0.1)",
		}, css)
		assert.Equal(t, []string{
			"shadow-[0px_4px_6px_0px_rgba(0,_0,_0,_0.1),_inset_0px_4px_var(--blur-shadow)_0px_rgba(0,_0,_0,_0.1)]",
		}, tw)
	})

	t.Run("blurs", func(t *testing.T) {
		m := &extractor.StyleModel{
			Layout: extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug},
			Effects: extractor.Effects{Blurs: []extractor.Blur{
				{Radius: lit(8)},
				{Background: true, Radius: bound("blur/md", 12)},
			}},
		}
		css, _, tw, _ := emitBoth(t, m, Context{})
		assert.Equal(t, []string{"filter: blur(8px)", "backdrop-filter: blur(var(--blur-md))"}, css)
		assert.Equal(t, []string{"blur", "backdrop-blur-md"}, tw)
	})
}

func TestPositioning(t *testing.T) {
	anchored := &extractor.StyleModel{Layout: extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug}}
	css, _, tw, _ := emitBoth(t, anchored, Context{AnchorsAbsolute: true})
	assert.Equal(t, []string{"position: relative"}, css)
	assert.Equal(t, []string{"relative"}, tw)

	child := &extractor.StyleModel{Layout: extractor.Layout{
		SizingH: extractor.SizingHug, SizingV: extractor.SizingHug,
		Absolute: true, Left: 16, Top: -4,
	}}
	css, _, tw, _ = emitBoth(t, child, Context{})
	assert.Equal(t, []string{"position: absolute", "left: 16px", "top: -4px"}, css)
	assert.Equal(t, []string{"absolute", "left-4", "-top-1"}, tw)
}

func TestOpacityAndHidden(t *testing.T) {
	m := &extractor.StyleModel{
		Hidden: true,
		Layout: extractor.Layout{SizingH: extractor.SizingHug, SizingV: extractor.SizingHug, Opacity: lit(0.5)},
	}
	css, _, tw, _ := emitBoth(t, m, Context{})
	assert.Equal(t, []string{"opacity: 0.5", "display: none"}, css)
	assert.Equal(t, []string{"opacity-50", "hidden"}, tw)
}

func TestIdempotence(t *testing.T) {
	layout := hugFrame("HORIZONTAL")
	layout.Padding = sides(bound("spacing-4", 16))
	layout.ItemSpacing = bound("spacing-2", 8)
	layout.Radius = sides(bound("radius-md", 6))
	m := &extractor.StyleModel{
		Layout:  layout,
		Fill:    &extractor.Fill{Color: extractor.Bound("background/primary", figma.Color{B: 1, A: 1})},
		Effects: extractor.Effects{Blurs: []extractor.Blur{{Radius: lit(4)}}},
	}

	css1, vars1, tw1, _ := emitBoth(t, m, Context{})
	css2, vars2, tw2, _ := emitBoth(t, m, Context{})
	assert.Equal(t, css1, css2)
	assert.Equal(t, tw1, tw2)
	assert.Equal(t, vars1.Entries(), vars2.Entries())
	assert.Equal(t, vars1.RootBlock(), vars2.RootBlock())
}

func TestScaleToken(t *testing.T) {
	tests := []struct {
		family family
		name   string
		want   string
		ok     bool
	}{
		{familySpacing, "spacing-7", "7", true},
		{familySpacing, "Spacing/0.5", "0.5", true},
		{familySpacing, "spacing-0-5", "0.5", true},
		{familySpacing, "spacing-px", "px", true},
		{familySpacing, "semantic/spacing-4", "4", true},
		{familySpacing, "spacing-large", "", false},
		{familyFontSize, "font-size/lg", "lg", true},
		{familyFontWeight, "font-weight/bold", "bold", true},
		{familyFontFamily, "font/sans", "sans", true},
		{familyLineHeight, "leading-6", "6", true},
		{familyLetterSpacing, "tracking/wide", "wide", true},
		{familyRadius, "rounded-full", "full", true},
		{familyBorderWidth, "border-width/1", "", true},
		{familyBorderWidth, "border-width/2", "2", true},
		{familyBorderWidth, "border-color", "", false},
	}

	for _, tt := range tests {
		got, ok := scaleToken(tt.family, tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestColorLiteral(t *testing.T) {
	assert.Equal(t, "#FF8000", ColorLiteral(figma.Color{R: 1, G: 0.5, A: 1}))
	assert.Equal(t, "rgba(0, 0, 255, 0.25)", ColorLiteral(figma.Color{B: 1, A: 0.25}))
	assert.Equal(t, "0.33", FormatNumber(1.0/3))
	assert.Equal(t, "0", FormatNumber(-0.001))
}

func TestRootBlock(t *testing.T) {
	vars := NewVariableMap()
	assert.Empty(t, vars.RootBlock())

	vars.Set("spacing-4", "16px")
	vars.Set("color-primary", "#0000FF")
	vars.Set("spacing-4", "16px")
	assert.Equal(t, ":root {\n  --color-primary: #0000FF;\n  --spacing-4: 16px;\n}\n", vars.RootBlock())
	assert.Equal(t, 2, vars.Len())

	var nilMap *VariableMap
	nilMap.Set("x", "y")
	assert.Zero(t, nilMap.Len())
}
