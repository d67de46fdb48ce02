package extractor

import "github.com/hellenic-development/figma-codegen/pkg/figma"

// Attr is one style attribute: unset, a raw literal, or bound to a variable.
// When bound, Value holds the variable's resolved literal and Var its symbolic
// name; output must reference the variable rather than inline Value.
type Attr[T any] struct {
	Value T
	Var   string
	set   bool
}

// Literal returns a set, unbound attribute.
func Literal[T any](v T) Attr[T] {
	return Attr[T]{Value: v, set: true}
}

// Bound returns an attribute bound to the variable name with its resolved value.
func Bound[T any](name string, v T) Attr[T] {
	return Attr[T]{Value: v, Var: name, set: true}
}

// IsSet reports whether the attribute carries a value.
func (a Attr[T]) IsSet() bool { return a.set }

// IsBound reports whether the attribute references a variable.
func (a Attr[T]) IsBound() bool { return a.set && a.Var != "" }

// Sizing is the sizing intent of one axis.
type Sizing int

const (
	// SizingFixed emits an explicit dimension.
	SizingFixed Sizing = iota
	// SizingHug sizes to content and emits nothing.
	SizingHug
	// SizingFill grows to the parent.
	SizingFill
)

func (s Sizing) String() string {
	switch s {
	case SizingHug:
		return "HUG"
	case SizingFill:
		return "FILL"
	default:
		return "FIXED"
	}
}

// Side indexes per-side arrays in CSS order.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Corner indexes per-corner arrays in CSS order.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// StyleModel is the target-independent visual description of one node.
type StyleModel struct {
	Text       bool
	Hidden     bool
	Layout     Layout
	Typography *Typography // text nodes only
	Fill       *Fill
	Stroke     *Stroke
	Effects    Effects
}

// Layout holds box, flex and positioning attributes.
type Layout struct {
	Mode         string // "", "HORIZONTAL", "VERTICAL"
	Wrap         bool
	PrimaryAlign string // MIN, CENTER, MAX, SPACE_BETWEEN
	CounterAlign string // MIN, CENTER, MAX, BASELINE
	AlignContent string // AUTO, SPACE_BETWEEN

	Width, Height  Attr[float64]
	SizingH        Sizing
	SizingV        Sizing
	Grow           bool
	Padding        [4]Attr[float64]
	ItemSpacing    Attr[float64]
	CounterSpacing Attr[float64]
	Radius         [4]Attr[float64]
	Opacity        Attr[float64]

	Absolute  bool
	Left, Top float64
}

// Typography holds text attributes.
type Typography struct {
	FontFamily        Attr[string]
	FontSize          Attr[float64]
	FontWeight        Attr[float64]
	LineHeight        Attr[float64]
	LineHeightPercent bool // LineHeight is a percentage of the font size
	LetterSpacing     Attr[float64]
	LetterSpacingEm   bool // LetterSpacing is in em rather than px
	Italic            bool
	Decoration        string // UNDERLINE, STRIKETHROUGH
	Case              string // UPPER, LOWER, TITLE
	Align             string // LEFT, CENTER, RIGHT, JUSTIFIED
}

// FillKind is the kind of the authoritative paint.
type FillKind int

const (
	FillSolid FillKind = iota
	FillLinearGradient
	FillRadialGradient
)

// Fill is the first visible paint of a node.
type Fill struct {
	Kind  FillKind
	Color Attr[figma.Color] // solid fills; alpha includes paint opacity
	Angle float64           // linear gradients, CSS degrees
	Stops []Stop
}

// Stop is one gradient stop; Position ranges from 0 to 1.
type Stop struct {
	Color    figma.Color
	Position float64
}

// Dash classifies a stroke dash pattern.
type Dash int

const (
	DashSolid Dash = iota
	DashDashed
	DashDotted
)

// Stroke is the first visible stroke of a node.
type Stroke struct {
	Color  Attr[figma.Color]
	Weight Attr[float64]
	Sides  *[4]float64 // per-side weights when they differ
	Align  string      // INSIDE, OUTSIDE, CENTER
	Dash   Dash
}

// Effects holds shadows and blurs in declaration order.
type Effects struct {
	// StyleRef is the name of an effect style shared by the whole group.
	StyleRef string
	Shadows  []Shadow
	Blurs    []Blur
}

// Shadow is a drop or inner shadow.
type Shadow struct {
	Inset  bool
	X, Y   Attr[float64]
	Blur   Attr[float64]
	Spread Attr[float64]
	Color  Attr[figma.Color]
}

// Blur is a layer or background blur.
type Blur struct {
	Background bool
	Radius     Attr[float64]
}
