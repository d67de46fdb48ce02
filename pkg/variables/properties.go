package variables

import "slices"

// Property is a logical style attribute that may be bound to a variable.
type Property int

// Logical properties. Each maps to an ordered list of binding keys in candidates.
const (
	Width Property = iota
	Height
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	ItemSpacing
	CounterAxisSpacing
	RadiusTopLeft
	RadiusTopRight
	RadiusBottomRight
	RadiusBottomLeft
	StrokeWeight
	FontFamily
	FontSize
	FontWeight
	LineHeight
	LetterSpacing
	Opacity
	Visible
)

var propertyNames = [...]string{
	"width", "height",
	"padding-top", "padding-right", "padding-bottom", "padding-left",
	"item-spacing", "counter-axis-spacing",
	"radius-top-left", "radius-top-right", "radius-bottom-right", "radius-bottom-left",
	"stroke-weight",
	"font-family", "font-size", "font-weight", "line-height", "letter-spacing",
	"opacity", "visible",
}

// String returns the property's kebab-case name.
func (p Property) String() string {
	if int(p) >= 0 && int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return "unknown"
}

// candidate lists the binding keys a property may be stored under, in lookup
// order, plus an optional transform applied to the resolved value.
type candidate struct {
	keys      []string
	transform func(Binding) Value
}

// candidates is the single table of binding-key rules. Corner radii fall back
// to a shared "cornerRadius" binding; stroke weight accepts any bound side.
var candidates = map[Property]candidate{
	Width:              {keys: []string{"width"}},
	Height:             {keys: []string{"height"}},
	PaddingTop:         {keys: []string{"paddingTop"}},
	PaddingRight:       {keys: []string{"paddingRight"}},
	PaddingBottom:      {keys: []string{"paddingBottom"}},
	PaddingLeft:        {keys: []string{"paddingLeft"}},
	ItemSpacing:        {keys: []string{"itemSpacing"}},
	CounterAxisSpacing: {keys: []string{"counterAxisSpacing"}},
	RadiusTopLeft:      {keys: []string{"topLeftRadius", "cornerRadius"}},
	RadiusTopRight:     {keys: []string{"topRightRadius", "cornerRadius"}},
	RadiusBottomRight:  {keys: []string{"bottomRightRadius", "cornerRadius"}},
	RadiusBottomLeft:   {keys: []string{"bottomLeftRadius", "cornerRadius"}},
	StrokeWeight: {keys: []string{
		"strokeWeight", "strokeTopWeight", "strokeRightWeight", "strokeBottomWeight", "strokeLeftWeight",
	}},
	FontFamily:    {keys: []string{"fontFamily"}},
	FontSize:      {keys: []string{"fontSize"}},
	FontWeight:    {keys: []string{"fontWeight", "fontStyle"}},
	LineHeight:    {keys: []string{"lineHeight"}},
	LetterSpacing: {keys: []string{"letterSpacing"}},
	Opacity:       {keys: []string{"opacity"}, transform: percentToFraction},
	Visible:       {keys: []string{"visible"}},
}

// CandidateKeys returns the binding keys tried for p, in order.
func CandidateKeys(p Property) []string {
	c, ok := candidates[p]
	if !ok {
		return nil
	}
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// percentToFraction normalizes opacity variables, which Figma stores as 0-100.
// A variable scoped to OPACITY is always a percentage; an unscoped one is
// read as a percentage only above 1.
func percentToFraction(b Binding) Value {
	v := b.Value
	if v.Kind != KindNumber {
		return v
	}
	if slices.Contains(b.Scopes, "OPACITY") || v.Number > 1 {
		v.Number /= 100
	}
	return v
}
