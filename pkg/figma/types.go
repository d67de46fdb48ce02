package figma

import (
	"bytes"
	"encoding/json"
)

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, document structure, component and style dictionaries.
type FileResponse struct {
	Name          string                  `json:"name"`
	LastModified  string                  `json:"lastModified"`
	ThumbnailURL  string                  `json:"thumbnailUrl"`
	Version       string                  `json:"version"`
	Document      Node                    `json:"document"`
	Components    map[string]Component    `json:"components,omitempty"`
	ComponentSets map[string]ComponentSet `json:"componentSets,omitempty"`
	Styles        map[string]Style        `json:"styles"`
	SchemaVersion int                     `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure and optional component/style information.
// This is the structure returned for each requested node in a NodesResponse.
type NodeData struct {
	Document      Node                    `json:"document"`
	Components    map[string]Component    `json:"components,omitempty"`
	ComponentSets map[string]ComponentSet `json:"componentSets,omitempty"`
	Styles        map[string]Style        `json:"styles,omitempty"`
}

// Component represents a Figma component definition with its metadata.
// ComponentSetID is set when the component is one variant of a component set.
type Component struct {
	Key            string `json:"key"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ComponentSetID string `json:"componentSetId,omitempty"`
}

// ComponentSet represents a named set of component variants.
type ComponentSet struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style represents a published Figma style with its basic properties.
// Styles can be colors (FILL), text styles (TEXT), effects (EFFECT), or layout grids (GRID).
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"styleType"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, shapes, or other Figma elements, each with their own properties
// such as fills, strokes, effects, layout settings, variable bindings and children nodes.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Visible  *bool  `json:"visible,omitempty"`
	Children []Node `json:"children,omitempty"`

	Annotations    []Annotation         `json:"annotations,omitempty"`
	BoundVariables map[string]AliasList `json:"boundVariables,omitempty"`
	Styles         map[string]string    `json:"styles,omitempty"` // style kind ("fill", "effect", ...) -> style ID

	// Components and variants
	ComponentID                  string                                 `json:"componentId,omitempty"`
	ComponentProperties          map[string]ComponentProperty           `json:"componentProperties,omitempty"`
	ComponentPropertyDefinitions map[string]ComponentPropertyDefinition `json:"componentPropertyDefinitions,omitempty"`

	// Visual
	Opacity                 *float64       `json:"opacity,omitempty"`
	BackgroundColor         *Color         `json:"backgroundColor,omitempty"`
	Fills                   []Paint        `json:"fills,omitempty"`
	Strokes                 []Paint        `json:"strokes,omitempty"`
	StrokeWeight            float64        `json:"strokeWeight,omitempty"`
	IndividualStrokeWeights *StrokeWeights `json:"individualStrokeWeights,omitempty"`
	StrokeAlign             string         `json:"strokeAlign,omitempty"`
	StrokeDashes            []float64      `json:"strokeDashes,omitempty"`
	CornerRadius            float64        `json:"cornerRadius,omitempty"`
	RectangleCornerRadii    []float64      `json:"rectangleCornerRadii,omitempty"` // top-left, top-right, bottom-right, bottom-left
	Effects                 []Effect       `json:"effects,omitempty"`

	// Text
	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`

	// Geometry
	AbsoluteBoundingBox *Rectangle        `json:"absoluteBoundingBox,omitempty"`
	Constraints         *LayoutConstraint `json:"constraints,omitempty"`

	// Auto-layout (container)
	LayoutMode              string   `json:"layoutMode,omitempty"` // HORIZONTAL, VERTICAL, NONE
	LayoutWrap              string   `json:"layoutWrap,omitempty"` // WRAP, NO_WRAP
	PrimaryAxisSizingMode   string   `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode   string   `json:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems   string   `json:"primaryAxisAlignItems,omitempty"` // MIN, CENTER, MAX, SPACE_BETWEEN
	CounterAxisAlignItems   string   `json:"counterAxisAlignItems,omitempty"` // MIN, CENTER, MAX, BASELINE
	CounterAxisAlignContent string   `json:"counterAxisAlignContent,omitempty"`
	PaddingLeft             float64  `json:"paddingLeft,omitempty"`
	PaddingRight            float64  `json:"paddingRight,omitempty"`
	PaddingTop              float64  `json:"paddingTop,omitempty"`
	PaddingBottom           float64  `json:"paddingBottom,omitempty"`
	ItemSpacing             float64  `json:"itemSpacing,omitempty"`
	CounterAxisSpacing      *float64 `json:"counterAxisSpacing,omitempty"`

	// Auto-layout (child)
	LayoutSizingHorizontal string  `json:"layoutSizingHorizontal,omitempty"` // FIXED, HUG, FILL
	LayoutSizingVertical   string  `json:"layoutSizingVertical,omitempty"`
	LayoutGrow             float64 `json:"layoutGrow,omitempty"`
	LayoutAlign            string  `json:"layoutAlign,omitempty"`
	LayoutPositioning      string  `json:"layoutPositioning,omitempty"` // AUTO, ABSOLUTE
}

// IsVisible reports whether the node is rendered. Figma omits the field for visible nodes.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Annotation is a dev-mode note attached to a node.
type Annotation struct {
	Label         string `json:"label,omitempty"`
	LabelMarkdown string `json:"labelMarkdown,omitempty"`
}

// Text returns the annotation's plain text, preferring the label over its markdown form.
func (a Annotation) Text() string {
	if a.Label != "" {
		return a.Label
	}
	return a.LabelMarkdown
}

// ComponentProperty is the value of a component property on an instance.
type ComponentProperty struct {
	Type  string `json:"type"` // BOOLEAN, TEXT, INSTANCE_SWAP, VARIANT
	Value any    `json:"value"`
}

// ComponentPropertyDefinition declares a property on a component or component set.
type ComponentPropertyDefinition struct {
	Type           string   `json:"type"`
	DefaultValue   any      `json:"defaultValue,omitempty"`
	VariantOptions []string `json:"variantOptions,omitempty"`
}

// StrokeWeights holds per-side stroke weights.
type StrokeWeights struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// VariableAlias references a variable by ID.
type VariableAlias struct {
	Type string `json:"type"` // VARIABLE_ALIAS
	ID   string `json:"id"`
}

// AliasList is a variable binding as stored by Figma: either a single alias
// object or an array of aliases (per paint, per text range). Shapes that are
// neither decode to an empty list instead of failing the whole document.
type AliasList []VariableAlias

// UnmarshalJSON implements json.Unmarshaler.
func (l *AliasList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '{':
		var alias VariableAlias
		if err := json.Unmarshal(data, &alias); err == nil && alias.ID != "" {
			*l = AliasList{alias}
		}
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		list := make(AliasList, 0, len(raw))
		for _, item := range raw {
			var alias VariableAlias
			if err := json.Unmarshal(item, &alias); err == nil && alias.ID != "" {
				list = append(list, alias)
			}
		}
		*l = list
	}

	return nil
}

// First returns the first alias of the binding, unwrapping array-shaped bindings.
func (l AliasList) First() (VariableAlias, bool) {
	if len(l) == 0 {
		return VariableAlias{}, false
	}
	return l[0], true
}

// Color represents an RGBA color with float values ranging from 0 to 1.
// The R, G, B, and A (alpha/opacity) values must be converted to 0-255 range for standard use.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node.
// It includes the paint type (SOLID, GRADIENT_LINEAR, etc.), visibility, opacity, color and gradient information.
type Paint struct {
	Type                    string               `json:"type"`
	Visible                 *bool                `json:"visible,omitempty"`
	Opacity                 *float64             `json:"opacity,omitempty"`
	Color                   *Color               `json:"color,omitempty"`
	BlendMode               string               `json:"blendMode,omitempty"`
	GradientHandlePositions []Vector             `json:"gradientHandlePositions,omitempty"`
	GradientStops           []ColorStop          `json:"gradientStops,omitempty"`
	ImageRef                string               `json:"imageRef,omitempty"`
	ScaleMode               string               `json:"scaleMode,omitempty"`
	BoundVariables          map[string]AliasList `json:"boundVariables,omitempty"`
}

// IsVisible reports whether the paint is rendered.
func (p *Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Alpha returns the paint opacity, defaulting to 1.
func (p *Paint) Alpha() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// ColorStop is one stop of a gradient paint; Position ranges from 0 to 1.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Effect represents a visual effect applied to a Figma node such as drop shadows, inner shadows, or blur effects.
// It includes positioning (offset), blur radius, spread, color, and blend mode settings.
type Effect struct {
	Type           string               `json:"type"`
	Visible        *bool                `json:"visible,omitempty"`
	Radius         float64              `json:"radius,omitempty"`
	Color          *Color               `json:"color,omitempty"`
	Offset         *Vector              `json:"offset,omitempty"`
	Spread         float64              `json:"spread,omitempty"`
	BlendMode      string               `json:"blendMode,omitempty"`
	BoundVariables map[string]AliasList `json:"boundVariables,omitempty"`
}

// IsVisible reports whether the effect is rendered.
func (e *Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// Vector represents a 2D coordinate or offset with X and Y values.
// Used for positioning effects like shadows and gradient handles.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents comprehensive text styling properties from Figma.
// It includes font family, weight, size, line height, letter spacing, and text alignment settings.
//
// LineHeight and LetterSpacing accept either the REST numeric shape or the
// plugin {value, unit} shape.
type TypeStyle struct {
	FontFamily                string   `json:"fontFamily"`
	FontPostScriptName        string   `json:"fontPostScriptName"`
	FontWeight                float64  `json:"fontWeight"`
	FontSize                  float64  `json:"fontSize"`
	Italic                    bool     `json:"italic,omitempty"`
	LineHeightPx              float64  `json:"lineHeightPx"`
	LineHeightPercentFontSize float64  `json:"lineHeightPercentFontSize,omitempty"`
	LineHeightUnit            string   `json:"lineHeightUnit,omitempty"` // PIXELS, FONT_SIZE_%, INTRINSIC_%
	LineHeight                *Measure `json:"lineHeight,omitempty"`
	LetterSpacing             Measure  `json:"letterSpacing"`
	TextAlignHorizontal       string   `json:"textAlignHorizontal"`
	TextAlignVertical         string   `json:"textAlignVertical"`
	TextDecoration            string   `json:"textDecoration,omitempty"` // UNDERLINE, STRIKETHROUGH
	TextCase                  string   `json:"textCase,omitempty"`       // UPPER, LOWER, TITLE
}

// Measure is a number with an optional unit ("PIXELS", "PERCENT", "AUTO").
type Measure struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler, accepting a bare number or a {value, unit} object.
func (m *Measure) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '{' {
		var obj struct {
			Value float64 `json:"value"`
			Unit  string  `json:"unit"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		m.Value, m.Unit = obj.Value, obj.Unit
		return nil
	}

	return json.Unmarshal(data, &m.Value)
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
// Used to define the absolute position and size of nodes in the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// LayoutConstraint defines how a node's position and size behave when its parent is resized.
// Constraints can be set for both vertical (TOP, BOTTOM, CENTER, etc.) and horizontal directions.
type LayoutConstraint struct {
	Vertical   string `json:"vertical"`
	Horizontal string `json:"horizontal"`
}
