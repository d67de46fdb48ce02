// Package nodetree walks a Figma document and collects the structural
// metadata the renderers need: annotations, icon classification and variant
// set names. It never looks at styles.
package nodetree

import (
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/naming"
)

// Warner receives non-fatal traversal warnings.
type Warner interface {
	Warnf(format string, args ...any)
}

// Kind is the rendering kind of an element.
type Kind int

const (
	// KindContainer renders as a generic block.
	KindContainer Kind = iota
	// KindText renders as a paragraph.
	KindText
	// KindVector renders as a graphic.
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindVector:
		return "vector"
	default:
		return "container"
	}
}

var vectorTypes = map[string]bool{
	"VECTOR":            true,
	"BOOLEAN_OPERATION": true,
	"STAR":              true,
	"LINE":              true,
	"ELLIPSE":           true,
	"REGULAR_POLYGON":   true,
}

// KindOf classifies a Figma node type.
func KindOf(nodeType string) Kind {
	switch {
	case nodeType == "TEXT":
		return KindText
	case vectorTypes[nodeType]:
		return KindVector
	default:
		return KindContainer
	}
}

// Element is one node of the document with its structural metadata.
type Element struct {
	ID   string
	Name string
	Type string
	Kind Kind

	Annotations []string
	IsIcon      bool
	// VariantSetName is the name of the component set the node is a variant
	// of; it replaces the generated "Prop=Value, ..." name.
	VariantSetName string
	// Text is the content of TEXT nodes.
	Text string

	Node     *figma.Node
	Parent   *Element
	Children []*Element
}

// BaseName is the variant set name when there is one, else the layer name.
func (e *Element) BaseName() string {
	if e.VariantSetName != "" {
		return e.VariantSetName
	}
	return e.Name
}

// ElementName returns the element's identifier. React names keep dot
// namespacing ("Icon.Close"); HTML names strip it ("IconClose").
func (e *Element) ElementName(react bool) string {
	name := naming.ToPascalCase(e.BaseName(), react)
	if name == "" {
		return "Element"
	}
	return name
}

// ClassName returns the kebab-case class name of the element.
func (e *Element) ClassName() string {
	name := naming.ToKebabCase(e.BaseName())
	if name == "" {
		return "element"
	}
	return name
}

// Path returns the slash-joined names from the root to e. Slashes inside
// names are replaced by dots.
func (e *Element) Path() string {
	var parts []string
	for el := e; el != nil; el = el.Parent {
		parts = append(parts, strings.ReplaceAll(el.Name, "/", "."))
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// HasAbsoluteChild reports whether any child is absolutely positioned.
func (e *Element) HasAbsoluteChild() bool {
	for _, c := range e.Children {
		if c.Node != nil && c.Node.LayoutPositioning == "ABSOLUTE" {
			return true
		}
	}
	return false
}

// Walk calls fn for e and its descendants in depth-first pre-order.
func (e *Element) Walk(fn func(*Element)) {
	if e == nil {
		return
	}
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Count returns the number of elements in the subtree.
func (e *Element) Count() int {
	n := 0
	e.Walk(func(*Element) { n++ })
	return n
}

// Group returns a synthetic unstyled container holding elements. The
// children keep their own parents, so their positioning is unaffected.
func Group(name string, elements []*Element) *Element {
	return &Element{
		Name:     name,
		Type:     "FRAME",
		Kind:     KindContainer,
		Node:     &figma.Node{Name: name, Type: "FRAME"},
		Children: elements,
	}
}

// Build walks root depth-first. lib resolves instances to their components
// and sets; it may be nil. A child that fails is skipped with a warning and
// its siblings are still collected.
func Build(root *figma.Node, lib *figma.Library, log Warner) *Element {
	if root == nil {
		return nil
	}
	b := &builder{lib: lib, log: log}
	return b.build(root, nil)
}

type builder struct {
	lib *figma.Library
	log Warner
}

func (b *builder) build(node *figma.Node, parent *Element) *Element {
	el := &Element{
		ID:     node.ID,
		Name:   node.Name,
		Type:   node.Type,
		Kind:   KindOf(node.Type),
		Node:   node,
		Parent: parent,
	}

	for _, a := range node.Annotations {
		if text := strings.TrimSpace(a.Text()); text != "" {
			el.Annotations = append(el.Annotations, text)
		}
	}
	if el.Kind == KindText {
		el.Text = node.Characters
	}
	if _, name := b.lib.ComponentSet(node); name != "" {
		el.VariantSetName = name
	}
	el.IsIcon = detectIcon(node, b.lib)

	for i := range node.Children {
		if child := b.buildChild(&node.Children[i], el); child != nil {
			el.Children = append(el.Children, child)
		}
	}
	return el
}

func (b *builder) buildChild(node *figma.Node, parent *Element) (el *Element) {
	defer func() {
		if p := recover(); p != nil {
			if b.log != nil {
				b.log.Warnf("node %s (%s): skipped: %v", node.ID, node.Name, p)
			}
			el = nil
		}
	}()
	return b.build(node, parent)
}
