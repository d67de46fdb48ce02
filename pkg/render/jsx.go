package render

import (
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/emit"
	"github.com/hellenic-development/figma-codegen/pkg/naming"
	"github.com/hellenic-development/figma-codegen/pkg/nodetree"
)

// JSXResult is the Tailwind target output.
type JSXResult struct {
	Markup string
	// Tree is the emitted tree the markup was rendered from.
	Tree *Styled
	Vars *emit.VariableMap
}

// JSX renders root as JSX with Tailwind classes.
func JSX(root *nodetree.Element, opts Options) *JSXResult {
	w := NewWalker(emit.Tailwind{}, opts)
	styled := w.Walk(root)
	return &JSXResult{
		Markup: RenderJSX(styled, opts),
		Tree:   styled,
		Vars:   w.Vars(),
	}
}

// RenderJSX renders an already emitted tree. Icons render as their
// component name ("<Icon.Close />").
func RenderJSX(styled *Styled, opts Options) string {
	if styled == nil {
		return ""
	}

	r := &jsxRenderer{log: opts.Log}
	name := naming.ToPascalCase(opts.ComponentName, false)
	if name == "" {
		var sb strings.Builder
		r.render(&sb, styled, 0)
		return sb.String()
	}

	var sb strings.Builder
	sb.WriteString("export function " + name + "() {\n")
	sb.WriteString("  return (\n")
	r.render(&sb, styled, 2)
	sb.WriteString("  );\n")
	sb.WriteString("}\n")
	return sb.String()
}

type jsxRenderer struct {
	log Warner
}

func (r *jsxRenderer) render(sb *strings.Builder, s *Styled, depth int) {
	el := s.Element
	pad := indent(depth)

	for _, a := range el.Annotations {
		sb.WriteString(pad + jsxComment(a) + "\n")
	}

	tag := Tag(el)
	if el.IsIcon {
		tag = el.ElementName(true)
	}
	open := "<" + tag
	if len(s.Tokens) > 0 {
		open += " " + jsxClassName(s.Tokens)
	}

	switch {
	case el.IsIcon:
		sb.WriteString(pad + open + " />\n")
	case el.Kind == nodetree.KindText:
		sb.WriteString(pad + open + ">" + jsxText(el.Text) + "</" + tag + ">\n")
	case len(s.Children) == 0:
		sb.WriteString(pad + open + " />\n")
	default:
		sb.WriteString(pad + open + ">\n")
		for _, c := range s.Children {
			r.renderChild(sb, c, depth+1)
		}
		sb.WriteString(pad + "</" + tag + ">\n")
	}
}

func (r *jsxRenderer) renderChild(sb *strings.Builder, s *Styled, depth int) {
	defer func() {
		if p := recover(); p != nil {
			warnf(r.log, "node %s (%s): render skipped: %v", s.Element.ID, s.Element.Name, p)
		}
	}()

	var child strings.Builder
	r.render(&child, s, depth)
	sb.WriteString(child.String())
}
