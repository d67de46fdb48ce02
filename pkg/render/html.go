package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/emit"
	"github.com/hellenic-development/figma-codegen/pkg/nodetree"
)

// Rule is one generated CSS rule.
type Rule struct {
	Selector     string   `json:"selector" yaml:"selector"`
	Declarations []string `json:"declarations" yaml:"declarations"`
}

// String renders the rule as a CSS block.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.Selector)
	sb.WriteString(" {\n")
	for _, d := range r.Declarations {
		sb.WriteString("  ")
		sb.WriteString(d)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Stylesheet joins the ":root" block of vars and rules, separated by blank
// lines.
func Stylesheet(vars *emit.VariableMap, rules []Rule) string {
	var sheet strings.Builder
	sheet.WriteString(vars.RootBlock())
	for _, rule := range rules {
		if sheet.Len() > 0 {
			sheet.WriteString("\n")
		}
		sheet.WriteString(rule.String())
	}
	return sheet.String()
}

// HTMLResult is the CSS target output.
type HTMLResult struct {
	Stylesheet string
	Markup     string
	Rules      []Rule
	Vars       *emit.VariableMap
}

// HTML renders root as HTML markup plus a stylesheet holding the ":root"
// custom properties followed by one rule per class.
func HTML(root *nodetree.Element, opts Options) *HTMLResult {
	w := NewWalker(emit.CSS{}, opts)
	styled := w.Walk(root)

	r := &htmlRenderer{classes: make(map[string]string), log: opts.Log}
	var markup strings.Builder
	if styled != nil {
		r.render(&markup, styled, 0)
	}

	return &HTMLResult{
		Stylesheet: Stylesheet(w.Vars(), r.rules),
		Markup:     markup.String(),
		Rules:      r.rules,
		Vars:       w.Vars(),
	}
}

type htmlRenderer struct {
	// classes maps a class name to the declarations it was first assigned.
	classes map[string]string
	rules   []Rule
	log     Warner
}

// Tag returns the HTML tag for an element.
func Tag(el *nodetree.Element) string {
	switch {
	case el.Kind == nodetree.KindText:
		return "p"
	case el.Kind == nodetree.KindVector || el.IsIcon:
		return "svg"
	default:
		return "div"
	}
}

// className assigns a class to declarations. Elements sharing a name and
// identical declarations share the class; otherwise a numeric suffix is added.
func (r *htmlRenderer) className(el *nodetree.Element, decls []string) string {
	if len(decls) == 0 {
		return ""
	}

	base := el.ClassName()
	key := strings.Join(decls, ";")
	for i := 1; ; i++ {
		name := base
		if i > 1 {
			name = fmt.Sprintf("%s-%d", base, i)
		}
		existing, taken := r.classes[name]
		if !taken {
			r.classes[name] = key
			r.rules = append(r.rules, Rule{Selector: "." + name, Declarations: decls})
			return name
		}
		if existing == key {
			return name
		}
	}
}

func (r *htmlRenderer) render(sb *strings.Builder, s *Styled, depth int) {
	el := s.Element
	pad := indent(depth)

	for _, a := range el.Annotations {
		sb.WriteString(pad + htmlComment(a) + "\n")
	}

	tag := Tag(el)
	open := "<" + tag
	if class := r.className(el, s.Tokens); class != "" {
		open += ` class="` + class + `"`
	}
	if tag == "svg" {
		open += ` aria-hidden="true"`
	}
	if el.IsIcon {
		open += ` data-icon="` + html.EscapeString(el.ElementName(false)) + `"`
	}
	open += ">"

	switch {
	case el.Kind == nodetree.KindText:
		sb.WriteString(pad + open + html.EscapeString(el.Text) + "</" + tag + ">\n")
	case len(s.Children) == 0:
		sb.WriteString(pad + open + "</" + tag + ">\n")
	default:
		sb.WriteString(pad + open + "\n")
		for _, c := range s.Children {
			r.renderChild(sb, c, depth+1)
		}
		sb.WriteString(pad + "</" + tag + ">\n")
	}
}

// renderChild renders into a scratch buffer so that a failing child leaves
// no partial markup behind.
func (r *htmlRenderer) renderChild(sb *strings.Builder, s *Styled, depth int) {
	defer func() {
		if p := recover(); p != nil {
			warnf(r.log, "node %s (%s): render skipped: %v", s.Element.ID, s.Element.Name, p)
		}
	}()

	var child strings.Builder
	r.render(&child, s, depth)
	sb.WriteString(child.String())
}
