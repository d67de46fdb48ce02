// Package render turns an element tree into markup: HTML with a generated
// stylesheet, or JSX with Tailwind classes. Both go through Walker, which
// extracts, decides and emits the tokens of every element exactly once.
package render

import (
	"github.com/hellenic-development/figma-codegen/pkg/emit"
	"github.com/hellenic-development/figma-codegen/pkg/extractor"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/nodetree"
)

// Warner receives non-fatal rendering warnings.
type Warner interface {
	Warnf(format string, args ...any)
}

// Options configures a render.
type Options struct {
	// Extractor builds style models; nil extracts without variable bindings.
	Extractor *extractor.Extractor
	// Vars collects referenced variables; nil allocates a fresh map.
	Vars *emit.VariableMap
	Log  Warner
	// ComponentName wraps JSX output in an exported function component.
	ComponentName string
}

// Styled is an element with its emitted tokens, in tree form.
type Styled struct {
	Element  *nodetree.Element
	Model    *extractor.StyleModel
	Tokens   []string
	Children []*Styled
}

// Walk calls fn for s and its descendants in depth-first pre-order.
func (s *Styled) Walk(fn func(*Styled)) {
	if s == nil {
		return
	}
	fn(s)
	for _, c := range s.Children {
		c.Walk(fn)
	}
}

// Walker emits the tokens of a tree for one target.
type Walker struct {
	target emit.Target
	ext    *extractor.Extractor
	vars   *emit.VariableMap
	log    Warner
}

// NewWalker returns a Walker emitting with target.
func NewWalker(target emit.Target, opts Options) *Walker {
	w := &Walker{target: target, ext: opts.Extractor, vars: opts.Vars, log: opts.Log}
	if w.ext == nil {
		var log extractor.Warner
		if opts.Log != nil {
			log = opts.Log
		}
		w.ext = extractor.New(nil, nil, log)
	}
	if w.vars == nil {
		w.vars = emit.NewVariableMap()
	}
	return w
}

// Vars returns the variable map written by the walk.
func (w *Walker) Vars() *emit.VariableMap {
	return w.vars
}

// Walk emits root and its subtree. Icons are leaves: their layers are not
// walked. A failing child is logged and dropped with its subtree.
func (w *Walker) Walk(root *nodetree.Element) *Styled {
	if root == nil {
		return nil
	}
	return w.walkChild(root)
}

func (w *Walker) walk(el *nodetree.Element) *Styled {
	var parent *figma.Node
	if el.Parent != nil {
		parent = el.Parent.Node
	}

	model := w.ext.Extract(el.Node, parent)
	decls := emit.Decide(model, emit.Context{AnchorsAbsolute: el.HasAbsoluteChild()})
	s := &Styled{
		Element: el,
		Model:   model,
		Tokens:  w.target.Emit(decls, w.vars),
	}

	if el.IsIcon {
		return s
	}
	for _, c := range el.Children {
		if child := w.walkChild(c); child != nil {
			s.Children = append(s.Children, child)
		}
	}
	return s
}

func (w *Walker) walkChild(el *nodetree.Element) (s *Styled) {
	defer func() {
		if p := recover(); p != nil {
			warnf(w.log, "node %s (%s): skipped: %v", el.ID, el.Name, p)
			s = nil
		}
	}()
	return w.walk(el)
}

func warnf(log Warner, format string, args ...any) {
	if log != nil {
		log.Warnf(format, args...)
	}
}
