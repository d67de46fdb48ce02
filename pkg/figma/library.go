package figma

// Library indexes a document so that instances can be traced back to their
// main components and component sets.
type Library struct {
	Components    map[string]Component
	ComponentSets map[string]ComponentSet
	Styles        map[string]Style

	nodes   map[string]*Node
	parents map[string]*Node
}

// NewLibrary walks root and indexes every node by ID.
func NewLibrary(root *Node, components map[string]Component, sets map[string]ComponentSet, styles map[string]Style) *Library {
	lib := &Library{
		Components:    components,
		ComponentSets: sets,
		Styles:        styles,
		nodes:         make(map[string]*Node),
		parents:       make(map[string]*Node),
	}
	if root != nil {
		lib.index(root, nil)
	}
	return lib
}

// LibraryFromFile builds a Library from a file response.
func LibraryFromFile(file *FileResponse) *Library {
	return NewLibrary(&file.Document, file.Components, file.ComponentSets, file.Styles)
}

func (l *Library) index(node *Node, parent *Node) {
	if node.ID != "" {
		l.nodes[node.ID] = node
		if parent != nil {
			l.parents[node.ID] = parent
		}
	}
	for i := range node.Children {
		l.index(&node.Children[i], node)
	}
}

// Node returns the node with the given ID, or nil.
func (l *Library) Node(id string) *Node {
	if l == nil {
		return nil
	}
	return l.nodes[id]
}

// MainComponent returns the component node an INSTANCE was created from,
// when that component is defined in the same document.
func (l *Library) MainComponent(n *Node) *Node {
	if l == nil || n == nil || n.Type != "INSTANCE" || n.ComponentID == "" {
		return nil
	}
	return l.nodes[n.ComponentID]
}

// ComponentSet returns the component set node (if present in the document)
// and its name for a COMPONENT or INSTANCE node that is one variant of a set.
func (l *Library) ComponentSet(n *Node) (*Node, string) {
	if l == nil || n == nil {
		return nil, ""
	}

	switch n.Type {
	case "COMPONENT":
		if parent := l.parents[n.ID]; parent != nil && parent.Type == "COMPONENT_SET" {
			return parent, parent.Name
		}
	case "INSTANCE":
		if main := l.MainComponent(n); main != nil {
			if set, name := l.ComponentSet(main); name != "" {
				return set, name
			}
		}
		comp, ok := l.Components[n.ComponentID]
		if !ok || comp.ComponentSetID == "" {
			return nil, ""
		}
		setNode := l.nodes[comp.ComponentSetID]
		if set, ok := l.ComponentSets[comp.ComponentSetID]; ok && set.Name != "" {
			return setNode, set.Name
		}
		if setNode != nil {
			return setNode, setNode.Name
		}
	}

	return nil, ""
}

// VariantName returns the encoded variant name ("Size=Large, State=Default")
// of a COMPONENT or INSTANCE node, or "" when the node is not a variant.
func (l *Library) VariantName(n *Node) string {
	if l == nil || n == nil {
		return ""
	}
	switch n.Type {
	case "COMPONENT":
		return n.Name
	case "INSTANCE":
		if main := l.MainComponent(n); main != nil {
			return main.Name
		}
		if comp, ok := l.Components[n.ComponentID]; ok {
			return comp.Name
		}
	}
	return ""
}

// StyleName returns the name of a published style by ID.
func (l *Library) StyleName(id string) (string, bool) {
	if l == nil {
		return "", false
	}
	s, ok := l.Styles[id]
	if !ok || s.Name == "" {
		return "", false
	}
	return s.Name, true
}
