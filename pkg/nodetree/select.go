package nodetree

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Select returns the outermost elements whose Path matches the glob pattern,
// in document order. "**" spans any number of levels.
func Select(root *Element, pattern string) ([]*Element, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid select pattern %q", pattern)
	}

	var out []*Element
	var visit func(*Element)
	visit = func(el *Element) {
		if ok, _ := doublestar.Match(pattern, el.Path()); ok {
			out = append(out, el)
			return
		}
		for _, c := range el.Children {
			visit(c)
		}
	}
	if root != nil {
		visit(root)
	}
	return out, nil
}
