package nodetree

import (
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// detectIcon is a variable so tests can make classification fail.
var detectIcon = isIcon

// isIcon reports whether node is an icon: an instance whose boolean (or
// variant) "isIcon" property is true, or a variant whose set defines
// "isIcon" and whose encoded variant name contains "isicon=true".
func isIcon(node *figma.Node, lib *figma.Library) bool {
	for key, prop := range node.ComponentProperties {
		if !isIconKey(key) {
			continue
		}
		if truthy(prop.Value) {
			return true
		}
	}

	set, _ := lib.ComponentSet(node)
	if set == nil || !definesIcon(set.ComponentPropertyDefinitions) {
		return false
	}
	return variantHasIcon(lib.VariantName(node))
}

// isIconKey matches "isIcon" and its suffixed form "isIcon#12:0".
func isIconKey(key string) bool {
	if i := strings.IndexByte(key, '#'); i >= 0 {
		key = key[:i]
	}
	return strings.EqualFold(strings.TrimSpace(key), "isIcon")
}

func definesIcon(defs map[string]figma.ComponentPropertyDefinition) bool {
	for key := range defs {
		if isIconKey(key) {
			return true
		}
	}
	return false
}

func truthy(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}
	return false
}

// variantHasIcon parses "Size=Small, isIcon=true" style variant names.
func variantHasIcon(variant string) bool {
	for _, pair := range strings.Split(variant, ",") {
		pair = strings.ToLower(strings.ReplaceAll(pair, " ", ""))
		if pair == "isicon=true" {
			return true
		}
	}
	return false
}
