// Package classindex builds the reverse index from Tailwind class tokens to
// the elements carrying them. It reads the same emitted tree the JSX renderer
// prints, so every token in the markup is indexed and nothing else is.
package classindex

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hellenic-development/figma-codegen/pkg/emit"
	"github.com/hellenic-development/figma-codegen/pkg/nodetree"
	"github.com/hellenic-development/figma-codegen/pkg/render"

	"gopkg.in/yaml.v3"
)

// Warner receives non-fatal parse warnings.
type Warner interface {
	Warnf(format string, args ...any)
}

// Index maps a class token to the sorted, deduplicated names of the elements
// that carry it.
type Index map[string][]string

// Build walks root with the Tailwind target and indexes the result.
func Build(root *nodetree.Element, opts render.Options) Index {
	return FromTree(render.NewWalker(emit.Tailwind{}, opts).Walk(root))
}

// FromTree indexes an already emitted tree. Owners are React element names.
func FromTree(tree *render.Styled) Index {
	sets := make(map[string]map[string]struct{})
	tree.Walk(func(s *render.Styled) {
		owner := s.Element.ElementName(true)
		for _, token := range s.Tokens {
			if sets[token] == nil {
				sets[token] = make(map[string]struct{})
			}
			sets[token][owner] = struct{}{}
		}
	})

	idx := make(Index, len(sets))
	for token, owners := range sets {
		names := make([]string, 0, len(owners))
		for name := range owners {
			names = append(names, name)
		}
		sort.Strings(names)
		idx[token] = names
	}
	return idx
}

// Tokens returns the indexed tokens in sorted order.
func (idx Index) Tokens() []string {
	tokens := make([]string, 0, len(idx))
	for token := range idx {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Owners returns the element names carrying token.
func (idx Index) Owners(token string) []string {
	return idx[token]
}

// ToJSON encodes the index as an indented JSON object with sorted keys.
func (idx Index) ToJSON() ([]byte, error) {
	if idx == nil {
		idx = Index{}
	}
	b, err := json.MarshalIndent(map[string][]string(idx), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode class index: %w", err)
	}
	return append(b, '\n'), nil
}

// ToYAML encodes the index as a YAML mapping with sorted keys.
func (idx Index) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]string(idx)); err != nil {
		return nil, fmt.Errorf("encode class index: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode class index: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse decodes a JSON or YAML index. Malformed input yields an empty index
// and a warning, never an error.
func Parse(data []byte, log Warner) Index {
	var raw map[string][]string

	trimmed := bytes.TrimSpace(data)
	var err error
	switch {
	case len(trimmed) == 0:
		return Index{}
	case trimmed[0] == '{':
		err = json.Unmarshal(trimmed, &raw)
	default:
		err = yaml.Unmarshal(trimmed, &raw)
	}
	if err != nil {
		if log != nil {
			log.Warnf("class index: malformed input, ignoring: %v", err)
		}
		return Index{}
	}

	idx := make(Index, len(raw))
	for token, owners := range raw {
		if token == "" {
			continue
		}
		idx[token] = dedupSorted(owners)
	}
	return idx
}

func dedupSorted(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
