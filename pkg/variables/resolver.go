package variables

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/naming"

	lru "github.com/hashicorp/golang-lru/v2"
)

// maxAliasDepth bounds VARIABLE_ALIAS chains (and breaks cycles).
const maxAliasDepth = 8

const cacheSize = 512

// Kind tags the shape of a resolved variable value.
type Kind int

const (
	KindNumber Kind = iota
	KindColor
	KindString
	KindBool
)

// Value is a resolved variable value.
type Value struct {
	Kind   Kind
	Number float64
	Color  figma.Color
	String string
	Bool   bool
}

// Binding is a resolved variable binding: the key it was found under, the
// variable's symbolic name and its value in the first mode.
type Binding struct {
	Key        string
	VariableID string
	Name       string
	ModeID     string
	Scopes     []string
	Value      Value
}

// Warner receives non-fatal resolution warnings.
type Warner interface {
	Warnf(format string, args ...any)
}

type cached struct {
	binding Binding
	ok      bool
}

// Resolver looks up variable bindings. It is meant to live for a single run.
type Resolver struct {
	store Store
	log   Warner
	cache *lru.Cache[string, cached]
}

// NewResolver returns a Resolver over store. Both store and log may be nil;
// a nil store resolves nothing.
func NewResolver(store Store, log Warner) *Resolver {
	cache, _ := lru.New[string, cached](cacheSize)
	return &Resolver{store: store, log: log, cache: cache}
}

func (r *Resolver) warnf(format string, args ...any) {
	if r.log != nil {
		r.log.Warnf(format, args...)
	}
}

// Resolve returns the binding for p by trying its candidate keys in order.
// The boolean is false when no candidate key is bound or the bound variable
// cannot be resolved.
func (r *Resolver) Resolve(bindings map[string]figma.AliasList, p Property) (Binding, bool) {
	c, ok := candidates[p]
	if !ok || len(bindings) == 0 {
		return Binding{}, false
	}

	for _, key := range c.keys {
		b, ok := r.ResolveKey(bindings, key)
		if !ok {
			continue
		}
		if c.transform != nil {
			b.Value = c.transform(b)
		}
		return b, true
	}

	return Binding{}, false
}

// ResolveKey resolves the binding stored under a raw key. Array-shaped
// bindings resolve their first element.
func (r *Resolver) ResolveKey(bindings map[string]figma.AliasList, key string) (Binding, bool) {
	alias, ok := bindings[key].First()
	if !ok {
		return Binding{}, false
	}
	b, ok := r.ResolveAlias(alias)
	if !ok {
		return Binding{}, false
	}
	b.Key = key
	return b, true
}

// ResolveAlias resolves one alias to its variable name and first-mode value.
// Store errors and panics are swallowed and reported as unbound.
func (r *Resolver) ResolveAlias(alias figma.VariableAlias) (b Binding, ok bool) {
	if r == nil || r.store == nil || alias.ID == "" {
		return Binding{}, false
	}

	if hit, found := r.cache.Get(alias.ID); found {
		return hit.binding, hit.ok
	}

	defer func() {
		if p := recover(); p != nil {
			r.warnf("variable %s: lookup panicked: %v", alias.ID, p)
			b, ok = Binding{}, false
		}
		r.cache.Add(alias.ID, cached{binding: b, ok: ok})
	}()

	b, err := r.resolve(alias.ID)
	if err != nil {
		r.warnf("variable %s: %v", alias.ID, err)
		return Binding{}, false
	}
	return b, true
}

// resolve follows alias chains. The symbolic name is that of the variable
// directly bound; the value comes from the end of the chain.
func (r *Resolver) resolve(id string) (Binding, error) {
	var b Binding
	seen := make(map[string]bool)

	for depth := 0; depth < maxAliasDepth; depth++ {
		if seen[id] {
			return Binding{}, fmt.Errorf("alias cycle at %s", id)
		}
		seen[id] = true

		v, err := r.store.Variable(id)
		if err != nil {
			return Binding{}, err
		}
		coll, err := r.store.Collection(v.VariableCollectionID)
		if err != nil {
			return Binding{}, err
		}

		modeID := coll.FirstModeID()
		raw, ok := v.ValuesByMode[modeID]
		if !ok {
			return Binding{}, fmt.Errorf("no value for mode %q", modeID)
		}

		if depth == 0 {
			b = Binding{VariableID: v.ID, Name: symbolName(v), ModeID: modeID, Scopes: v.Scopes}
		}

		if next, isAlias := decodeAlias(raw); isAlias {
			id = next
			continue
		}

		value, err := decodeValue(raw, v.ResolvedType)
		if err != nil {
			return Binding{}, err
		}
		b.Value = value
		return b, nil
	}

	return Binding{}, fmt.Errorf("alias chain deeper than %d", maxAliasDepth)
}

// symbolName is the variable name, or one derived from its ID when the name
// has nothing a custom property can keep.
func symbolName(v figma.Variable) string {
	if naming.CSSVariable(v.Name) == "" {
		return naming.CSSVariableOr(v.Name, v.ID)
	}
	return v.Name
}

func decodeAlias(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return "", false
	}
	var alias figma.VariableAlias
	if err := json.Unmarshal(raw, &alias); err != nil || alias.Type != "VARIABLE_ALIAS" || alias.ID == "" {
		return "", false
	}
	return alias.ID, true
}

func decodeValue(raw json.RawMessage, resolvedType string) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Value{}, fmt.Errorf("empty value")
	}

	if resolvedType == "" {
		switch {
		case raw[0] == '{':
			resolvedType = "COLOR"
		case raw[0] == '"':
			resolvedType = "STRING"
		case raw[0] == 't' || raw[0] == 'f':
			resolvedType = "BOOLEAN"
		default:
			resolvedType = "FLOAT"
		}
	}

	var v Value
	var err error
	switch resolvedType {
	case "COLOR":
		v.Kind = KindColor
		v.Color.A = 1
		err = json.Unmarshal(raw, &v.Color)
	case "FLOAT":
		v.Kind = KindNumber
		err = json.Unmarshal(raw, &v.Number)
	case "STRING":
		v.Kind = KindString
		err = json.Unmarshal(raw, &v.String)
	case "BOOLEAN":
		v.Kind = KindBool
		err = json.Unmarshal(raw, &v.Bool)
	default:
		return Value{}, fmt.Errorf("unsupported variable type %q", resolvedType)
	}
	if err != nil {
		return Value{}, fmt.Errorf("decode %s value: %w", resolvedType, err)
	}
	return v, nil
}
