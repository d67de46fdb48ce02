// Package variables resolves Figma variable bindings on nodes into symbolic
// names and literal values, always against the first mode of the owning
// collection.
package variables

import (
	"errors"
	"fmt"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

// ErrNotFound is returned by a Store for unknown variable or collection IDs.
var ErrNotFound = errors.New("not found")

// Store is a read-only view of a file's variables.
type Store interface {
	Variable(id string) (figma.Variable, error)
	Collection(id string) (figma.VariableCollection, error)
}

// LocalStore serves variables from a local variables API response.
type LocalStore struct {
	meta figma.VariablesMeta
}

// NewStore returns a Store backed by resp. A nil response yields an empty store.
func NewStore(resp *figma.LocalVariablesResponse) *LocalStore {
	if resp == nil {
		return &LocalStore{}
	}
	return &LocalStore{meta: resp.Meta}
}

// Variable implements Store.
func (s *LocalStore) Variable(id string) (figma.Variable, error) {
	v, ok := s.meta.Variables[id]
	if !ok {
		return figma.Variable{}, fmt.Errorf("variable %q: %w", id, ErrNotFound)
	}
	return v, nil
}

// Collection implements Store.
func (s *LocalStore) Collection(id string) (figma.VariableCollection, error) {
	c, ok := s.meta.VariableCollections[id]
	if !ok {
		return figma.VariableCollection{}, fmt.Errorf("variable collection %q: %w", id, ErrNotFound)
	}
	return c, nil
}

// Len returns the number of variables in the store.
func (s *LocalStore) Len() int {
	return len(s.meta.Variables)
}
