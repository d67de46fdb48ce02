package emit

import (
	"sort"
	"strings"
)

// Variable is one custom property: Name is written without the leading "--".
type Variable struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// VariableMap accumulates the variables referenced during one run.
// Keys are custom-property names; the last write for a key wins.
type VariableMap struct {
	values map[string]string
}

// NewVariableMap returns an empty map.
func NewVariableMap() *VariableMap {
	return &VariableMap{values: make(map[string]string)}
}

// Set records name -> value. A nil map ignores writes.
func (m *VariableMap) Set(name, value string) {
	if m == nil || name == "" {
		return
	}
	m.values[name] = value
}

// Get returns the value recorded for name.
func (m *VariableMap) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m.values[name]
	return v, ok
}

// Len returns the number of variables.
func (m *VariableMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}

// Entries returns the variables sorted by name.
func (m *VariableMap) Entries() []Variable {
	if m == nil {
		return nil
	}
	entries := make([]Variable, 0, len(m.values))
	for name, value := range m.values {
		entries = append(entries, Variable{Name: name, Value: value})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// RootBlock renders the variables as a ":root" block of custom properties.
// An empty map renders as "".
func (m *VariableMap) RootBlock() string {
	entries := m.Entries()
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(":root {\n")
	for _, v := range entries {
		sb.WriteString("  --")
		sb.WriteString(v.Name)
		sb.WriteString(": ")
		sb.WriteString(v.Value)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
