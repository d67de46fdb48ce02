package figma

import "encoding/json"

// LocalVariablesResponse represents the response of the local variables endpoint
// (GET /v1/files/:key/variables/local).
type LocalVariablesResponse struct {
	Status int           `json:"status"`
	Error  bool          `json:"error"`
	Meta   VariablesMeta `json:"meta"`
}

// VariablesMeta holds the variables and collections of a file, keyed by ID.
type VariablesMeta struct {
	Variables           map[string]Variable           `json:"variables"`
	VariableCollections map[string]VariableCollection `json:"variableCollections"`
}

// Variable is a named design value. ValuesByMode holds one raw value per mode:
// a number, string, boolean, a Color object or a VariableAlias object.
type Variable struct {
	ID                   string                     `json:"id"`
	Name                 string                     `json:"name"`
	Key                  string                     `json:"key"`
	VariableCollectionID string                     `json:"variableCollectionId"`
	ResolvedType         string                     `json:"resolvedType"` // BOOLEAN, FLOAT, STRING, COLOR
	ValuesByMode         map[string]json.RawMessage `json:"valuesByMode"`
	Scopes               []string                   `json:"scopes,omitempty"` // ALL_SCOPES, OPACITY, GAP, ...
	Description          string                     `json:"description,omitempty"`
	Remote               bool                       `json:"remote,omitempty"`
}

// VariableCollection groups variables that share a list of modes.
type VariableCollection struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Key           string `json:"key"`
	Modes         []Mode `json:"modes"`
	DefaultModeID string `json:"defaultModeId"`
}

// Mode is one column of a variable collection (e.g. "Light", "Dark").
type Mode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}

// FirstModeID returns the ID of the first declared mode, falling back to the default mode.
func (c VariableCollection) FirstModeID() string {
	if len(c.Modes) > 0 {
		return c.Modes[0].ModeID
	}
	return c.DefaultModeID
}
