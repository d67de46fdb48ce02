package figma

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const fileSchema = `{
  "type": "object",
  "required": ["document"],
  "properties": {
    "name": {"type": "string"},
    "document": {"$ref": "#/definitions/node"},
    "components": {"type": "object"},
    "componentSets": {"type": "object"},
    "styles": {"type": "object"}
  },
  "definitions": {
    "node": {
      "type": "object",
      "required": ["id", "type"],
      "properties": {
        "id": {"type": "string"},
        "name": {"type": "string"},
        "type": {"type": "string"},
        "fills": {"type": "array"},
        "strokes": {"type": "array"},
        "effects": {"type": "array"},
        "boundVariables": {"type": "object"},
        "children": {"type": "array", "items": {"$ref": "#/definitions/node"}}
      }
    }
  }
}`

const variablesSchema = `{
  "type": "object",
  "required": ["meta"],
  "properties": {
    "meta": {
      "type": "object",
      "properties": {
        "variables": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "required": ["id", "name", "variableCollectionId", "valuesByMode"],
            "properties": {
              "valuesByMode": {"type": "object"}
            }
          }
        },
        "variableCollections": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "required": ["id", "modes"],
            "properties": {
              "modes": {"type": "array"}
            }
          }
        }
      }
    }
  }
}`

// ParseFile validates and decodes a file response document.
func ParseFile(data []byte) (*FileResponse, error) {
	if err := validate(fileSchema, data); err != nil {
		return nil, fmt.Errorf("invalid file document: %w", err)
	}

	var file FileResponse
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse file document: %w", err)
	}
	return &file, nil
}

// ParseVariables validates and decodes a local variables response document.
func ParseVariables(data []byte) (*LocalVariablesResponse, error) {
	if err := validate(variablesSchema, data); err != nil {
		return nil, fmt.Errorf("invalid variables document: %w", err)
	}

	var vars LocalVariablesResponse
	if err := json.Unmarshal(data, &vars); err != nil {
		return nil, fmt.Errorf("failed to parse variables document: %w", err)
	}
	return &vars, nil
}

// LoadFile reads and decodes a file response saved to disk.
func LoadFile(path string) (*FileResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseFile(data)
}

// LoadVariables reads and decodes a local variables response saved to disk.
func LoadVariables(path string) (*LocalVariablesResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseVariables(data)
}

func validate(schema string, data []byte) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
