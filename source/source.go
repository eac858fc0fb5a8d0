// Package source decodes raw schema and instance input (JSON or YAML) into
// the generic value trees the engine consumes. The content type is selected
// explicitly or inferred from the filename extension.
package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Type names a supported input encoding.
type Type string

const (
	TypeJSON Type = "json"
	TypeYAML Type = "yaml"
)

// ParseType validates a user-supplied encoding name. "yml" is accepted as
// an alias for YAML; the empty string means "infer from extension".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "json":
		return TypeJSON, nil
	case "yaml", "yml":
		return TypeYAML, nil
	}
	return "", fmt.Errorf("source: unsupported type %q (want json or yaml)", s)
}

// DetectType infers the encoding from a filename extension.
func DetectType(path string) (Type, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return TypeJSON, nil
	case ".yaml", ".yml":
		return TypeYAML, nil
	}
	return "", fmt.Errorf("source: cannot infer type from %q (want .json, .yaml or .yml)", path)
}

// Decode decodes raw bytes with the given encoding.
func Decode(b []byte, t Type) (any, error) {
	switch t {
	case TypeJSON:
		return DecodeJSON(b)
	case TypeYAML:
		return DecodeYAML(b)
	}
	return nil, fmt.Errorf("source: unsupported type %q", t)
}

// DecodeJSON decodes one JSON document. Numbers are kept as json.Number so
// the engine can distinguish integers without precision loss.
func DecodeJSON(b []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("source: decode json: trailing data after document")
	}
	return v, nil
}

// DecodeYAML decodes one YAML document and normalizes mappings to
// map[string]any so schema and instance trees have a single shape
// regardless of encoding.
func DecodeYAML(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("source: decode yaml: %w", err)
	}
	return normalize(v), nil
}

// LoadFile reads and decodes a file. explicit overrides extension-based
// inference when non-empty.
func LoadFile(path string, explicit string) (any, error) {
	t, err := typeFor(path, explicit)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", path, err)
	}
	return Decode(b, t)
}

func typeFor(path, explicit string) (Type, error) {
	if explicit != "" {
		return ParseType(explicit)
	}
	return DetectType(path)
}

// normalize rewrites YAML-decoded trees into the JSON-shaped form: mapping
// keys become strings, nested containers are rewritten recursively, scalars
// pass through.
func normalize(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, e := range node {
			out[k] = normalize(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, e := range node {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, e := range node {
			out[i] = normalize(e)
		}
		return out
	}
	return v
}
