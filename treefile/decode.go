package treefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.yaml.in/yaml/v3"

	"github.com/mfridman/clitree"
)

// Load reads the tree file at path, validates it and returns its root parser. The format is
// chosen by file extension.
func Load(path string) (clitree.Parser, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return Build(doc), nil
}

// LoadDocument reads and validates the tree file at path without building the tree.
func LoadDocument(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Decode(data, format)
	if err != nil {
		var invalid *InvalidError
		if errors.As(err, &invalid) {
			invalid.File = path
			return nil, invalid
		}
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return doc, nil
}

// Decode decodes and validates a tree document. Schema violations are reported as an
// [*InvalidError].
func Decode(data []byte, format Format) (*Document, error) {
	jsonData, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	result, err := validateJSON(jsonData)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, &InvalidError{Issues: result.Issues}
	}
	var doc Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling document: %w", err)
	}
	return &doc, nil
}

// toJSON decodes data in the given format into generic values and re-encodes them as JSON, the
// common input of both the schema validator and the typed decoder.
func toJSON(data []byte, format Format) ([]byte, error) {
	var raw interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	case FormatTOML:
		var m map[string]interface{}
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing TOML: %w", err)
		}
		raw = m
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	jsonData, err := json.Marshal(normalize(raw))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return jsonData, nil
}

// normalize converts decoded values into types encoding/json can marshal. YAML may produce maps
// with non-string keys and TOML produces typed slices of tables.
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[k] = normalize(v)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, v := range val {
			m[fmt.Sprint(k)] = normalize(v)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalize(v)
		}
		return a
	case []map[string]interface{}:
		a := make([]interface{}, len(val))
		for i, v := range val {
			a[i] = normalize(v)
		}
		return a
	default:
		return val
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
