package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Loader is one strategy for turning raw file contents into a value.
// Strategies are tried in order until one succeeds or all fail; the order
// is supplied by the caller and is injectable in tests.
type Loader interface {
	Name() string
	Load(data []byte) (any, error)
}

// DefaultLoaders returns the strategy order used when a caller does not
// supply one: strict JSON first, tolerant JSONC as the fallback.
func DefaultLoaders() []Loader {
	return []Loader{JSONLoader{}, JSONCLoader{}}
}

// JSONLoader parses strict JSON.
type JSONLoader struct{}

// Name identifies the strategy in diagnostics.
func (JSONLoader) Name() string { return "json" }

// Load deserializes data as strict JSON.
func (JSONLoader) Load(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}

	return value, nil
}

// JSONCLoader accepts JSON with comments and trailing commas by rewriting
// the input to strict JSON before decoding.
type JSONCLoader struct{}

// Name identifies the strategy in diagnostics.
func (JSONCLoader) Name() string { return "jsonc" }

// Load strips JSONC extensions from data and deserializes the result.
func (JSONCLoader) Load(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(jsonc.ToJSON(data), &value); err != nil {
		return nil, fmt.Errorf("jsonc: %w", err)
	}

	return value, nil
}

// YAMLLoader parses YAML documents. It is appended to the strategy order
// when a caller resolves .yaml/.yml candidates.
type YAMLLoader struct{}

// Name identifies the strategy in diagnostics.
func (YAMLLoader) Name() string { return "yaml" }

// Load deserializes data as a single YAML document.
func (YAMLLoader) Load(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}

	return value, nil
}
