package convert

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLConverter converts YAML input into the canonical document array using
// the same value mapping as the JSON converter: one Document per top-level
// sequence element, or a single Document for any other shape.
type YAMLConverter struct{}

// NewYAMLConverter creates a YAMLConverter.
func NewYAMLConverter() *YAMLConverter {
	return &YAMLConverter{}
}

// Format returns "yaml".
func (c *YAMLConverter) Format() string { return "yaml" }

// Convert parses YAML and maps it to Documents.
func (c *YAMLConverter) Convert(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("convert: parsing yaml: %w", err)
	}
	docs, err := documentsFromValue(normalizeYAML(v))
	if err != nil {
		return nil, err
	}
	return marshalDocuments(docs)
}

// normalizeYAML rewrites yaml.v3's map[string]any values recursively so the
// result re-encodes as JSON; map keys that are not strings are stringified.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}
