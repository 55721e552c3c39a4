package convert

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// JSONConverter converts JSON input into the canonical document array. A
// top-level array yields one Document per element; anything else yields a
// single Document.
type JSONConverter struct{}

// NewJSONConverter creates a JSONConverter.
func NewJSONConverter() *JSONConverter {
	return &JSONConverter{}
}

// Format returns "json".
func (c *JSONConverter) Format() string { return "json" }

// Convert parses JSON and maps it to Documents.
func (c *JSONConverter) Convert(ctx context.Context, data []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("convert: parsing json: %w", err)
	}
	docs, err := documentsFromValue(v)
	if err != nil {
		return nil, err
	}
	return marshalDocuments(docs)
}

// documentsFromValue maps a decoded JSON/YAML value onto Documents: one per
// top-level array element, or a single document for any other shape. Objects
// become Fields; everything keeps its compact JSON encoding as Content.
func documentsFromValue(v any) ([]Document, error) {
	items, ok := v.([]any)
	if !ok {
		items = []any{v}
	}

	docs := make([]Document, 0, len(items))
	for _, item := range items {
		content, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("convert: encoding element: %w", err)
		}
		doc := Document{
			ID:      uuid.NewString(),
			Content: string(content),
		}
		if obj, ok := item.(map[string]any); ok {
			doc.Fields = obj
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
