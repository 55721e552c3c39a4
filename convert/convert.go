package convert

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/xlab-open/datachain/registry"
)

// Converter transforms raw input bytes of a single source format into the
// canonical JSON document array.
type Converter interface {
	// Convert transforms data. The result is the JSON encoding of a
	// []Document.
	Convert(ctx context.Context, data []byte) ([]byte, error)
	// Format returns the short name of the input format, e.g. "csv".
	Format() string
}

// Type is the reflect.Type of the Converter interface, for use with
// registry.ListByType.
var Type = reflect.TypeOf((*Converter)(nil)).Elem()

// Document is the canonical unit every converter emits.
type Document struct {
	// ID uniquely identifies the document within one conversion.
	ID string `json:"id"`
	// Content is the document's textual payload.
	Content string `json:"content"`
	// Fields carries structured data extracted from the input, when the
	// format has any (CSV columns, JSON/YAML object members).
	Fields map[string]any `json:"fields,omitempty"`
}

// Create instantiates a registered converter by name, forwarding args to its
// constructor. It fails the way registry.Create fails, plus when the
// registration under name does not produce a Converter.
func Create(r *registry.Registry, name string, args ...any) (Converter, error) {
	v, err := r.Create(name, args...)
	if err != nil {
		return nil, err
	}
	c, ok := v.(Converter)
	if !ok {
		return nil, fmt.Errorf("convert: %q did not produce a Converter, got %T", name, v)
	}
	return c, nil
}

// marshalDocuments encodes the canonical output of a conversion.
func marshalDocuments(docs []Document) ([]byte, error) {
	out, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("convert: encoding documents: %w", err)
	}
	return out, nil
}
