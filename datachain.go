// Package datachain provides a top-level convenience entry point for the
// registry with minimal boilerplate.
//
// Usage:
//
//	import "github.com/xlab-open/datachain"
//
//	reg := datachain.New("converters")
//	err := reg.Register("csv", NewCSVConverter, datachain.WithTags("format", "csv"))
//
// This is a thin wrapper around the registry package; both produce identical
// results. Use this package when you prefer the shorter import path.
package datachain

import "github.com/xlab-open/datachain/registry"

// Registry is the catalog mapping names to registration records.
type Registry = registry.Registry

// Record is the stored snapshot of one registration.
type Record = registry.Record

// Constructable is any function the registry can invoke to produce an
// instance.
type Constructable = registry.Constructable

// New creates an empty registry with the given identifying name.
func New(name string, opts ...registry.Option) *Registry {
	return registry.New(name, opts...)
}

// Default returns the process-wide default registry.
var Default = registry.Default

// Re-export registration options so callers never need to import registry/.

// WithDescription sets the record's free-text description.
var WithDescription = registry.WithDescription

// WithTags sets the record's tags.
var WithTags = registry.WithTags

// WithMetadata sets the record's opaque metadata payload.
var WithMetadata = registry.WithMetadata

// WithOverride permits replacing an existing registration.
var WithOverride = registry.WithOverride
