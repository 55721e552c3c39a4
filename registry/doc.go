// Package registry provides a generic, thread-safe catalog of named
// constructables: factory functions that can be looked up by name, filtered
// by tag, searched by metadata, and invoked on demand.
//
// It decouples "what implementations exist" from "which implementation is
// chosen", the usual shape of a plugin-style extension point such as
// pluggable format converters.
//
// Usage:
//
//	reg := registry.New("converters", registry.WithLogger(logger))
//	err := reg.Register("csv", NewCSVConverter,
//	    registry.WithDescription("comma separated values"),
//	    registry.WithTags("format", "csv"))
//
//	v, err := reg.Create("csv")
//
// Deferred, annotation-style registration is available via [Registry.Decorator]:
//
//	var _ = reg.Decorator("json")(NewJSONConverter)
//
// A process-wide default registry is reachable through [Default] and the
// package-level functions that mirror the Registry methods.
package registry
