package registry

import (
	"maps"
	"slices"
)

// Constructable is the value a registration stores and Create invokes.
// It must hold a Go function; anything callable with zero or more arguments
// that produces an instance qualifies, including closures and methods.
// The registry stores it opaquely and only ever calls it.
type Constructable = any

// Record is the immutable snapshot taken of one registration. It is created
// once, at Register time, and replaced wholesale on override; it is never
// mutated in place.
type Record struct {
	// Name is the unique registry key, case-sensitive.
	Name string `json:"name"`
	// Constructable is the registered factory function.
	Constructable Constructable `json:"-"`
	// Description is free text for humans and for Search.
	Description string `json:"description,omitempty"`
	// Tags are coarse categorical labels. Order is preserved and duplicates
	// are allowed.
	Tags []string `json:"tags,omitempty"`
	// Metadata is an opaque caller-defined payload. The registry never
	// interprets its keys.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// clone returns a copy whose tags and metadata are independent of the
// original, so callers cannot mutate a stored Record through an accessor.
func (r *Record) clone() Record {
	return Record{
		Name:          r.Name,
		Constructable: r.Constructable,
		Description:   r.Description,
		Tags:          slices.Clone(r.Tags),
		Metadata:      maps.Clone(r.Metadata),
	}
}

// hasTag reports whether the record carries the exact tag.
func (r *Record) hasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// Summary describes the aggregate state of a registry at a point in time.
type Summary struct {
	// Name is the registry's identifying name.
	Name string `json:"name"`
	// Total is the number of live records.
	Total int `json:"total"`
	// UniqueTags is the sorted set of all tags in use.
	UniqueTags []string `json:"unique_tags"`
	// Names lists all registered names in insertion order.
	Names []string `json:"names"`
}
