package registry

import (
	"reflect"
	"sync"
)

// The process-wide default registry. It is created on first use and lives
// for the process lifetime; there is no teardown. Prefer constructing and
// passing an explicit *Registry; the default exists so unrelated packages
// can share a namespace without plumbing one through.
var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide default registry, creating it on first
// use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New("default")
	})
	return defaultRegistry
}

// Register registers a constructable in the default registry.
func Register(name string, c Constructable, opts ...RegisterOption) error {
	return Default().Register(name, c, opts...)
}

// Decorator returns a registering wrapper bound to the default registry.
func Decorator(name string, opts ...RegisterOption) func(Constructable) Constructable {
	return Default().Decorator(name, opts...)
}

// Unregister removes a registration from the default registry.
func Unregister(name string) error {
	return Default().Unregister(name)
}

// Get returns a constructable from the default registry.
func Get(name string) (Constructable, error) {
	return Default().Get(name)
}

// GetRecord returns a registration record from the default registry.
func GetRecord(name string) (Record, error) {
	return Default().GetRecord(name)
}

// Exists reports whether name is registered in the default registry.
func Exists(name string) bool {
	return Default().Exists(name)
}

// Count returns the number of records in the default registry.
func Count() int {
	return Default().Count()
}

// ListAll lists all names in the default registry in insertion order.
func ListAll() []string {
	return Default().ListAll()
}

// ListByTag lists names in the default registry carrying the exact tag.
func ListByTag(tag string) []string {
	return Default().ListByTag(tag)
}

// ListByType lists names in the default registry whose constructable
// produces a value assignable to target.
func ListByType(target reflect.Type) []string {
	return Default().ListByType(target)
}

// Search searches the default registry.
func Search(query string, fields ...Field) []string {
	return Default().Search(query, fields...)
}

// Create instantiates a registration from the default registry.
func Create(name string, args ...any) (any, error) {
	return Default().Create(name, args...)
}

// Clear empties the default registry.
func Clear() {
	Default().Clear()
}
