package registry

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry is a thread-safe in-memory catalog mapping unique names to
// registration Records. Iteration order (ListAll, ListByTag, Search) is the
// order of first registration; overriding a name keeps its position.
type Registry struct {
	name      string
	mu        sync.RWMutex
	records   map[string]*Record
	order     []string
	logger    *zap.Logger
	validator func(name string, c Constructable) error
	instr     Instrumentation
}

// New creates an empty Registry with the given identifying name. The name
// labels log entries and metrics when several registries coexist; it does
// not have to be unique across instances.
func New(name string, opts ...Option) *Registry {
	r := &Registry{
		name:    name,
		records: make(map[string]*Record),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(
		zap.String("component", "registry"),
		zap.String("registry", name),
	)
	return r
}

// Name returns the registry's identifying name.
func (r *Registry) Name() string { return r.name }

// Register stores a constructable under name. It fails with
// ErrInvalidRegistration for an empty name or a non-function constructable,
// and with ErrDuplicateName when the name exists and WithOverride was not
// given. On failure the registry is left unchanged.
func (r *Registry) Register(name string, c Constructable, opts ...RegisterOption) error {
	var reg registration
	for _, opt := range opts {
		opt(&reg)
	}

	if err := validateRegistration(name, c); err != nil {
		return err
	}
	if r.validator != nil {
		if err := r.validator(name, c); err != nil {
			return fmt.Errorf("%w: %q rejected by validator: %w", ErrInvalidRegistration, name, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.records[name]
	if exists && !reg.override {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	r.records[name] = &Record{
		Name:          name,
		Constructable: c,
		Description:   reg.description,
		Tags:          slices.Clone(reg.tags),
		Metadata:      maps.Clone(reg.metadata),
	}
	if !exists {
		r.order = append(r.order, name)
	}

	r.logger.Info("constructable registered",
		zap.String("name", name),
		zap.Bool("override", exists))
	if r.instr != nil {
		r.instr.RecordRegistration(r.name, name)
		r.instr.SetSize(r.name, len(r.records))
	}
	return nil
}

// Unregister removes the record for name. It fails with ErrNotFound when the
// name is absent; removal is never a silent no-op.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	delete(r.records, name)
	if i := slices.Index(r.order, name); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}

	r.logger.Info("constructable unregistered", zap.String("name", name))
	if r.instr != nil {
		r.instr.RecordUnregister(r.name, name)
		r.instr.SetSize(r.name, len(r.records))
	}
	return nil
}

// Get returns the constructable registered under name, or ErrNotFound. It
// never returns a nil sentinel for a missing name.
func (r *Registry) Get(name string) (Constructable, error) {
	r.mu.RLock()
	rec, ok := r.records[name]
	r.mu.RUnlock()

	if r.instr != nil {
		r.instr.RecordLookup(r.name, ok)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return rec.Constructable, nil
}

// GetRecord returns a copy of the full registration record for name, or
// ErrNotFound. Mutating the returned Record does not affect the registry.
func (r *Registry) GetRecord(name string) (Record, error) {
	r.mu.RLock()
	rec, ok := r.records[name]
	r.mu.RUnlock()

	if r.instr != nil {
		r.instr.RecordLookup(r.name, ok)
	}
	if !ok {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return rec.clone(), nil
}

// Exists reports whether name is registered. It never fails.
func (r *Registry) Exists(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.records[name]
	return ok
}

// Count returns the number of live records.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// ListAll returns all registered names in insertion order.
func (r *Registry) ListAll() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// ListByTag returns the names whose record carries the exact tag, in
// insertion order. A tag nobody uses yields an empty slice, not an error.
func (r *Registry) ListByTag(tag string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0)
	for _, name := range r.order {
		if r.records[name].hasTag(tag) {
			names = append(names, name)
		}
	}
	return names
}

// ListByType returns the names whose constructable's first return type is
// assignable to target, in insertion order. For an interface I, obtain the
// target via reflect.TypeOf((*I)(nil)).Elem().
func (r *Registry) ListByType(target reflect.Type) []string {
	names := make([]string, 0)
	if target == nil {
		return names
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		ft := reflect.TypeOf(r.records[name].Constructable)
		if ft.Kind() != reflect.Func || ft.NumOut() == 0 {
			continue
		}
		if ft.Out(0).AssignableTo(target) {
			names = append(names, name)
		}
	}
	return names
}

// Clear removes every record. It never fails and is idempotent.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = make(map[string]*Record)
	r.order = r.order[:0]

	r.logger.Info("registry cleared")
	if r.instr != nil {
		r.instr.SetSize(r.name, 0)
	}
}

// Summary returns the registry's aggregate state: total count, the sorted
// set of tags in use, and all names in insertion order.
func (r *Registry) Summary() Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tagSet := make(map[string]struct{})
	for _, rec := range r.records {
		for _, t := range rec.Tags {
			tagSet[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(tagSet))
	for t := range tagSet {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return Summary{
		Name:       r.name,
		Total:      len(r.records),
		UniqueTags: tags,
		Names:      slices.Clone(r.order),
	}
}

// validateRegistration applies the built-in registration checks.
func validateRegistration(name string, c Constructable) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidRegistration)
	}
	if c == nil {
		return fmt.Errorf("%w: constructable for %q must not be nil", ErrInvalidRegistration, name)
	}
	if reflect.TypeOf(c).Kind() != reflect.Func {
		return fmt.Errorf("%w: constructable for %q must be a function, got %T", ErrInvalidRegistration, name, c)
	}
	return nil
}
