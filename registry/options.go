package registry

import (
	"time"

	"go.uber.org/zap"
)

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger sets the logger used for structured registration and
// instantiation logs. A nil logger falls back to zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithValidator installs a hook that runs on every Register call after the
// built-in checks. A non-nil return rejects the registration with
// ErrInvalidRegistration wrapping the hook's error.
func WithValidator(validator func(name string, c Constructable) error) Option {
	return func(r *Registry) { r.validator = validator }
}

// WithInstrumentation installs a metrics hook. All methods of the hook must
// be safe for concurrent use.
func WithInstrumentation(instr Instrumentation) Option {
	return func(r *Registry) { r.instr = instr }
}

// Instrumentation receives registry events. The internal/metrics package
// provides a Prometheus-backed implementation.
type Instrumentation interface {
	// RecordRegistration is called after a successful Register.
	RecordRegistration(registry, name string)
	// RecordUnregister is called after a successful Unregister.
	RecordUnregister(registry, name string)
	// RecordLookup is called on every Get/GetRecord with the outcome.
	RecordLookup(registry string, hit bool)
	// RecordCreate is called after every Create attempt. status is "ok",
	// "not_found", or "error".
	RecordCreate(registry, name, status string, elapsed time.Duration)
	// SetSize is called whenever the number of live records changes.
	SetSize(registry string, size int)
}

// registration collects the optional fields of a Register call.
type registration struct {
	description string
	tags        []string
	metadata    map[string]any
	override    bool
}

// RegisterOption configures a single Register or Decorator call.
type RegisterOption func(*registration)

// WithDescription sets the free-text description stored on the Record.
func WithDescription(description string) RegisterOption {
	return func(reg *registration) { reg.description = description }
}

// WithTags sets the tags stored on the Record. Order is preserved.
func WithTags(tags ...string) RegisterOption {
	return func(reg *registration) { reg.tags = tags }
}

// WithMetadata sets the opaque metadata payload stored on the Record.
func WithMetadata(metadata map[string]any) RegisterOption {
	return func(reg *registration) { reg.metadata = metadata }
}

// WithOverride permits replacing an existing registration under the same
// name. Without it, a duplicate name fails with ErrDuplicateName.
func WithOverride() RegisterOption {
	return func(reg *registration) { reg.override = true }
}
