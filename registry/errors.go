package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for the registry.
var (
	// ErrDuplicateName is returned when registering a name that already
	// exists without the override option.
	ErrDuplicateName = errors.New("registry: name already registered")

	// ErrNotFound is returned by lookups, instantiation, and removal when
	// the name has never been registered or has been unregistered.
	ErrNotFound = errors.New("registry: name not found")

	// ErrInvalidRegistration is returned for malformed registration input:
	// an empty name, a nil constructable, a constructable that is not a
	// function, or a custom validator rejection.
	ErrInvalidRegistration = errors.New("registry: invalid registration")
)

// ConstructionError reports that a registered constructable failed while
// producing an instance. The original failure is preserved and reachable
// through errors.Unwrap / errors.Is / errors.As.
type ConstructionError struct {
	// Name is the registration name the instantiation was requested under.
	Name string
	// Err is the underlying failure: the error returned by the
	// constructable, a recovered panic, or an argument mismatch.
	Err error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("registry: constructing %q: %v", e.Name, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }
