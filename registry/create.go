package registry

import (
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// errorType is the reflect.Type of the error interface, used to recognize a
// trailing error return on a constructable.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Create resolves name and invokes its constructable with the forwarded
// arguments, returning whatever the constructable produces. An absent name
// fails with ErrNotFound. Any failure of the constructable itself (a
// non-nil trailing error return, a panic, or arguments its signature does
// not accept) is wrapped in a *ConstructionError that chains the cause.
// Beyond matching the signature, the registry performs no argument
// validation of its own.
func (r *Registry) Create(name string, args ...any) (any, error) {
	start := time.Now()

	r.mu.RLock()
	rec, ok := r.records[name]
	r.mu.RUnlock()

	if !ok {
		if r.instr != nil {
			r.instr.RecordCreate(r.name, name, "not_found", time.Since(start))
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	result, err := invoke(rec.Constructable, args)
	if err != nil {
		r.logger.Error("instance creation failed",
			zap.String("name", name),
			zap.Error(err))
		if r.instr != nil {
			r.instr.RecordCreate(r.name, name, "error", time.Since(start))
		}
		return nil, &ConstructionError{Name: name, Err: err}
	}

	r.logger.Debug("instance created", zap.String("name", name))
	if r.instr != nil {
		r.instr.RecordCreate(r.name, name, "ok", time.Since(start))
	}
	return result, nil
}

// invoke calls the constructable with args and extracts its result. The
// returned error is the raw cause; Create wraps it.
func invoke(c Constructable, args []any) (result any, err error) {
	fn := reflect.ValueOf(c)
	in, err := buildArgs(fn.Type(), args)
	if err != nil {
		return nil, err
	}

	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = fmt.Errorf("constructable panicked: %v", p)
		}
	}()
	out := fn.Call(in)

	// A trailing error return is part of the construction contract: non-nil
	// means the constructable failed.
	if n := len(out); n > 0 && out[n-1].Type().Implements(errorType) {
		if callErr, _ := out[n-1].Interface().(error); callErr != nil {
			return nil, callErr
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

// buildArgs converts the forwarded arguments into reflect values matching
// the function signature, expanding untyped nils to zero values where the
// parameter type permits one.
func buildArgs(ft reflect.Type, args []any) ([]reflect.Value, error) {
	numIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < numIn-1 {
			return nil, fmt.Errorf("expects at least %d arguments, got %d", numIn-1, len(args))
		}
	} else if len(args) != numIn {
		return nil, fmt.Errorf("expects %d arguments, got %d", numIn, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= numIn-1 {
			pt = ft.In(numIn - 1).Elem()
		} else {
			pt = ft.In(i)
		}

		if arg == nil {
			if !nilable(pt.Kind()) {
				return nil, fmt.Errorf("argument %d: nil is not assignable to %s", i, pt)
			}
			in[i] = reflect.Zero(pt)
			continue
		}

		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return nil, fmt.Errorf("argument %d: %s is not assignable to %s", i, av.Type(), pt)
		}
		in[i] = av
	}
	return in, nil
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}
