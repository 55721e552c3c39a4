package registry

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Decorator returns a wrapper that registers the constructable it is applied
// to and hands it back unchanged, so registration can sit directly beside a
// definition:
//
//	var _ = reg.Decorator("csv", registry.WithTags("format"))(NewCSVConverter)
//
// An empty name is derived from the function's own symbol name, the way a
// definition's declared name would be. Registration happens when the wrapper
// is applied, not when Decorator is called, with the same semantics as
// Register, except that a registration failure panics, because the wrapper
// has no error channel and this form is meant for package-initialization
// time, where a bad registration is a programming error.
func (r *Registry) Decorator(name string, opts ...RegisterOption) func(Constructable) Constructable {
	return func(c Constructable) Constructable {
		n := name
		if n == "" {
			n = constructableName(c)
		}
		if err := r.Register(n, c, opts...); err != nil {
			panic(fmt.Sprintf("registry %q: decorator registration of %q: %v", r.name, n, err))
		}
		return c
	}
}

// constructableName derives a registration name from a function value's
// symbol: the last path segment after the package qualifier, with the "-fm"
// suffix of method values stripped. Non-function values fall back to their
// type name; Register rejects them afterwards anyway.
func constructableName(c Constructable) string {
	v := reflect.ValueOf(c)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Sprintf("%T", c)
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return fmt.Sprintf("%T", c)
	}
	name := fn.Name() // e.g. github.com/xlab-open/datachain/convert.NewCSVConverter
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}
