package interop

import "fmt"

// Key names a capability and fixes the interface its handle is resolved as.
// Only the initial lookup is string-keyed; the returned handle is typed.
type Key[T any] struct {
	name string
}

// NewKey creates a typed capability key
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the capability name
func (k Key[T]) Name() string {
	return k.name
}

// String implements fmt.Stringer
func (k Key[T]) String() string {
	return k.name
}

// Resolve looks up the capability and returns it as T
func (k Key[T]) Resolve(r *Registry) (T, error) {
	var zero T

	impl, err := r.Resolve(k.name)
	if err != nil {
		return zero, err
	}

	typed, ok := impl.(T)
	if !ok {
		return zero, fmt.Errorf("capability %q is %T: %w", k.name, impl, ErrTypeMismatch)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on failure
func (k Key[T]) MustResolve(r *Registry) T {
	typed, err := k.Resolve(r)
	if err != nil {
		panic(err)
	}
	return typed
}

// Provide binds impl under key. The compiler checks impl against T.
func Provide[T any](r *Registry, key Key[T], impl T) error {
	return r.Register(key.name, impl)
}
