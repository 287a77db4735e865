package interop

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Observer is notified of every resolution attempt
type Observer interface {
	Resolved(name string, found bool)
}

// Registry maps capability names to bound implementations
type Registry struct {
	mu       sync.RWMutex
	bindings map[string]interface{}
	strict   bool
	logger   *zap.Logger
	observer Observer
}

// Option configures a Registry
type Option func(*Registry)

// WithStrict rejects re-registration instead of overwriting
func WithStrict(strict bool) Option {
	return func(r *Registry) {
		r.strict = strict
	}
}

// WithLogger sets the logger used for registration events
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver sets the resolution observer
func WithObserver(observer Observer) Option {
	return func(r *Registry) {
		r.observer = observer
	}
}

// New creates an empty registry
func New(opts ...Option) *Registry {
	r := &Registry{
		bindings: make(map[string]interface{}),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry, creating it on first access
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Configure applies options to an existing registry. The process binary uses
// it to set policy on Default before any module is registered.
func (r *Registry) Configure(opts ...Option) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, opt := range opts {
		opt(r)
	}
}

// Register binds impl to name
func (r *Registry) Register(name string, impl interface{}) error {
	if name == "" {
		return ErrInvalidName
	}
	if isNil(impl) {
		return fmt.Errorf("%w: %s", ErrNilImplementation, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bindings[name]; exists {
		if r.strict {
			return fmt.Errorf("%w: %s", ErrDuplicateRegistration, name)
		}
		r.logger.Warn("Capability re-registered, replacing previous binding",
			zap.String("capability", name),
		)
	}

	r.bindings[name] = impl
	r.logger.Debug("Capability registered",
		zap.String("capability", name),
		zap.String("type", fmt.Sprintf("%T", impl)),
	)
	return nil
}

// Unregister removes the binding for name, if any
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.bindings, name)
	r.mu.Unlock()
}

// Resolve returns the implementation bound to name
func (r *Registry) Resolve(name string) (interface{}, error) {
	r.mu.RLock()
	impl, ok := r.bindings[name]
	observer := r.observer
	r.mu.RUnlock()

	if observer != nil {
		observer.Resolved(name, ok)
	}
	if !ok {
		return nil, fmt.Errorf("capability %q: %w", name, ErrNotFound)
	}
	return impl, nil
}

// MustResolve is like Resolve but panics on a missing binding
func (r *Registry) MustResolve(name string) interface{} {
	impl, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}
	return impl
}

// Validate checks that every name is bound. All misses are reported together.
func (r *Registry) Validate(names ...string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []error
	for _, name := range names {
		if _, ok := r.bindings[name]; !ok {
			errs = append(errs, fmt.Errorf("capability %q: %w", name, ErrNotFound))
		}
	}
	return errors.Join(errs...)
}

// Names returns the bound capability names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of bindings
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// isNil also catches typed nils such as (*T)(nil) stored in an interface
func isNil(impl interface{}) bool {
	if impl == nil {
		return true
	}
	v := reflect.ValueOf(impl)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return v.IsNil()
	}
	return false
}
