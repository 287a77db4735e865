package bridge

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	// ErrModuleNotFound is returned for an unknown bridge module
	ErrModuleNotFound = errors.New("bridge module not found")
	// ErrMethodNotFound is returned for an unknown method on a known module
	ErrMethodNotFound = errors.New("bridge method not found")
	// ErrInvalidTarget is returned when a target is not "Module.method"
	ErrInvalidTarget = errors.New("invalid target format")
)

// Module is a UI-facing adapter over one capability
type Module interface {
	Definition() Definition
	Invoke(ctx context.Context, method string, args map[string]interface{}) (*Result, error)
}

// Recorder receives per-call measurements
type Recorder interface {
	RecordBridgeCall(module, method, status string, duration time.Duration)
}

// Registry holds bridge modules by name
type Registry struct {
	modules  sync.Map
	recorder Recorder
}

// NewRegistry creates a bridge registry. recorder may be nil.
func NewRegistry(recorder Recorder) *Registry {
	return &Registry{recorder: recorder}
}

// Register adds a bridge module, replacing any module with the same name
func (r *Registry) Register(module Module) error {
	def := module.Definition()
	if def.Name == "" {
		return fmt.Errorf("bridge module name cannot be empty")
	}

	r.modules.Store(def.Name, module)
	return nil
}

// Unregister removes a bridge module
func (r *Registry) Unregister(name string) {
	r.modules.Delete(name)
}

// Get retrieves a bridge module by name
func (r *Registry) Get(name string) (Module, bool) {
	val, ok := r.modules.Load(name)
	if !ok {
		return nil, false
	}
	return val.(Module), true
}

// List returns all definitions sorted by name
func (r *Registry) List() []Definition {
	var defs []Definition
	r.modules.Range(func(_, value interface{}) bool {
		defs = append(defs, value.(Module).Definition())
		return true
	})

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}

// Invoke calls a method addressed as "Module.method"
func (r *Registry) Invoke(ctx context.Context, target string, args map[string]interface{}) (*Result, error) {
	name, method, ok := strings.Cut(target, ".")
	if !ok || name == "" || method == "" {
		res, _ := failure("invalid target format")
		return res, fmt.Errorf("%w: %s", ErrInvalidTarget, target)
	}
	return r.Call(ctx, name, method, args)
}

// Call invokes method on the named module
func (r *Registry) Call(ctx context.Context, name, method string, args map[string]interface{}) (*Result, error) {
	module, ok := r.Get(name)
	if !ok {
		res, _ := failure(fmt.Sprintf("module not found: %s", name))
		return res, fmt.Errorf("%w: %s", ErrModuleNotFound, name)
	}

	if args == nil {
		args = map[string]interface{}{}
	}

	start := time.Now()
	result, err := module.Invoke(ctx, method, args)
	r.record(name, method, result, err, time.Since(start))

	return result, err
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	var total, totalMethods int
	capabilities := make(map[string]int)

	r.modules.Range(func(_, value interface{}) bool {
		def := value.(Module).Definition()
		total++
		totalMethods += len(def.Methods)
		if def.Capability != "" {
			capabilities[def.Capability]++
		}
		return true
	})

	return map[string]interface{}{
		"total_modules": total,
		"total_methods": totalMethods,
		"capabilities":  capabilities,
	}
}

func (r *Registry) record(module, method string, result *Result, err error, duration time.Duration) {
	if r.recorder == nil {
		return
	}

	status := "success"
	switch {
	case err != nil:
		status = "error"
	case result == nil || !result.Success:
		status = "failure"
	}
	r.recorder.RecordBridgeCall(module, method, status, duration)
}

func unknownMethod(module, method string) (*Result, error) {
	res, _ := failure(fmt.Sprintf("unknown method: %s", method))
	return res, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, module, method)
}
