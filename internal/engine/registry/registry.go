// Package registry manages the available factor analyzers.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/DevCompass/compass-cli/internal/engine/core"
)

// Registry manages available analyzers.
// Thread-safe for concurrent access.
type Registry struct {
	mu        sync.RWMutex
	analyzers map[string]core.Analyzer
	factories map[string]AnalyzerFactory
}

// AnalyzerFactory creates analyzer instances.
type AnalyzerFactory func() (core.Analyzer, error)

var globalRegistry = &Registry{
	analyzers: make(map[string]core.Analyzer),
	factories: make(map[string]AnalyzerFactory),
}

// Global returns the global analyzer registry.
func Global() *Registry {
	return globalRegistry
}

// Register registers an analyzer factory.
// The factory will be called lazily when Get() is first called.
func (r *Registry) Register(name string, factory AnalyzerFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("analyzer %q already registered", name)
	}

	r.factories[name] = factory
	return nil
}

// Get retrieves an analyzer by name.
// Creates the analyzer on first access (lazy initialization).
func (r *Registry) Get(name string) (core.Analyzer, error) {
	// Fast path: check if already created
	r.mu.RLock()
	if a, ok := r.analyzers[name]; ok {
		r.mu.RUnlock()
		return a, nil
	}
	r.mu.RUnlock()

	// Slow path: create analyzer
	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if a, ok := r.analyzers[name]; ok {
		return a, nil
	}

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("analyzer %q not registered", name)
	}

	a, err := factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer %q: %w", name, err)
	}

	r.analyzers[name] = a
	return a, nil
}

// List returns all registered analyzer names, sorted for deterministic
// iteration.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MustRegister registers an analyzer factory and panics on error.
// Useful for init() functions.
func MustRegister(name string, factory AnalyzerFactory) {
	if err := Global().Register(name, factory); err != nil {
		panic(err)
	}
}
