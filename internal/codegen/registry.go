package codegen

import (
	"fmt"
	"sort"
)

// Factory creates a generator bound to a base package
type Factory func(basePackage string) Generator

// Registry manages available source renderers
type Registry struct {
	generators map[string]Factory
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]Factory),
	}
}

// Register adds a new generator factory to the registry
func (r *Registry) Register(kind string, factory Factory) {
	r.generators[kind] = factory
}

// Get returns a generator for the specified kind
func (r *Registry) Get(kind, basePackage string) (Generator, error) {
	factory, exists := r.generators[kind]
	if !exists {
		return nil, fmt.Errorf("unsupported artifact kind: %s", kind)
	}

	return factory(basePackage), nil
}

// Kinds returns the registered kinds in sorted order
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.generators))
	for kind := range r.generators {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
