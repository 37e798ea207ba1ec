package bandpass

import "fmt"

// Registry is an in-memory filter catalog keyed by name.
// Registration is not safe for concurrent use; lookups after setup are.
type Registry struct {
	filters map[string]*Filter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]*Filter)}
}

// Register adds a filter to the registry.
func (r *Registry) Register(f *Filter) error {
	if f == nil {
		return fmt.Errorf("bandpass: nil filter")
	}

	if _, exists := r.filters[f.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, f.Name())
	}

	r.filters[f.Name()] = f

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(f *Filter) {
	if err := r.Register(f); err != nil {
		panic("bandpass registry: " + err.Error())
	}
}

// Lookup returns the named filter, or nil if it is not registered.
func (r *Registry) Lookup(name string) *Filter {
	return r.filters[name]
}

// Names returns the registered filter names in unspecified order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}

	return names
}

// ResponseAt implements Catalog.
func (r *Registry) ResponseAt(name string, wavelengths []float64) ([]float64, error) {
	f := r.Lookup(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}

	return f.ResponseAt(wavelengths), nil
}

// ZeroPointFlux implements Catalog.
func (r *Registry) ZeroPointFlux(name string) (float64, error) {
	f := r.Lookup(name)
	if f == nil {
		return 0, fmt.Errorf("%w: %s", ErrUnknownFilter, name)
	}

	return f.ZeroPointFlux(), nil
}
