package backend

import (
	"fmt"
	"slices"
	"sync"
)

// BackendFactory builds a backend configured by opts.
type BackendFactory func(opts Options) FontBackend

var (
	registryMu sync.RWMutex
	factories  = make(map[string]BackendFactory)

	// Default tries these in order before any other registered name.
	// go-text covers color and SVG glyphs; x/image only outlines.
	preferred = []string{BackendGoText, BackendXImage}
)

// Register makes a backend selectable under name, replacing any factory
// already registered there. Backend packages call it from init().
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	factories[name] = factory
	registryMu.Unlock()
}

// Unregister removes name from the registry.
func Unregister(name string) {
	registryMu.Lock()
	delete(factories, name)
	registryMu.Unlock()
}

// Available lists the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return sortedNames()
}

// IsRegistered reports whether name has a factory.
func IsRegistered(name string) bool {
	registryMu.RLock()
	_, ok := factories[name]
	registryMu.RUnlock()
	return ok
}

// Get builds the backend registered under name.
func Get(name string, opts Options) (FontBackend, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrBackendNotAvailable, name, Available())
	}
	return factory(opts), nil
}

// Default builds the first preferred backend that is registered, falling
// back to the remaining names in sorted order.
func Default(opts Options) (FontBackend, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	order := append(slices.Clone(preferred), sortedNames()...)
	for _, name := range order {
		factory, ok := factories[name]
		if !ok {
			continue
		}
		if b := factory(opts); b != nil {
			return b, nil
		}
	}
	return nil, ErrBackendNotAvailable
}

// sortedNames must be called with registryMu held.
func sortedNames() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
