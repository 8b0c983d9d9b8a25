package easylog

import (
	"sort"
	"sync"
)

// Registry shares logger facades by identity. It replaces the ambient
// process-wide namespace of typical logging backends with a caller-owned
// object, so tests can use isolated registries without interference.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// Logger returns the facade registered under name, constructing it with
// the given options on first use. Options are ignored when the facade
// already exists.
func (r *Registry) Logger(name string, opts ...Option) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l, nil
	}

	l, err := New(append([]Option{WithName(name)}, opts...)...)
	if err != nil {
		return nil, err
	}
	r.loggers[name] = l
	return l, nil
}

// Names returns the registered logger identities, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every registered facade, returning the first error.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for _, l := range r.loggers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
