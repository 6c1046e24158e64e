package manifest

import (
	"log/slog"
	"sync"
)

// Registry holds named descriptors for lookup and introspection.
// Safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	logger *slog.Logger
	byName map[string]Descriptor
	names  []string // registration order
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Descriptor),
	}
}

// WithLogger sets a custom logger for the registry.
// If not set, slog.Default() will be used.
func (r *Registry) WithLogger(logger *slog.Logger) *Registry {
	r.logger = logger
	return r
}

// Register records d under name. Registering a name twice replaces the
// previous descriptor and logs a warning.
func (r *Registry) Register(name string, d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		logger := r.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("duplicate descriptor registration",
			slog.String("name", name),
			slog.String("descriptor", d.String()))
	} else {
		r.names = append(r.names, name)
	}
	r.byName[name] = d
}

// RegisterOf derives a descriptor for T with Of and registers it.
func RegisterOf[T any](r *Registry, name string) Descriptor {
	d := Of[T]()
	r.Register(name, d)
	return d
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	return d, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// Snapshot returns a copy of the name to descriptor table.
func (r *Registry) Snapshot() map[string]Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Descriptor, len(r.byName))
	for name, d := range r.byName {
		out[name] = d
	}
	return out
}
