package registry

import (
	"context"
	"sort"
	"sync"
)

// Handler defines the standard signature for a function that executes the
// logic of a single method. It receives context and the request's positional
// arguments in order, and returns a result value or an error.
type Handler func(ctx context.Context, args ...any) (any, error)

/*
Registry is the method registry the dispatcher consults but does not own: a
mapping from method name to handler. It is populated during startup and
treated as immutable configuration for the lifetime of the dispatcher; the
lock only guards the registration phase.
*/
type Registry struct {
	mu      sync.RWMutex
	methods map[string]Handler
}

/*
New creates an empty method registry.
*/
func New() *Registry {
	return &Registry{
		methods: make(map[string]Handler),
	}
}

/*
Register adds or replaces the handler for a method name. It should typically
be called during initialization, before the registry is handed to a
dispatcher.
*/
func (r *Registry) Register(name string, handler Handler) *Registry {
	r.mu.Lock()
	r.methods[name] = handler
	r.mu.Unlock()

	return r
}

/*
Resolve retrieves the handler for a method name. Returns the handler and a
boolean indicating if it was found.
*/
func (r *Registry) Resolve(name string) (Handler, bool) {
	r.mu.RLock()
	handler, found := r.methods[name]
	r.mu.RUnlock()

	return handler, found
}

/*
Methods returns the sorted names of all registered methods.
*/
func (r *Registry) Methods() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.methods))

	for name := range r.methods {
		names = append(names, name)
	}

	r.mu.RUnlock()
	sort.Strings(names)

	return names
}
