package prototype

import (
	"fmt"
	"slices"
	"sync"

	"github.com/narvanalabs/creational/pkg/logger"
)

// Registry holds named prototypes and hands out clones of them.
// It is safe for concurrent use; the clones it returns belong to the caller.
type Registry struct {
	mu         sync.RWMutex
	prototypes map[string]Vehicle
	log        *logger.Logger
}

// NewRegistry creates an empty registry. A nil logger discards diagnostics.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	return &Registry{
		prototypes: make(map[string]Vehicle),
		log:        log.WithComponent("prototype"),
	}
}

// Register stores a copy of v under name. Values that do not implement
// Vehicle are rejected with *CloneUnsupportedError.
func (r *Registry) Register(name string, v any) error {
	if name == "" {
		return ErrEmptyName
	}

	proto, err := Duplicate(v)
	if err != nil {
		return fmt.Errorf("registering %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.prototypes[name]; exists {
		return fmt.Errorf("registering %q: %w", name, ErrDuplicatePrototype)
	}
	r.prototypes[name] = proto
	return nil
}

// Clone returns a new copy of the prototype registered under name.
func (r *Registry) Clone(name string) (Vehicle, error) {
	r.mu.RLock()
	proto, ok := r.prototypes[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPrototypeNotFound, name)
	}

	r.log.Info("cloning "+string(proto.Kind()), "prototype", name)
	return proto.Clone(), nil
}

// Names returns the registered prototype names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.prototypes))
	for name := range r.prototypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered prototypes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prototypes)
}
