package journal

import (
	"fmt"

	"github.com/narvanalabs/creational/internal/singleton"
	"github.com/narvanalabs/creational/pkg/logger"
)

// Registry hands out the single Sink shared by every caller it is injected into.
// The sink is built on the first GetInstance call, never earlier.
type Registry struct {
	lazy *singleton.Lazy[*Sink]

	// fallback echoes lines to the console while no sink can be built.
	fallback *Sink
}

// NewRegistry creates a Registry whose sink appends to path.
// The path is captured now; it is only used when the sink is first requested.
func NewRegistry(path string, log *logger.Logger, opts ...Option) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	log = log.WithComponent("journal")

	r := NewRegistryFunc(func() (*Sink, error) {
		s, err := NewSink(path, opts...)
		if err != nil {
			log.WithError(err).Error("failed to create journal sink", "path", path)
			return nil, fmt.Errorf("creating journal sink: %w", err)
		}
		log.Debug("journal sink created", "id", s.ID, "path", s.Path)
		return s, nil
	})
	r.fallback = newEcho(opts...)
	return r
}

// NewRegistryFunc creates a Registry that builds its sink with fn.
func NewRegistryFunc(fn singleton.Constructor[*Sink]) *Registry {
	return &Registry{lazy: singleton.New(fn)}
}

// GetInstance returns the shared sink, creating it on first use.
// If creation fails the error is returned and the next call tries again.
func (r *Registry) GetInstance() (*Sink, error) {
	return r.lazy.Get()
}

// Created reports whether the sink has been built.
func (r *Registry) Created() bool {
	return r.lazy.Loaded()
}

// Write appends message to the shared sink. If the sink cannot be built the
// constructor error is returned; a registry from NewRegistry still echoes the
// line to its console, one from NewRegistryFunc does not.
func (r *Registry) Write(message string) error {
	s, err := r.GetInstance()
	if err != nil {
		if r.fallback != nil {
			r.fallback.mu.Lock()
			r.fallback.echo(r.fallback.format(message))
			r.fallback.mu.Unlock()
		}
		return err
	}
	return s.Write(message)
}
