// Package singleton provides a lazily constructed, process-scoped value holder.
//
// Lazy differs from sync.Once in one respect: a failed construction does not
// latch. The holder stays empty and the next caller runs the constructor again.
package singleton

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNilConstructor is returned when a Lazy has no constructor.
var ErrNilConstructor = errors.New("singleton constructor is nil")

// Constructor builds the value held by a Lazy.
type Constructor[T any] func() (T, error)

// Lazy holds at most one value of type T, built on first use.
//
// The fast path is a single atomic load. The slow path takes mu, checks again
// and only then runs the constructor, so concurrent first callers never build
// the value twice.
type Lazy[T any] struct {
	instance atomic.Pointer[T]
	mu       sync.Mutex
	build    Constructor[T]
}

// New creates a Lazy that builds its value with fn.
func New[T any](fn Constructor[T]) *Lazy[T] {
	return &Lazy[T]{build: fn}
}

// Get returns the held value, constructing it if no caller has done so yet.
// A constructor error is returned to the caller that triggered it and the
// holder remains empty.
func (l *Lazy[T]) Get() (T, error) {
	if p := l.instance.Load(); p != nil {
		return *p, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Another goroutine may have finished construction while we waited.
	if p := l.instance.Load(); p != nil {
		return *p, nil
	}

	var zero T
	if l.build == nil {
		return zero, ErrNilConstructor
	}

	v, err := l.build()
	if err != nil {
		return zero, err
	}

	l.instance.Store(&v)
	return v, nil
}

// Loaded reports whether the value has been constructed.
func (l *Lazy[T]) Loaded() bool {
	return l.instance.Load() != nil
}
