// Package journal provides the process-wide append-only journal: a text file
// sink mirrored to the console, created lazily on first use.
package journal

import (
	"errors"
	"fmt"
)

// Journal errors.
var (
	// ErrEmptyPath is returned when a sink is constructed without a file path.
	ErrEmptyPath = errors.New("journal path is empty")
)

// Sink operations reported by SinkWriteError.
const (
	OpOpen   = "open"
	OpAppend = "append"
)

// SinkWriteError is returned when a journal line could not be persisted.
// The console echo has already been attempted when this error is returned.
type SinkWriteError struct {
	Path string
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("journal %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SinkWriteError) Unwrap() error {
	return e.Err
}
