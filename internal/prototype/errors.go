package prototype

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrPrototypeNotFound is returned when no prototype is registered under a name.
	ErrPrototypeNotFound = errors.New("prototype not found")

	// ErrEmptyName is returned when a prototype is registered without a name.
	ErrEmptyName = errors.New("prototype name is empty")

	// ErrDuplicatePrototype is returned when a name is registered twice.
	ErrDuplicatePrototype = errors.New("duplicate prototype name")
)

// CloneUnsupportedError is returned when a value or catalog kind has no clone contract.
// No partial object accompanies it.
type CloneUnsupportedError struct {
	Type string
}

// Error implements the error interface.
func (e *CloneUnsupportedError) Error() string {
	return fmt.Sprintf("clone not supported for %s", e.Type)
}
