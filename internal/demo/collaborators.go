package demo

import (
	"fmt"

	"github.com/narvanalabs/creational/internal/journal"
)

// database reports its connection through the shared journal.
type database struct {
	journal *journal.Registry
}

func (d database) Connect() error {
	return d.journal.Write("Database connected.")
}

// userSession reports session starts through the shared journal.
type userSession struct {
	journal *journal.Registry
}

func (s userSession) Start(user string) error {
	return s.journal.Write(fmt.Sprintf("User session started for %s.", user))
}
