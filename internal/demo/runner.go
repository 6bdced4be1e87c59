// Package demo runs the creational pattern demonstrations against an output writer.
package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/narvanalabs/creational/internal/assembly"
	"github.com/narvanalabs/creational/internal/builder"
	"github.com/narvanalabs/creational/internal/journal"
	"github.com/narvanalabs/creational/internal/prototype"
	"github.com/narvanalabs/creational/internal/widgets"
	"github.com/narvanalabs/creational/pkg/logger"
)

// Runner errors.
var (
	// ErrNoJournal is returned when the singleton demo runs without a journal.
	ErrNoJournal = errors.New("journal registry is nil")

	// ErrNoCatalog is returned when the prototype demo runs without a catalog.
	ErrNoCatalog = errors.New("prototype catalog is nil")
)

// Runner holds the collaborators shared by every demo.
type Runner struct {
	Out     io.Writer
	Journal *journal.Registry
	Catalog *prototype.Registry
	Log     *logger.Logger
}

func (r *Runner) logger() *logger.Logger {
	if r.Log == nil {
		return logger.Default()
	}
	return r.Log
}

// Singleton writes the application lifecycle to the shared journal from
// several collaborators that each receive the same registry.
func (r *Runner) Singleton() error {
	if r.Journal == nil {
		return ErrNoJournal
	}

	if err := r.Journal.Write("Application started."); err != nil {
		return err
	}
	if err := (database{journal: r.Journal}).Connect(); err != nil {
		return err
	}
	if err := (userSession{journal: r.Journal}).Start("JohnDoe"); err != nil {
		return err
	}
	return r.Journal.Write("Application finished.")
}

// Prototype clones each catalog vehicle, changes the clone, and shows that
// the original is unchanged.
func (r *Runner) Prototype() error {
	if r.Catalog == nil {
		return ErrNoCatalog
	}

	for i, name := range r.Catalog.Names() {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}

		original, err := r.Catalog.Clone(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.Out, original.Describe())

		fmt.Fprintf(r.Out, "Cloning %s...\n", original.Kind().Title())
		clone, err := prototype.Duplicate(original)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.Out, clone.Describe())

		modify(clone)
		fmt.Fprintf(r.Out, "Modified clone: %s\n", clone.Describe())
		fmt.Fprintf(r.Out, "Original: %s\n", original.Describe())
	}

	r.logger().Debug("prototype demo finished", "prototypes", r.Catalog.Len())
	return nil
}

// modify changes the variant-specific value field of v.
func modify(v prototype.Vehicle) {
	switch c := v.(type) {
	case *prototype.Car:
		c.Doors = 2
	case *prototype.Bike:
		c.HasCarrier = !c.HasCarrier
	}
}

// Builder directs a sports car and an SUV build and prints their specifications.
func (r *Runner) Builder() error {
	builds := []struct {
		title   string
		builder builder.Builder
	}{
		{title: "Sports Car", builder: builder.NewSportsCarBuilder()},
		{title: "SUV", builder: builder.NewSUVBuilder()},
	}

	for i, b := range builds {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}
		car := builder.NewDirector(b.builder).Construct()
		fmt.Fprintf(r.Out, "%s Specifications:\n", b.title)
		if err := car.Specifications(r.Out); err != nil {
			return err
		}
	}
	return nil
}

// FactoryMethod assembles a car and a bike through their factories.
func (r *Runner) FactoryMethod() error {
	if err := assembly.Assemble(r.Out, assembly.CarFactory{}); err != nil {
		return err
	}
	fmt.Fprintln(r.Out)
	return assembly.Assemble(r.Out, assembly.BikeFactory{})
}

// AbstractFactory renders an application with the controls of platform.
func (r *Runner) AbstractFactory(platform string) error {
	f, err := widgets.ForPlatform(platform)
	if err != nil {
		return err
	}
	return widgets.NewApplication(f).Render(r.Out)
}

// All runs every demo in turn, stopping at the first error.
func (r *Runner) All(platform string) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{name: "abstract factory", run: func() error { return r.AbstractFactory(platform) }},
		{name: "builder", run: r.Builder},
		{name: "factory method", run: r.FactoryMethod},
		{name: "prototype", run: r.Prototype},
		{name: "singleton", run: r.Singleton},
	}

	for i, s := range steps {
		if i > 0 {
			fmt.Fprintln(r.Out)
		}
		fmt.Fprintf(r.Out, "== %s ==\n", s.name)
		if err := s.run(); err != nil {
			r.logger().WithError(err).Error("demo failed", "demo", s.name)
			return fmt.Errorf("%s demo: %w", s.name, err)
		}
	}
	return nil
}
