// Package builder assembles cars step by step under the control of a Director.
package builder

import (
	"fmt"
	"io"
)

// Car is the product assembled by a Builder.
type Car struct {
	Engine       string
	Transmission string
	Wheels       int
	HasGPS       bool
	HasSunroof   bool
}

// Specifications writes the car's specification sheet to w.
func (c *Car) Specifications(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Engine: %s\nTransmission: %s\nWheels: %d\nGPS: %s\nSunroof: %s\n",
		c.Engine, c.Transmission, c.Wheels, yesNo(c.HasGPS), yesNo(c.HasSunroof),
	)
	return err
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Builder sets every part of a car in separate steps.
type Builder interface {
	// Reset starts a new car, discarding any car in progress.
	Reset()
	SetEngine()
	SetTransmission()
	SetWheels()
	SetGPS()
	SetSunroof()
	// Car returns the car in progress.
	Car() *Car
}

// base holds the car in progress for concrete builders.
type base struct {
	car *Car
}

func (b *base) Reset()    { b.car = &Car{} }
func (b *base) Car() *Car { return b.car }

// SportsCarBuilder builds a manual V8 with every option.
type SportsCarBuilder struct{ base }

// NewSportsCarBuilder creates a SportsCarBuilder with a car in progress.
func NewSportsCarBuilder() *SportsCarBuilder {
	b := &SportsCarBuilder{}
	b.Reset()
	return b
}

func (b *SportsCarBuilder) SetEngine()       { b.car.Engine = "V8 Engine" }
func (b *SportsCarBuilder) SetTransmission() { b.car.Transmission = "Manual" }
func (b *SportsCarBuilder) SetWheels()       { b.car.Wheels = 4 }
func (b *SportsCarBuilder) SetGPS()          { b.car.HasGPS = true }
func (b *SportsCarBuilder) SetSunroof()      { b.car.HasSunroof = true }

// SUVBuilder builds an automatic V6 without a sunroof.
type SUVBuilder struct{ base }

// NewSUVBuilder creates an SUVBuilder with a car in progress.
func NewSUVBuilder() *SUVBuilder {
	b := &SUVBuilder{}
	b.Reset()
	return b
}

func (b *SUVBuilder) SetEngine()       { b.car.Engine = "V6 Engine" }
func (b *SUVBuilder) SetTransmission() { b.car.Transmission = "Automatic" }
func (b *SUVBuilder) SetWheels()       { b.car.Wheels = 4 }
func (b *SUVBuilder) SetGPS()          { b.car.HasGPS = true }
func (b *SUVBuilder) SetSunroof()      { b.car.HasSunroof = false }

// Director runs the build steps in a fixed order.
type Director struct {
	builder Builder
}

// NewDirector creates a Director driving b.
func NewDirector(b Builder) *Director {
	return &Director{builder: b}
}

// Construct builds a fresh car and returns it.
func (d *Director) Construct() *Car {
	d.builder.Reset()
	d.builder.SetEngine()
	d.builder.SetTransmission()
	d.builder.SetWheels()
	d.builder.SetGPS()
	d.builder.SetSunroof()
	return d.builder.Car()
}
