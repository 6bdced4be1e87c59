// Package assembly builds vehicles through factory methods and test-drives them.
package assembly

import (
	"fmt"
	"io"
)

// Vehicle is a product of a Factory.
type Vehicle interface {
	Drive(w io.Writer) error
}

// Factory creates one kind of vehicle.
type Factory interface {
	CreateVehicle() Vehicle
}

// Car is driven.
type Car struct{}

// Drive implements Vehicle.
func (Car) Drive(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Driving a car.")
	return err
}

// Bike is ridden.
type Bike struct{}

// Drive implements Vehicle.
func (Bike) Drive(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Riding a bike.")
	return err
}

// CarFactory creates cars.
type CarFactory struct{}

// CreateVehicle implements Factory.
func (CarFactory) CreateVehicle() Vehicle { return Car{} }

// BikeFactory creates bikes.
type BikeFactory struct{}

// CreateVehicle implements Factory.
func (BikeFactory) CreateVehicle() Vehicle { return Bike{} }

// Assemble creates a vehicle with f and drives it.
func Assemble(w io.Writer, f Factory) error {
	v := f.CreateVehicle()
	if _, err := fmt.Fprintln(w, "Assembling vehicle."); err != nil {
		return err
	}
	return v.Drive(w)
}
