package prototype

import "fmt"

// Car is a wheeled vehicle with a door count.
type Car struct {
	Identity
	Doors   int
	Service *ServiceRecord
}

// NewCar creates a car with an empty service record.
func NewCar(model, color string, doors int) *Car {
	return &Car{
		Identity: Identity{Model: model, Color: color},
		Doors:    doors,
		Service:  &ServiceRecord{},
	}
}

// Kind implements Vehicle.
func (c *Car) Kind() Kind { return KindCar }

// Base implements Vehicle.
func (c *Car) Base() *Identity { return &c.Identity }

// Clone implements Vehicle. The service record is shared with c.
// A nil Car clones to a nil Car.
func (c *Car) Clone() Vehicle {
	if c == nil {
		return (*Car)(nil)
	}
	return &Car{
		Identity: Identity{Model: c.Model, Color: c.Color},
		Doors:    c.Doors,
		Service:  c.Service,
	}
}

// DeepClone returns a copy of c that also owns a copy of the service record.
func (c *Car) DeepClone() *Car {
	if c == nil {
		return nil
	}
	clone := CloneAs(c)
	clone.Service = c.Service.Copy()
	return clone
}

// Describe implements Vehicle.
func (c *Car) Describe() string {
	return fmt.Sprintf("%s, Doors: %d", describe(c), c.Doors)
}
