package prototype

import "fmt"

// Bike is a wheeled vehicle that may carry a luggage carrier.
type Bike struct {
	Identity
	HasCarrier bool
	Service    *ServiceRecord
}

// NewBike creates a bike with an empty service record.
func NewBike(model, color string, hasCarrier bool) *Bike {
	return &Bike{
		Identity:   Identity{Model: model, Color: color},
		HasCarrier: hasCarrier,
		Service:    &ServiceRecord{},
	}
}

// Kind implements Vehicle.
func (b *Bike) Kind() Kind { return KindBike }

// Base implements Vehicle.
func (b *Bike) Base() *Identity { return &b.Identity }

// Clone implements Vehicle. The service record is shared with b.
// A nil Bike clones to a nil Bike.
func (b *Bike) Clone() Vehicle {
	if b == nil {
		return (*Bike)(nil)
	}
	return &Bike{
		Identity:   Identity{Model: b.Model, Color: b.Color},
		HasCarrier: b.HasCarrier,
		Service:    b.Service,
	}
}

// DeepClone returns a copy of b that also owns a copy of the service record.
func (b *Bike) DeepClone() *Bike {
	if b == nil {
		return nil
	}
	clone := CloneAs(b)
	clone.Service = b.Service.Copy()
	return clone
}

// Describe implements Vehicle.
func (b *Bike) Describe() string {
	return fmt.Sprintf("%s, Carrier: %t", describe(b), b.HasCarrier)
}
