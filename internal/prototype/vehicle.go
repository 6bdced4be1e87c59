// Package prototype provides the cloneable vehicle family and a registry of
// named prototypes.
//
// Clone copies every field of a variant explicitly. Value fields (model, color,
// door count, carrier flag) are independent after the copy. The nested
// *ServiceRecord is NOT copied: a clone and its original share the same record,
// so a mileage update made through one is visible through the other. Use
// DeepClone on the concrete variant when the record must be independent.
package prototype

import (
	"fmt"
	"reflect"
	"slices"
)

// Kind tags a concrete vehicle variant.
type Kind string

// Vehicle kinds.
const (
	KindCar  Kind = "car"
	KindBike Kind = "bike"
)

// Identity holds the fields shared by every variant.
type Identity struct {
	Model string
	Color string
}

// Vehicle is the capability shared by every cloneable variant.
type Vehicle interface {
	// Kind returns the concrete variant tag.
	Kind() Kind
	// Base returns the shared fields.
	Base() *Identity
	// Clone returns a new vehicle of the same variant with every field copied.
	// Nested records are shared with the receiver.
	Clone() Vehicle
	// Describe returns a one-line human readable summary.
	Describe() string
}

// ServiceRecord is mutable state owned by a vehicle and shared by its shallow clones.
type ServiceRecord struct {
	Mileage int
	Notes   []string
}

// Copy returns an independent copy of the record. A nil record copies to nil.
func (r *ServiceRecord) Copy() *ServiceRecord {
	if r == nil {
		return nil
	}
	return &ServiceRecord{
		Mileage: r.Mileage,
		Notes:   slices.Clone(r.Notes),
	}
}

// kindSpec is the capability table entry of a variant.
type kindSpec struct {
	title string
	build func(e catalogEntry) Vehicle
}

var kindTable = map[Kind]kindSpec{
	KindCar: {
		title: "Car",
		build: func(e catalogEntry) Vehicle { return NewCar(e.Model, e.Color, e.Doors) },
	},
	KindBike: {
		title: "Bike",
		build: func(e catalogEntry) Vehicle { return NewBike(e.Model, e.Color, e.HasCarrier) },
	},
}

// Kinds returns every known variant, sorted.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindTable))
	for k := range kindTable {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Title returns the display name of the kind.
func (k Kind) Title() string {
	if spec, ok := kindTable[k]; ok {
		return spec.title
	}
	return string(k)
}

// Valid reports whether k is a known variant.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

func describe(v Vehicle) string {
	b := v.Base()
	return fmt.Sprintf("Vehicle: %s, Model: %s, Color: %s", v.Kind().Title(), b.Model, b.Color)
}

// Duplicate clones v without the caller naming its variant.
// It returns *CloneUnsupportedError when v does not implement Vehicle or is
// a nil pointer to a variant.
func Duplicate(v any) (Vehicle, error) {
	vehicle, ok := v.(Vehicle)
	if !ok || isNilPointer(v) {
		return nil, &CloneUnsupportedError{Type: fmt.Sprintf("%T", v)}
	}
	return vehicle.Clone(), nil
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil())
}

// CloneAs clones v and returns the copy with v's static type.
// A nil pointer clones to a nil pointer of the same type; a nil interface
// value panics, use Duplicate when v may be nil.
func CloneAs[T Vehicle](v T) T {
	return v.Clone().(T)
}
