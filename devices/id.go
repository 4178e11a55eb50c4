package devices

import "fmt"

// ID identifies a device: the upper 16 bits hold the vendor,
// the lower 16 bits the model.
type ID uint32

// Vendor is the vendor code shared by the built in peripherals.
const Vendor = 0xc8

// Known device models.
const (
	ModelCPU = iota + 1
	ModelDisplay
	ModelKeypad
)

// NewID creates a new id with the given components.
func NewID(vendor, model int) ID {
	return ID(vendor&0xffff)<<16 | ID(model&0xffff)
}

// Vendor returns the vendor component of the id.
func (id ID) Vendor() int {
	return int(id>>16) & 0xffff
}

// Model returns the model component of the id.
func (id ID) Model() int {
	return int(id) & 0xffff
}

func (id ID) String() string {
	return fmt.Sprintf("%04x:%04x", id.Vendor(), id.Model())
}
