package cpu

import (
	"fmt"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// Instruction defines decoded instruction data.
type Instruction struct {
	IP     uint16 // Instruction address.
	Opcode uint16 // Raw opcode.
	Kind   int    // Instruction kind; -1 if the opcode is not supported.
	X      int    // First register index.
	Y      int    // Second register index.
	N      int    // Low nibble.
	NN     byte   // Low byte.
	NNN    uint16 // 12-bit address.
}

// Decode decodes the instruction stored at address ip.
// Returns false if the opcode is not part of the instruction set.
func (i *Instruction) Decode(m devices.Memory, ip uint16) bool {
	op := m.U16(int(ip))

	i.IP = ip
	i.Opcode = op
	i.X = arch.X(op)
	i.Y = arch.Y(op)
	i.N = arch.N(op)
	i.NN = arch.NN(op)
	i.NNN = arch.NNN(op)

	kind, ok := arch.Decode(op)
	i.Kind = kind
	return ok
}

// Supported returns true if the instruction is part of the instruction set.
func (i *Instruction) Supported() bool {
	return i.Kind >= 0
}

func (i *Instruction) String() string {
	name, ok := arch.Name(i.Kind)
	if !ok {
		name = "???"
	}
	return fmt.Sprintf("%03x %04x %s", i.IP, i.Opcode, name)
}
