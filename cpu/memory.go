package cpu

import (
	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// Memory defines the system's memory bank.
// Every address is wrapped into the 12-bit address space.
type Memory []byte

var _ devices.Memory = Memory(nil)

// NewMemory creates a zeroed memory bank of arch.MemorySize bytes.
func NewMemory() Memory {
	return make(Memory, arch.MemorySize)
}

// SetU8 sets the 8-bit value at the given address.
func (m Memory) SetU8(addr int, value byte) {
	m[addr&arch.AddressMask] = value
}

// U8 returns the 8-bit value at the given address.
func (m Memory) U8(addr int) byte {
	return m[addr&arch.AddressMask]
}

// U16 returns the big-endian 16-bit value at the given address.
func (m Memory) U16(addr int) uint16 {
	return uint16(m.U8(addr))<<8 | uint16(m.U8(addr+1))
}

// Write writes len(p) bytes from p into memory, starting at the given address.
func (m Memory) Write(address int, p []byte) {
	for i, b := range p {
		m.SetU8(address+i, b)
	}
}

// Read reads len(p) bytes from memory into p, starting at the given address.
func (m Memory) Read(address int, p []byte) {
	for i := range p {
		p[i] = m.U8(address + i)
	}
}

// clear zeroes the memory bank and reloads the font set.
func (m Memory) clear() {
	for i := range m {
		m[i] = 0
	}
	m.Write(arch.FontAddress, arch.Font[:])
}
