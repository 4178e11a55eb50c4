package devices

// Memory defines the system's memory bank as seen by peripherals.
// Implementations wrap every address into the 12-bit address space.
type Memory interface {
	// U8 defines an unsigned 8-bit value at the given address.
	U8(addr int) byte
	SetU8(addr int, value byte)

	// U16 returns the big-endian 16-bit value at the given address.
	U16(addr int) uint16

	// Write writes len(p) bytes from p into memory, starting at the given address.
	Write(address int, p []byte)

	// Read reads len(p) bytes from memory into p, starting at the given address.
	Read(address int, p []byte)
}
