package arch

// Memory map.
const (
	MemorySize     = 0x1000                      // Addressable memory in bytes.
	AddressMask    = MemorySize - 1              // Mask applied to every computed address.
	FontAddress    = 0x050                       // Location of the built in glyph set.
	ProgramAddress = 0x200                       // Location at which programs are loaded.
	MaxProgramSize = MemorySize - ProgramAddress // Largest program image that fits.
	StackDepth     = 16                          // Number of return addresses the stack holds.
	RegisterCount  = 16                          // Number of general purpose registers.
	FlagRegister   = 0xf                         // Register receiving carry, borrow and collision flags.
	GlyphSize      = 5                           // Bytes per font glyph.
)

// Display geometry.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Font holds the 4x5 hexadecimal digit glyphs 0-F.
var Font = [16 * GlyphSize]byte{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}
