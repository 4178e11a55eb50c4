// Package arch defines the CHIP-8 instruction set and memory map along with
// some related helper functions.
package arch

// Known instruction kinds.
const (
	CLS  = iota // 00E0
	RET         // 00EE
	JP          // 1nnn
	CALL        // 2nnn
	SEB         // 3xnn
	SNEB        // 4xnn
	SE          // 5xy0
	LDB         // 6xnn
	ADDB        // 7xnn

	LD   // 8xy0
	OR   // 8xy1
	AND  // 8xy2
	XOR  // 8xy3
	ADD  // 8xy4
	SUB  // 8xy5
	SHR  // 8xy6
	SUBN // 8xy7
	SHL  // 8xyE
	SNE  // 9xy0

	LDI  // Annn
	JPV0 // Bnnn
	RND  // Cxnn
	DRW  // Dxyn
	SKP  // Ex9E
	SKNP // ExA1

	LDVDT // Fx07
	LDK   // Fx0A
	LDDTV // Fx15
	LDSTV // Fx18
	ADDI  // Fx1E
	LDF   // Fx29
	LDBCD // Fx33
	LDIV  // Fx55
	LDVI  // Fx65

	KindCount
)

// Decode returns the instruction kind for the given opcode.
// Returns false if the opcode is not part of the instruction set.
func Decode(op uint16) (int, bool) {
	switch op & 0xf000 {
	case 0x0000:
		switch op {
		case 0x00e0:
			return CLS, true
		case 0x00ee:
			return RET, true
		}
	case 0x1000:
		return JP, true
	case 0x2000:
		return CALL, true
	case 0x3000:
		return SEB, true
	case 0x4000:
		return SNEB, true
	case 0x5000:
		if N(op) == 0 {
			return SE, true
		}
	case 0x6000:
		return LDB, true
	case 0x7000:
		return ADDB, true
	case 0x8000:
		switch N(op) {
		case 0x0:
			return LD, true
		case 0x1:
			return OR, true
		case 0x2:
			return AND, true
		case 0x3:
			return XOR, true
		case 0x4:
			return ADD, true
		case 0x5:
			return SUB, true
		case 0x6:
			return SHR, true
		case 0x7:
			return SUBN, true
		case 0xe:
			return SHL, true
		}
	case 0x9000:
		if N(op) == 0 {
			return SNE, true
		}
	case 0xa000:
		return LDI, true
	case 0xb000:
		return JPV0, true
	case 0xc000:
		return RND, true
	case 0xd000:
		return DRW, true
	case 0xe000:
		switch NN(op) {
		case 0x9e:
			return SKP, true
		case 0xa1:
			return SKNP, true
		}
	case 0xf000:
		switch NN(op) {
		case 0x07:
			return LDVDT, true
		case 0x0a:
			return LDK, true
		case 0x15:
			return LDDTV, true
		case 0x18:
			return LDSTV, true
		case 0x1e:
			return ADDI, true
		case 0x29:
			return LDF, true
		case 0x33:
			return LDBCD, true
		case 0x55:
			return LDIV, true
		case 0x65:
			return LDVI, true
		}
	}

	return -1, false
}

// X returns the first register index of an opcode: 0x0X00.
func X(op uint16) int { return int(op>>8) & 0xf }

// Y returns the second register index of an opcode: 0x00Y0.
func Y(op uint16) int { return int(op>>4) & 0xf }

// N returns the lowest nibble of an opcode.
func N(op uint16) int { return int(op) & 0xf }

// NN returns the low byte of an opcode.
func NN(op uint16) byte { return byte(op) }

// NNN returns the 12-bit address of an opcode.
func NNN(op uint16) uint16 { return op & AddressMask }

// Name returns the mnemonic for the given instruction kind.
// Returns false if the kind is not recognized.
func Name(kind int) (string, bool) {
	if kind < 0 || kind >= KindCount {
		return "", false
	}
	return names[kind], true
}

var names = [KindCount]string{
	CLS:   "CLS",
	RET:   "RET",
	JP:    "JP",
	CALL:  "CALL",
	SEB:   "SE",
	SNEB:  "SNE",
	SE:    "SE",
	LDB:   "LD",
	ADDB:  "ADD",
	LD:    "LD",
	OR:    "OR",
	AND:   "AND",
	XOR:   "XOR",
	ADD:   "ADD",
	SUB:   "SUB",
	SHR:   "SHR",
	SUBN:  "SUBN",
	SHL:   "SHL",
	SNE:   "SNE",
	LDI:   "LD",
	JPV0:  "JP",
	RND:   "RND",
	DRW:   "DRW",
	SKP:   "SKP",
	SKNP:  "SKNP",
	LDVDT: "LD",
	LDK:   "LD",
	LDDTV: "LD",
	LDSTV: "LD",
	ADDI:  "ADD",
	LDF:   "LD",
	LDBCD: "LD",
	LDIV:  "LD",
	LDVI:  "LD",
}
