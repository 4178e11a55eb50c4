package main

import (
	"fmt"
	"strings"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/cpu"
)

// operands returns a human-readable version of the instruction operands.
func operands(i *cpu.Instruction) string {
	vx := arch.RegisterName(i.X)
	vy := arch.RegisterName(i.Y)

	switch i.Kind {
	case arch.JP, arch.CALL:
		return fmt.Sprintf("%03x", i.NNN)
	case arch.JPV0:
		return fmt.Sprintf("V0, %03x", i.NNN)
	case arch.SEB, arch.SNEB, arch.LDB, arch.ADDB, arch.RND:
		return fmt.Sprintf("%s, %02x", vx, i.NN)
	case arch.SE, arch.SNE, arch.LD, arch.OR, arch.AND, arch.XOR,
		arch.ADD, arch.SUB, arch.SHR, arch.SUBN, arch.SHL:
		return vx + ", " + vy
	case arch.LDI:
		return fmt.Sprintf("I, %03x", i.NNN)
	case arch.DRW:
		return fmt.Sprintf("%s, %s, %d", vx, vy, i.N)
	case arch.SKP, arch.SKNP:
		return vx
	case arch.LDVDT:
		return vx + ", DT"
	case arch.LDK:
		return vx + ", K"
	case arch.LDDTV:
		return "DT, " + vx
	case arch.LDSTV:
		return "ST, " + vx
	case arch.ADDI:
		return "I, " + vx
	case arch.LDF:
		return "F, " + vx
	case arch.LDBCD:
		return "B, " + vx
	case arch.LDIV:
		return "[I], " + vx
	case arch.LDVI:
		return vx + ", [I]"
	}
	return ""
}

// formatTrace returns one trace line for the given instruction.
func formatTrace(i *cpu.Instruction) string {
	name, ok := arch.Name(i.Kind)
	if !ok {
		name = "???"
	}

	var sb strings.Builder
	sb.Grow(40)
	fmt.Fprintf(&sb, "%03x %04x %5s  %s", i.IP, i.Opcode, name, operands(i))
	return strings.TrimRight(sb.String(), " ")
}
