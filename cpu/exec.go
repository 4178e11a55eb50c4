package cpu

import (
	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices/keypad"
)

// exec performs the effect of a single decoded instruction, including the
// program counter update.
func (c *CPU) exec(instr *Instruction) error {
	v := c.v[:]
	x, y := instr.X, instr.Y
	vx, vy := v[x], v[y]

	switch instr.Kind {
	case arch.CLS:
		c.display.Clear()
		c.next()
	case arch.RET:
		addr, err := c.stack.Pop()
		if err != nil {
			return err
		}
		c.jump(addr + 2)
	case arch.JP:
		c.jump(instr.NNN)
	case arch.CALL:
		if err := c.stack.Push(c.pc); err != nil {
			return err
		}
		c.jump(instr.NNN)

	case arch.SEB:
		c.skipIf(vx == instr.NN)
	case arch.SNEB:
		c.skipIf(vx != instr.NN)
	case arch.SE:
		c.skipIf(vx == vy)
	case arch.SNE:
		c.skipIf(vx != vy)

	case arch.LDB:
		v[x] = instr.NN
		c.next()
	case arch.ADDB:
		v[x] = vx + instr.NN
		c.next()

	case arch.LD:
		v[x] = vy
		c.next()
	case arch.OR:
		v[x] = vx | vy
		c.next()
	case arch.AND:
		v[x] = vx & vy
		c.next()
	case arch.XOR:
		v[x] = vx ^ vy
		c.next()
	case arch.ADD:
		sum := int(vx) + int(vy)
		c.setWithFlag(x, byte(sum), sum > 0xff)
	case arch.SUB:
		c.setWithFlag(x, vx-vy, vx >= vy)
	case arch.SUBN:
		c.setWithFlag(x, vy-vx, vy >= vx)
	case arch.SHR:
		c.setWithFlag(x, vx>>1, vx&1 == 1)
	case arch.SHL:
		c.setWithFlag(x, vx<<1, vx&0x80 != 0)

	case arch.LDI:
		c.i = instr.NNN
		c.next()
	case arch.JPV0:
		c.jump(uint16(v[0]) + instr.NNN)
	case arch.RND:
		v[x] = byte(c.rng.Intn(0x100)) & instr.NN
		c.next()

	case arch.DRW:
		var rows [15]byte
		sprite := rows[:instr.N]
		c.memory.Read(int(c.i), sprite)
		collision := c.display.DrawSprite(int(vx), int(vy), sprite)
		v[arch.FlagRegister] = flag(collision)
		c.next()

	case arch.SKP:
		c.skipIf(c.keypad.IsPressed(keypad.Key(vx)))
	case arch.SKNP:
		c.skipIf(!c.keypad.IsPressed(keypad.Key(vx)))

	case arch.LDVDT:
		v[x] = c.delay
		c.next()
	case arch.LDK:
		if k, ok := c.keypad.AnyPressed(); ok {
			v[x] = byte(k)
			c.next()
		} else {
			c.state = KeyWait
			c.waitReg = x
		}
	case arch.LDDTV:
		c.delay = vx
		c.next()
	case arch.LDSTV:
		c.sound = vx
		c.next()
	case arch.ADDI:
		c.i = (c.i + uint16(vx)) & arch.AddressMask
		c.next()
	case arch.LDF:
		c.i = (arch.FontAddress + uint16(vx)*arch.GlyphSize) & arch.AddressMask
		c.next()
	case arch.LDBCD:
		addr := int(c.i)
		c.memory.SetU8(addr, vx/100)
		c.memory.SetU8(addr+1, vx/10%10)
		c.memory.SetU8(addr+2, vx%10)
		c.next()
	case arch.LDIV:
		c.memory.Write(int(c.i), v[:x+1])
		c.next()
	case arch.LDVI:
		c.memory.Read(int(c.i), v[:x+1])
		c.i = (c.i + uint16(x) + 1) & arch.AddressMask
		c.next()

	default:
		c.next()
		return ErrUnsupportedOpcode
	}

	return nil
}

// setWithFlag stores a result in register x, then the flag in VF.
// Both values must be computed from the operands before either is written.
func (c *CPU) setWithFlag(x int, result byte, set bool) {
	c.v[x] = result
	c.v[arch.FlagRegister] = flag(set)
	c.next()
}

// next advances the program counter to the following instruction.
func (c *CPU) next() {
	c.jump(c.pc + 2)
}

// skipIf skips the following instruction if cond is true.
func (c *CPU) skipIf(cond bool) {
	if cond {
		c.jump(c.pc + 4)
	} else {
		c.next()
	}
}

// jump sets the program counter to the given address.
func (c *CPU) jump(addr uint16) {
	c.pc = addr & arch.AddressMask
}

func flag(v bool) byte {
	if v {
		return 1
	}
	return 0
}
