package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexaflex/chip8/arch"
)

func TestMemory_Wraps(t *testing.T) {
	assert := assert.New(t)

	m := NewMemory()
	assert.Len(m, arch.MemorySize)

	m.SetU8(0x1005, 0xab)
	assert.Equal(byte(0xab), m.U8(0x005))
	assert.Equal(byte(0xab), m.U8(0x2005))

	m.Write(0xffe, []byte{1, 2, 3, 4})
	assert.Equal(byte(3), m.U8(0x000))
	assert.Equal(byte(4), m.U8(0x001))

	p := make([]byte, 4)
	m.Read(0xffe, p)
	assert.Equal([]byte{1, 2, 3, 4}, p)
}

func TestMemory_U16(t *testing.T) {
	m := NewMemory()
	m.Write(0x200, []byte{0x12, 0x34})
	assert.Equal(t, uint16(0x1234), m.U16(0x200))

	m.Write(0xfff, []byte{0xab, 0xcd})
	assert.Equal(t, uint16(0xabcd), m.U16(0xfff))
}

func TestMemory_ClearLoadsFont(t *testing.T) {
	m := NewMemory()
	m.SetU8(0x300, 1)
	m.clear()

	assert.Equal(t, byte(0), m.U8(0x300))
	assert.Equal(t, arch.Font[:], []byte(m[arch.FontAddress:arch.FontAddress+len(arch.Font)]))
}
