package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexaflex/chip8/arch"
)

func TestStack_PushPop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.NoError(s.Push(0x202))
	assert.NoError(s.Push(0x3a4))
	assert.Equal(2, s.Len())

	top, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint16(0x3a4), top)

	addr, err := s.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0x3a4), addr)

	addr, err = s.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0x202), addr)
	assert.True(s.Empty())
}

func TestStack_Overflow(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for i := 0; i < arch.StackDepth; i++ {
		assert.NoError(s.Push(uint16(i)))
	}
	assert.True(s.Full())
	assert.ErrorIs(s.Push(0xfff), ErrStackOverflow)
	assert.Equal(arch.StackDepth, s.Len())
}

func TestStack_Underflow(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	_, err := s.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)

	_, ok := s.Peek()
	assert.False(ok)
}

func TestStack_Reset(t *testing.T) {
	s := &Stack{}
	_ = s.Push(1)
	s.Reset()
	assert.True(t, s.Empty())
}
