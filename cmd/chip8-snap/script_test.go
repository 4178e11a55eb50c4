package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexaflex/chip8/cpu"
	"github.com/hexaflex/chip8/devices/keypad"
)

func TestParseKeys(t *testing.T) {
	got, err := parseKeys("3:a, 20:F:4,,0:0")
	require.NoError(t, err)
	assert.Equal(t, []KeyEvent{
		{Tick: 3, Key: 0xa, Hold: DefaultHold},
		{Tick: 20, Key: 0xf, Hold: 4},
		{Tick: 0, Key: 0x0, Hold: DefaultHold},
	}, got)

	got, err = parseKeys("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseKeysInvalid(t *testing.T) {
	for _, v := range []string{"3", "x:1", "-1:1", "3:g", "3:10", "3:1:0", "3:1:2:4"} {
		_, err := parseKeys(v)
		assert.Error(t, err, v)
	}
}

// newMachine starts a cpu running the given opcodes.
func newMachine(t *testing.T, code ...uint16) *cpu.CPU {
	t.Helper()

	program := make([]byte, 0, len(code)*2)
	for _, op := range code {
		program = append(program, byte(op>>8), byte(op))
	}

	c := cpu.New(nil, cpu.WithSeed(1))
	require.NoError(t, c.Startup())
	t.Cleanup(func() { c.Shutdown() })
	require.NoError(t, c.Load(program))
	return c
}

func TestScriptResolvesKeyWait(t *testing.T) {
	//   LD  V0, K
	//   LD  F, V0
	//   DRW V1, V1, 5
	// loop:
	//   JP  loop

	c := newMachine(t, 0xf00a, 0xf029, 0xd115, 0x1206)

	var errs []error
	err := NewScript([]KeyEvent{{Tick: 3, Key: 0xa, Hold: 2}}).Run(c, 10, func(err error) {
		errs = append(errs, err)
	})

	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.Equal(t, byte(0xa), c.V(0))
	assert.Equal(t, uint16(0x206), c.PC())
	assert.False(t, c.Keypad().IsPressed(0xa))

	var lit int
	for _, v := range c.Display().Pixels() {
		lit += int(v)
	}
	assert.Equal(t, 14, lit)
}

func TestScriptHoldsKey(t *testing.T) {
	c := newMachine(t, 0x1200)

	s := NewScript([]KeyEvent{{Tick: 5, Key: 0x3, Hold: 4}, {Tick: 1, Key: 0x7, Hold: 100}})
	require.NoError(t, s.Run(c, 8, func(error) {}))

	assert.Equal(t, []keypad.Key{0x3, 0x7}, c.Keypad().Pressed())

	require.NoError(t, s.Run(c, 10, func(error) {}))
	assert.Equal(t, []keypad.Key{0x7}, c.Keypad().Pressed())
}

func TestScriptReportsErrors(t *testing.T) {
	//   SYS 0
	//   RET

	c := newMachine(t, 0x0000, 0x00ee)

	var errs []error
	err := NewScript(nil).Run(c, 5, func(err error) {
		errs = append(errs, err)
	})

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], cpu.ErrUnsupportedOpcode)
	assert.ErrorIs(t, err, cpu.ErrStackUnderflow)
	assert.Equal(t, cpu.Halted, c.State())
}
