// Package cpu implements the CHIP-8 interpreter.
package cpu

import (
	"io"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
	"github.com/hexaflex/chip8/devices/display"
	"github.com/hexaflex/chip8/devices/keypad"
)

// TraceFunc represents a callback handler for debug trace output.
// It is called once for every fetched instruction, before it executes.
type TraceFunc func(*Instruction)

// Option configures a CPU.
type Option func(*CPU)

// WithSeed makes the random number source deterministic.
// The source is re-seeded with the same value on every reset.
func WithSeed(seed int64) Option {
	return func(c *CPU) {
		c.seed = seed
		c.seeded = true
	}
}

// CPU implements the runtime.
type CPU struct {
	devices     devices.Map     // Connected peripherals.
	display     *display.Buffer // Framebuffer.
	keypad      *keypad.State   // Input keys.
	trace       TraceFunc       // Handler for debug trace output.
	memory      Memory          // System memory.
	program     []byte          // Loaded program image.
	instr       Instruction     // Decoded instruction data.
	rng         *rand.Rand      // Random number generator.
	seed        int64           // Seed for rng, if seeded is set.
	seeded      bool            // Use a fixed seed?
	v           [arch.RegisterCount]byte
	i           uint16
	pc          uint16
	stack       Stack
	delay       byte
	sound       byte
	state       State
	waitReg     int    // Register receiving the key for a pending Fx0A.
	err         error  // Fatal error which halted the machine.
	initialized uint32 // Has Startup been called?
}

// New creates a new CPU with its own display and keypad.
// Optionally with the given debug trace handler.
func New(trace TraceFunc, opts ...Option) *CPU {
	if trace == nil {
		trace = func(*Instruction) { /* nop */ }
	}

	c := &CPU{
		display: display.New(),
		keypad:  keypad.New(),
		trace:   trace,
		memory:  NewMemory(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.devices.Connect(c.display)
	c.devices.Connect(c.keypad)
	c.reset()
	return c
}

// ID returns the cpu's device Id.
func (c *CPU) ID() devices.ID {
	return devices.NewID(devices.Vendor, devices.ModelCPU)
}

// Memory returns the cpu's memory bank.
func (c *CPU) Memory() Memory { return c.memory }

// Display returns the framebuffer.
func (c *CPU) Display() *display.Buffer { return c.display }

// Keypad returns the keypad.
func (c *CPU) Keypad() *keypad.State { return c.keypad }

// State returns the interpreter loop state.
func (c *CPU) State() State { return c.state }

// Err returns the fatal error which halted the machine, if any.
func (c *CPU) Err() error { return c.err }

// V returns general purpose register x.
func (c *CPU) V(x int) byte { return c.v[x&0xf] }

// SetV sets general purpose register x.
func (c *CPU) SetV(x int, value byte) { c.v[x&0xf] = value }

// I returns the index register.
func (c *CPU) I() uint16 { return c.i }

// SetI sets the index register.
func (c *CPU) SetI(value uint16) { c.i = value & arch.AddressMask }

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.pc }

// SetPC sets the program counter.
func (c *CPU) SetPC(value uint16) { c.pc = value & arch.AddressMask }

// DelayTimer returns the delay timer.
func (c *CPU) DelayTimer() byte { return c.delay }

// SetDelayTimer sets the delay timer.
func (c *CPU) SetDelayTimer(value byte) { c.delay = value }

// SoundTimer returns the sound timer.
func (c *CPU) SoundTimer() byte { return c.sound }

// SetSoundTimer sets the sound timer.
func (c *CPU) SetSoundTimer(value byte) { c.sound = value }

// StackDepth returns the number of pending subroutine returns.
func (c *CPU) StackDepth() int { return c.stack.Len() }

// Startup resets the machine and starts the connected peripherals.
// Returns an error if the cpu is already running. Use Shutdown() first.
func (c *CPU) Startup() error {
	if !atomic.CompareAndSwapUint32(&c.initialized, 0, 1) {
		return errors.New(c.ID().String() + " " + f("cpu is already started"))
	}

	log.Println(c.ID(), "startup")
	c.reset()
	return c.devices.Startup()
}

// Shutdown stops the connected peripherals.
func (c *CPU) Shutdown() error {
	if !atomic.CompareAndSwapUint32(&c.initialized, 1, 0) {
		return nil
	}
	log.Println(c.ID(), "shutdown")
	return c.devices.Shutdown()
}

// Load copies the given program image to arch.ProgramAddress and resets the
// machine. The image is kept and restored on every subsequent reset.
func (c *CPU) Load(program []byte) error {
	if len(program) == 0 {
		return ErrEmptyProgram
	}

	if len(program) > arch.MaxProgramSize {
		return errors.Wrap(ErrProgramTooLarge, f("%d bytes, at most %d fit", len(program), arch.MaxProgramSize))
	}

	c.program = append(c.program[:0], program...)
	c.Reset()
	return nil
}

// Reset returns every component to its initial state and restores the
// loaded program. Connected peripherals are cleared.
func (c *CPU) Reset() {
	c.reset()
	c.display.Clear()
	c.keypad.ReleaseAll()
}

// Step performs a single interpreter tick.
//
// Returns io.EOF if the cpu has not been started. Returns a *Error if the
// instruction failed; the machine keeps running unless IsFatal reports
// otherwise, in which case every further Step returns the same error.
func (c *CPU) Step() error {
	if atomic.LoadUint32(&c.initialized) == 0 {
		return io.EOF
	}

	var err error

	switch c.state {
	case Halted:
		return c.err
	case KeyWait:
		c.resolveKeyWait()
	case Running:
		err = c.execute()
	}

	if c.state != Halted {
		c.tickTimers()
	}

	return err
}

// execute fetches, decodes and executes the instruction at the program counter.
func (c *CPU) execute() error {
	instr := &c.instr
	instr.Decode(c.memory, c.pc)
	c.trace(instr)

	err := c.exec(instr)
	if err == nil {
		return nil
	}

	e := NewError(instr, err)
	if IsFatal(err) {
		c.state = Halted
		c.err = e
	}
	return e
}

// resolveKeyWait completes a pending Fx0A once any key is pressed.
func (c *CPU) resolveKeyWait() {
	k, ok := c.keypad.AnyPressed()
	if !ok {
		return
	}

	c.v[c.waitReg] = byte(k)
	c.state = Running
	c.next()
}

func (c *CPU) tickTimers() {
	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}
}

// reset returns registers, memory and the loop state to their power-on values.
func (c *CPU) reset() {
	c.memory.clear()
	c.memory.Write(arch.ProgramAddress, c.program)

	c.v = [arch.RegisterCount]byte{}
	c.i = 0
	c.pc = arch.ProgramAddress
	c.stack.Reset()
	c.delay = 0
	c.sound = 0
	c.state = Running
	c.waitReg = 0
	c.err = nil

	seed := c.seed
	if !c.seeded {
		seed = time.Now().UnixNano()
	}
	c.rng = rand.New(rand.NewSource(seed))
}
