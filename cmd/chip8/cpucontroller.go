package main

import (
	"io"
	"time"

	"github.com/hexaflex/chip8/cpu"
)

// CPUController controls the execution of a CPU.
type CPUController struct {
	cpu           *cpu.CPU
	ticksPerFrame int
	start         time.Time
	cycleCount    uint64
	running       bool
}

// NewCPUController creates a new CPU controller.
func NewCPUController(c *cpu.CPU, ticksPerFrame int) *CPUController {
	return &CPUController{
		cpu:           c,
		ticksPerFrame: ticksPerFrame,
	}
}

// Running returns true if the CPU is currently running.
func (c *CPUController) Running() bool {
	return c.running
}

// Frequency returns the current tick frequency in herz.
func (c *CPUController) Frequency() float64 {
	if !c.running {
		return 0
	}
	return float64(c.cycleCount) / time.Since(c.start).Seconds()
}

// ToggleRun starts or stops program execution.
func (c *CPUController) ToggleRun() {
	c.setRunning(!c.running)
}

// Start begins execution of the program.
func (c *CPUController) Start() {
	c.setRunning(true)
}

// Stop pauses execution of the program.
func (c *CPUController) Stop() {
	c.setRunning(false)
}

// Frame runs one frame worth of ticks. The batch ends early once the
// display changed, so the frame can be presented right away.
// Non-fatal errors are passed to report; fatal errors stop execution
// and are returned.
func (c *CPUController) Frame(report func(error)) error {
	c.cpu.Display().ClearDirty()

	for i := 0; i < c.ticksPerFrame && c.running; i++ {
		if err := c.Step(); err != nil {
			if cpu.IsFatal(err) {
				return err
			}
			report(err)
		}

		if c.cpu.Display().Dirty() {
			break
		}
	}

	return nil
}

// Step performs a single execution step.
func (c *CPUController) Step() error {
	c.cycleCount++

	err := c.cpu.Step()
	if err != nil && (err == io.EOF || cpu.IsFatal(err)) {
		c.setRunning(false)
		if err == io.EOF {
			return nil
		}
	}

	return err
}

// Load loads the given program image and resets the cpu.
func (c *CPUController) Load(program []byte) error {
	return c.cpu.Load(program)
}

// Startup initializes the cpu and connected peripherals.
func (c *CPUController) Startup() error {
	return c.cpu.Startup()
}

// Shutdown disposes of CPU and peripheral resources.
func (c *CPUController) Shutdown() error {
	return c.cpu.Shutdown()
}

// setRunning determines if the CPU is running or is paused.
func (c *CPUController) setRunning(v bool) {
	c.running = v
	c.start = time.Now()
	c.cycleCount = 0
}
