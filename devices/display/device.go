// Package display implements the 64x32 monochrome framebuffer.
package display

import (
	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// Display geometry.
const (
	Width  = arch.DisplayWidth
	Height = arch.DisplayHeight
)

// ChangeFunc receives every cell whose value changed.
type ChangeFunc func(x, y int, value byte)

// Buffer holds one byte per pixel; each cell is either 0 or 1.
type Buffer struct {
	pixels   [Width * Height]byte
	observer ChangeFunc
	dirty    bool
}

var _ devices.Device = &Buffer{}

// New creates a new, cleared display buffer.
func New() *Buffer {
	return &Buffer{}
}

// ID returns the device identifier.
func (b *Buffer) ID() devices.ID {
	return devices.NewID(devices.Vendor, devices.ModelDisplay)
}

// Startup clears the display.
func (b *Buffer) Startup() error {
	b.Clear()
	return nil
}

// Shutdown is a no-op; the buffer owns no external resources.
func (b *Buffer) Shutdown() error {
	return nil
}

// SetObserver registers f to be called for every changed cell.
// A nil f removes the observer.
func (b *Buffer) SetObserver(f ChangeFunc) {
	b.observer = f
}

// DrawSprite XORs the given sprite rows onto the display at (x, y).
// Each byte is one row of 8 pixels, most significant bit first. Coordinates
// wrap around both edges. Returns true if any set pixel was turned off.
func (b *Buffer) DrawSprite(x, y int, sprite []byte) bool {
	var collision bool

	for row, bits := range sprite {
		dy := (y + row) % Height

		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}

			dx := (x + col) % Width
			index := dy*Width + dx

			if b.pixels[index] == 1 {
				collision = true
			}

			b.set(index, dx, dy, b.pixels[index]^1)
		}
	}

	b.dirty = true
	return collision
}

// Clear resets all pixels to 0.
func (b *Buffer) Clear() {
	for i, v := range b.pixels {
		if v != 0 {
			b.set(i, i%Width, i/Width, 0)
		}
	}
	b.dirty = true
}

// Pixel returns the value of the cell at (x, y), wrapped into the display.
func (b *Buffer) Pixel(x, y int) byte {
	return b.pixels[(y%Height)*Width+x%Width]
}

// Pixels returns the row-major cell grid. Callers must not modify it.
func (b *Buffer) Pixels() []byte {
	return b.pixels[:]
}

// Dirty returns true if the display changed since the last call to ClearDirty.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// ClearDirty marks the display contents as consumed by a renderer.
func (b *Buffer) ClearDirty() {
	b.dirty = false
}

func (b *Buffer) set(index, x, y int, value byte) {
	b.pixels[index] = value
	if b.observer != nil {
		b.observer(x, y, value)
	}
}
