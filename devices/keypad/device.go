// Package keypad implements the 16-key hexadecimal keypad.
//
// The COSMAC VIP keypad layout:
//
//	+---+---+---+---+
//	| 1 | 2 | 3 | C |
//	+---+---+---+---+
//	| 4 | 5 | 6 | D |
//	+---+---+---+---+
//	| 7 | 8 | 9 | E |
//	+---+---+---+---+
//	| A | 0 | B | F |
//	+---+---+---+---+
package keypad

import (
	"math/bits"
	"sync/atomic"

	"github.com/hexaflex/chip8/devices"
)

// Key is a logical key code in the range 0x0-0xF.
type Key uint8

// KeyCount is the number of keys on the pad.
const KeyCount = 16

// State holds the set of currently pressed keys as a bit mask.
// Press and Release are safe to call from any goroutine; each one is a
// single atomic update of the mask.
type State struct {
	mask atomic.Uint32
}

var _ devices.Device = &State{}

// New creates a keypad with no keys pressed.
func New() *State {
	return &State{}
}

// ID returns the device identifier.
func (s *State) ID() devices.ID {
	return devices.NewID(devices.Vendor, devices.ModelKeypad)
}

// Startup releases all keys.
func (s *State) Startup() error {
	s.ReleaseAll()
	return nil
}

// Shutdown releases all keys.
func (s *State) Shutdown() error {
	s.ReleaseAll()
	return nil
}

// Press marks k as pressed. Unknown codes are ignored.
func (s *State) Press(k Key) {
	if k < KeyCount {
		s.mask.Or(1 << k)
	}
}

// Release marks k as released. Unknown codes are ignored.
func (s *State) Release(k Key) {
	if k < KeyCount {
		s.mask.And(^uint32(1 << k))
	}
}

// ReleaseAll releases every key.
func (s *State) ReleaseAll() {
	s.mask.Store(0)
}

// IsPressed returns true if k is currently pressed.
func (s *State) IsPressed(k Key) bool {
	if k >= KeyCount {
		return false
	}
	return s.mask.Load()&(1<<k) != 0
}

// AnyPressed returns the lowest pressed key code.
// Returns false if no key is pressed.
func (s *State) AnyPressed() (Key, bool) {
	mask := s.mask.Load()
	if mask == 0 {
		return 0, false
	}
	return Key(bits.TrailingZeros32(mask)), true
}

// Pressed returns all pressed keys in ascending order.
func (s *State) Pressed() []Key {
	mask := s.mask.Load()
	keys := make([]Key, 0, bits.OnesCount32(mask))

	for mask != 0 {
		k := bits.TrailingZeros32(mask)
		keys = append(keys, Key(k))
		mask &^= 1 << k
	}

	return keys
}
